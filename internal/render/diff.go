package render

import (
	"bufio"
	"io"
)

// DiffStats counts what the last StreamingDiff call wrote.
type DiffStats struct {
	Chars  int
	Moves  int
	Colors int
}

// StreamingDiff writes frames as the minimal set of cursor moves, color
// changes and characters relative to the previously captured frame. Frames
// never write a newline byte: a newline glyph moves the logical cursor to the
// next row and the next write repositions, so the terminal never scrolls.
type StreamingDiff struct {
	bw *bufio.Writer

	// logical cursor, 1-based row and 0-based column
	row int
	col int

	// write cursor; wrow is 0 when unknown
	wrow int
	wcol int

	fg Color
	bg Color

	stats DiffStats
}

func NewStreamingDiff() *StreamingDiff {
	return &StreamingDiff{bw: bufio.NewWriterSize(io.Discard, 8192)}
}

// Stats reports the writes of the most recent call.
func (d *StreamingDiff) Stats() DiffStats {
	return d.stats
}

func (d *StreamingDiff) begin(w io.Writer, startRow int) {
	d.bw.Reset(w)
	d.row = max(startRow, 1)
	d.col = 0
	d.wrow = 0
	d.wcol = 0
	d.fg = ColorNone
	d.bg = ColorNone
	d.stats = DiffStats{}
}

// WriteFullAndCapture paints every glyph of src starting at startRow and
// captures the frame into frame.
func (d *StreamingDiff) WriteFullAndCapture(src GlyphSource, w io.Writer, frame *FrameBuffer, startRow int) error {
	d.begin(w, startRow)
	frame.Clear()
	for {
		g, ok := src.Next()
		if !ok {
			break
		}
		frame.Append(g)
		if g.IsNewline() {
			d.newline()
			continue
		}
		d.put(g)
		d.col++
	}
	return d.finish(src)
}

// ApplyAndCapture writes only the glyphs of src that differ from prev and
// captures the whole frame into cur. prev and cur must be distinct buffers of
// the same geometry. An empty prev falls back to a full paint.
func (d *StreamingDiff) ApplyAndCapture(prev *FrameBuffer, src GlyphSource, w io.Writer, cur *FrameBuffer, startRow int) error {
	if prev.Len() == 0 {
		return d.WriteFullAndCapture(src, w, cur, startRow)
	}
	d.begin(w, startRow)
	cur.Clear()
	i := 0
	for {
		g, ok := src.Next()
		if !ok {
			break
		}
		cur.Append(g)
		unchanged := i < prev.Len() && prev.At(i) == g
		i++
		if g.IsNewline() {
			d.newline()
			continue
		}
		if !unchanged {
			d.put(g)
		}
		d.col++
	}
	return d.finish(src)
}

func (d *StreamingDiff) finish(src GlyphSource) error {
	err := src.Err()
	if ferr := d.bw.Flush(); err == nil {
		err = ferr
	}
	d.bw.Reset(io.Discard)
	return err
}

func (d *StreamingDiff) newline() {
	d.row++
	d.col = 0
}

func (d *StreamingDiff) put(g Glyph) {
	if d.wrow != d.row || d.wcol != d.col {
		writeCursorPos(d.bw, d.row, d.col+1)
		d.stats.Moves++
	}
	fg, bg := effective(g.Fg), effective(g.Bg)
	if fg != d.fg {
		writeSGR(d.bw, fg.FgCode())
		d.fg = fg
		d.stats.Colors++
	}
	if bg != d.bg {
		writeSGR(d.bw, bg.BgCode())
		d.bg = bg
		d.stats.Colors++
	}
	d.bw.WriteRune(g.Char)
	d.stats.Chars++
	d.wrow = d.row
	d.wcol = d.col + 1
}

// effective maps an unset layer to the terminal default.
func effective(c Color) Color {
	if c == ColorNone {
		return ColorDefault
	}
	return c
}
