// Package render turns a life board into terminal output. Token enumerators
// walk the board and emit characters and lazily emitted color directives;
// Glyphs folds them into self-describing cells; NormalizedGlyphs validates
// the colors; StreamingDiff writes only what changed since the last frame.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yitzhaks/gameoflife/internal/life"
)

// Geometry selects how cells are packed into characters.
type Geometry uint8

const (
	GeometryCells Geometry = iota
	GeometryHalfBlock
	GeometryHex
)

func (g Geometry) String() string {
	switch g {
	case GeometryCells:
		return "cells"
	case GeometryHalfBlock:
		return "halfblock"
	case GeometryHex:
		return "hex"
	default:
		return fmt.Sprintf("geometry(%d)", uint8(g))
	}
}

// ParseGeometry resolves a configuration name.
func ParseGeometry(name string) (Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "cells", "cell", "full":
		return GeometryCells, nil
	case "halfblock", "half-block", "half":
		return GeometryHalfBlock, nil
	case "hex", "hexagon":
		return GeometryHex, nil
	default:
		return GeometryCells, fmt.Errorf("unknown geometry %q", name)
	}
}

// CellsPerChar reports how many board rows one terminal row shows.
func (g Geometry) CellsPerChar() int {
	if g == GeometryHalfBlock {
		return 2
	}
	return 1
}

// ErrGeometryMismatch reports a topology whose coordinates the geometry does
// not walk. Hex geometry walks axial coordinates around the origin; the boxed
// geometries walk the rectangle from (0,0).
var ErrGeometryMismatch = errors.New("geometry does not fit topology")

// Hexagonal reports whether topo is laid out in axial hexagon coordinates.
func Hexagonal(topo life.Topology) bool {
	switch t := topo.(type) {
	case *life.Hex:
		return true
	case *life.Masked:
		return Hexagonal(t.Base())
	default:
		return false
	}
}

// Fits returns ErrGeometryMismatch when g would skip nodes of topo.
func (g Geometry) Fits(topo life.Topology) error {
	if (g == GeometryHex) != Hexagonal(topo) {
		return fmt.Errorf("%w: %s geometry on %T", ErrGeometryMismatch, g, topo)
	}
	return nil
}

// HexRadius recovers the radius of a hexagonal topology from its bounds.
func HexRadius(topo life.Topology) int {
	w, _ := topo.Bounds()
	return max(w-1, 0) / 2
}

type frameShape struct {
	geometry Geometry
	w, h     int
	border   bool
}

// Renderer is the long-lived per-session pipeline. It owns one enumerator of
// each geometry, the glyph stages, a pair of frame buffers and a
// StreamingDiff, all reused across frames. A Renderer is not safe for
// concurrent use.
type Renderer struct {
	geometry Geometry
	theme    Theme

	cells  CellTokens
	half   HalfBlockTokens
	hex    HexTokens
	fold   Glyphs
	norm   NormalizedGlyphs
	failed failedGlyphs

	frames   [2]*FrameBuffer
	cur      int
	valid    bool
	shape    frameShape
	startRow int
	diff     *StreamingDiff
}

func NewRenderer(geometry Geometry, theme Theme) *Renderer {
	return &Renderer{
		geometry: geometry,
		theme:    theme,
		diff:     NewStreamingDiff(),
	}
}

func (r *Renderer) Geometry() Geometry {
	return r.geometry
}

func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetTheme swaps the theme; the next frame is a full paint.
func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
	r.valid = false
}

// Invalidate forgets the captured frame so the next Frame repaints fully.
// Call it after anything else has drawn over the board area.
func (r *Renderer) Invalidate() {
	r.valid = false
}

// Stats reports what the last Frame wrote.
func (r *Renderer) Stats() DiffStats {
	return r.diff.Stats()
}

// Glyphs re-arms the pipeline for topo/gen and returns its normalized glyph
// stream. The returned source is invalidated by the next call. vp is ignored
// by the hex geometry. A topology the geometry cannot walk yields an empty
// stream whose Err is ErrGeometryMismatch.
func (r *Renderer) Glyphs(topo life.Topology, gen life.StateLookup, vp *Viewport) GlyphSource {
	if err := r.geometry.Fits(topo); err != nil {
		r.failed.err = err
		return &r.failed
	}
	var src TokenSource
	switch r.geometry {
	case GeometryCells:
		r.cells.Reset(topo, gen, &r.theme, vp)
		src = &r.cells
	case GeometryHalfBlock:
		r.half.Reset(topo, gen, &r.theme, vp)
		src = &r.half
	case GeometryHex:
		r.hex.Reset(topo, gen, &r.theme, HexRadius(topo))
		src = &r.hex
	default:
		panic(fmt.Sprintf("render: unknown geometry %d", r.geometry))
	}
	r.fold.Reset(src)
	r.norm.Reset(&r.fold)
	return &r.norm
}

// Frame draws one frame with its top-left at startRow (1-based). The first
// frame, and any frame after a shape change or Invalidate, is a full paint;
// the rest are differential.
func (r *Renderer) Frame(w io.Writer, topo life.Topology, gen life.StateLookup, vp *Viewport, startRow int) error {
	if err := r.geometry.Fits(topo); err != nil {
		return err
	}
	shape := r.shapeOf(topo, vp)
	if shape != r.shape || startRow != r.startRow {
		r.shape = shape
		r.startRow = startRow
		r.valid = false
	}
	r.ensureCapacity(shape, topo)

	src := r.Glyphs(topo, gen, vp)
	next := r.frames[1-r.cur]
	var err error
	if r.valid {
		err = r.diff.ApplyAndCapture(r.frames[r.cur], src, w, next, startRow)
	} else {
		err = r.diff.WriteFullAndCapture(src, w, next, startRow)
	}
	if err != nil {
		r.valid = false
		return err
	}
	r.cur = 1 - r.cur
	r.valid = true
	return nil
}

// Size reports the rendered frame size in characters, border included.
func (r *Renderer) Size(topo life.Topology, vp *Viewport) (int, int) {
	s := r.shapeOf(topo, vp)
	switch s.geometry {
	case GeometryHex:
		side := 2*HexRadius(topo) + 1
		return 2*side - 1, side
	case GeometryHalfBlock:
		return s.w + borderWidth(s.border), (s.h+1)/2 + borderWidth(s.border)
	default:
		return s.w + borderWidth(s.border), s.h + borderWidth(s.border)
	}
}

func borderWidth(border bool) int {
	if border {
		return 2
	}
	return 0
}

func (r *Renderer) shapeOf(topo life.Topology, vp *Viewport) frameShape {
	if r.geometry == GeometryHex {
		bw, bh := topo.Bounds()
		return frameShape{geometry: GeometryHex, w: bw, h: bh}
	}
	bw, bh := topo.Bounds()
	_, _, w, h, _ := vp.window(bw, bh)
	return frameShape{geometry: r.geometry, w: w, h: h, border: r.theme.Border}
}

func (r *Renderer) ensureCapacity(s frameShape, topo life.Topology) {
	var need int
	switch s.geometry {
	case GeometryHex:
		need = HexCapacity(HexRadius(topo))
	case GeometryHalfBlock:
		need = HalfBlockCapacity(s.w, s.h)
	default:
		need = FrameCapacity(s.w, s.h)
	}
	if r.frames[0] != nil && r.frames[0].Cap() >= need {
		return
	}
	r.frames[0] = NewFrameBuffer(need)
	r.frames[1] = NewFrameBuffer(need)
	r.cur = 0
	r.valid = false
}

// Render paints the whole board once, without diffing, as lines of text
// separated by newlines. It is the output of non-interactive commands.
func Render(w io.Writer, geometry Geometry, topo life.Topology, gen life.StateLookup, theme Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}
	r := NewRenderer(geometry, theme)
	src := r.Glyphs(topo, gen, nil)
	bw := bufio.NewWriter(w)
	fg, bg := ColorNone, ColorNone
	for {
		g, ok := src.Next()
		if !ok {
			break
		}
		if g.IsNewline() {
			bw.Write(seqReset)
			bw.WriteByte('\n')
			fg, bg = ColorNone, ColorNone
			continue
		}
		if c := effective(g.Fg); c != fg {
			writeSGR(bw, c.FgCode())
			fg = c
		}
		if c := effective(g.Bg); c != bg {
			writeSGR(bw, c.BgCode())
			bg = c
		}
		bw.WriteRune(g.Char)
	}
	if err := src.Err(); err != nil {
		return err
	}
	return bw.Flush()
}

// failedGlyphs is the stream handed out for a topology that cannot be drawn.
type failedGlyphs struct {
	err error
}

func (f *failedGlyphs) Next() (Glyph, bool) { return Glyph{}, false }
func (f *failedGlyphs) Err() error          { return f.err }
