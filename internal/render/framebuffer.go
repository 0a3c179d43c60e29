package render

import "fmt"

// FrameBuffer is fixed-capacity glyph storage for one captured frame. It is
// sized once per geometry and reused; Append past capacity is a sizing defect.
type FrameBuffer struct {
	glyphs []Glyph
}

// NewFrameBuffer allocates a buffer that holds at most capacity glyphs.
func NewFrameBuffer(capacity int) *FrameBuffer {
	return &FrameBuffer{glyphs: make([]Glyph, 0, max(capacity, 0))}
}

// Append stores g. It panics when the buffer is full.
func (f *FrameBuffer) Append(g Glyph) {
	if len(f.glyphs) == cap(f.glyphs) {
		panic(fmt.Sprintf("render: frame buffer capacity %d exceeded", cap(f.glyphs)))
	}
	f.glyphs = append(f.glyphs, g)
}

// Clear empties the buffer and keeps its storage.
func (f *FrameBuffer) Clear() {
	f.glyphs = f.glyphs[:0]
}

func (f *FrameBuffer) Len() int {
	return len(f.glyphs)
}

func (f *FrameBuffer) Cap() int {
	return cap(f.glyphs)
}

// At returns the glyph at index i.
func (f *FrameBuffer) At(i int) Glyph {
	return f.glyphs[i]
}

// Glyphs exposes the captured frame. Callers must not modify it.
func (f *FrameBuffer) Glyphs() []Glyph {
	return f.glyphs
}

// String re-encodes the captured characters, newlines included.
func (f *FrameBuffer) String() string {
	buf := make([]rune, len(f.glyphs))
	for i, g := range f.glyphs {
		buf[i] = g.Char
	}
	return string(buf)
}

// FrameCapacity is the glyph count of a bordered w x h frame plus one
// terminator per row. Borderless frames are smaller and fit as well.
func FrameCapacity(w, h int) int {
	w, h = max(w, 0), max(h, 0)
	return (w+2)*(h+2) + (h + 2)
}

// HalfBlockCapacity sizes a half-block frame over a window of w x h cells.
func HalfBlockCapacity(w, h int) int {
	return FrameCapacity(w, (max(h, 0)+1)/2)
}

// HexCapacity bounds a hexagon frame: side rows of at most 2*side glyphs each,
// newline included.
func HexCapacity(radius int) int {
	side := 2*max(radius, 0) + 1
	return side * 2 * side
}
