package life

import "iter"

var mooreOffsets = [...]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Rect is a rectangular board with the eight-cell Moore neighborhood.
type Rect struct {
	width  int
	height int
	wrap   bool
}

// NewRect returns a width x height board. With wrap set the edges join into a torus.
func NewRect(width, height int, wrap bool) *Rect {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Rect{width: width, height: height, wrap: wrap}
}

func (r *Rect) Len() int {
	return r.width * r.height
}

func (r *Rect) Index(p Point) (int, bool) {
	if !r.Contains(p) {
		return 0, false
	}
	return p.Y*r.width + p.X, true
}

func (r *Rect) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < r.width && p.Y < r.height
}

func (r *Rect) Nodes() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				if !yield(Point{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r *Rect) Neighbors(p Point, buf []Point) []Point {
	for _, d := range mooreOffsets {
		n := p.Add(d)
		if r.wrap {
			n.X = wrapInt(n.X, r.width)
			n.Y = wrapInt(n.Y, r.height)
			if n == p {
				continue
			}
		}
		if r.Contains(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

func (r *Rect) Bounds() (int, int) {
	return r.width, r.height
}

// Wrap reports whether the board is toroidal.
func (r *Rect) Wrap() bool {
	return r.wrap
}

func wrapInt(v, n int) int {
	if n <= 0 {
		return v
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
