package life

import "iter"

var hexOffsets = [...]Point{
	{1, 0}, {-1, 0},
	{0, 1}, {0, -1},
	{1, -1}, {-1, 1},
}

// Hex is a hexagon-shaped board in axial coordinates. Rows run r = -radius..radius
// and row r holds q = max(-radius, -r-radius)..min(radius, -r+radius).
type Hex struct {
	radius int
	side   int
}

// NewHex returns a hexagonal board with the given radius. Radius 0 is a single node.
func NewHex(radius int) *Hex {
	if radius < 0 {
		radius = 0
	}
	return &Hex{radius: radius, side: 2*radius + 1}
}

// Radius is the distance from the center node to any corner.
func (h *Hex) Radius() int {
	return h.radius
}

// RowSpan returns the first q and the node count of row r.
func (h *Hex) RowSpan(r int) (int, int) {
	if r < -h.radius || r > h.radius {
		return 0, 0
	}
	lo := max(-h.radius, -r-h.radius)
	hi := min(h.radius, -r+h.radius)
	return lo, hi - lo + 1
}

func (h *Hex) Len() int {
	return h.side * h.side
}

func (h *Hex) Index(p Point) (int, bool) {
	if !h.Contains(p) {
		return 0, false
	}
	return (p.Y+h.radius)*h.side + (p.X + h.radius), true
}

func (h *Hex) Contains(p Point) bool {
	if p.X < -h.radius || p.X > h.radius || p.Y < -h.radius || p.Y > h.radius {
		return false
	}
	s := -p.X - p.Y
	return s >= -h.radius && s <= h.radius
}

func (h *Hex) Nodes() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := -h.radius; r <= h.radius; r++ {
			lo, n := h.RowSpan(r)
			for q := lo; q < lo+n; q++ {
				if !yield(Point{X: q, Y: r}) {
					return
				}
			}
		}
	}
}

func (h *Hex) Neighbors(p Point, buf []Point) []Point {
	for _, d := range hexOffsets {
		n := p.Add(d)
		if h.Contains(n) {
			buf = append(buf, n)
		}
	}
	return buf
}

func (h *Hex) Bounds() (int, int) {
	return h.side, h.side
}
