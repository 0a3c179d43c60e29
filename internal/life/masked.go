package life

import "iter"

// Masked removes a set of holes from an underlying topology. Holes keep their
// dense index so generations sized for the base topology stay valid.
type Masked struct {
	base  Topology
	holes map[Point]struct{}
}

// NewMasked returns base without the given holes.
func NewMasked(base Topology, holes ...Point) *Masked {
	m := &Masked{base: base, holes: make(map[Point]struct{}, len(holes))}
	for _, p := range holes {
		m.holes[p] = struct{}{}
	}
	return m
}

// Base returns the unmasked topology.
func (m *Masked) Base() Topology {
	return m.base
}

func (m *Masked) Len() int {
	return m.base.Len()
}

func (m *Masked) Index(p Point) (int, bool) {
	if !m.Contains(p) {
		return 0, false
	}
	return m.base.Index(p)
}

func (m *Masked) Contains(p Point) bool {
	if _, hole := m.holes[p]; hole {
		return false
	}
	return m.base.Contains(p)
}

func (m *Masked) Nodes() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for p := range m.base.Nodes() {
			if _, hole := m.holes[p]; hole {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (m *Masked) Neighbors(p Point, buf []Point) []Point {
	start := len(buf)
	buf = m.base.Neighbors(p, buf)
	out := buf[:start]
	for _, n := range buf[start:] {
		if _, hole := m.holes[n]; hole {
			continue
		}
		out = append(out, n)
	}
	return out
}

func (m *Masked) Bounds() (int, int) {
	return m.base.Bounds()
}
