package life

import "iter"

// Point is a board coordinate. Rectangular boards use column/row, hexagonal
// boards use axial (q, r) stored as (X, Y).
type Point struct {
	X int
	Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// State is the value of a single node.
type State uint8

const (
	Dead State = iota
	Alive
)

func (s State) String() string {
	switch s {
	case Dead:
		return "dead"
	case Alive:
		return "alive"
	default:
		return "unknown"
	}
}

// Topology describes which coordinates exist and how they connect.
type Topology interface {
	// Len is the size of the dense index space (holes included).
	Len() int
	// Index maps a coordinate to its dense index.
	Index(p Point) (int, bool)
	// Contains reports whether p is a node of the topology.
	Contains(p Point) bool
	// Nodes yields every node in row-major order.
	Nodes() iter.Seq[Point]
	// Neighbors appends the neighbors of p to buf and returns it.
	Neighbors(p Point, buf []Point) []Point
	// Bounds is the width and height of the rectangle enclosing all nodes.
	Bounds() (int, int)
}
