package life

import "math/rand/v2"

// StateLookup resolves the state of a coordinate. ok is false when the
// lookup has no value for p.
type StateLookup interface {
	StateAt(p Point) (State, bool)
}

// Generation is dense storage for one generation of a topology.
type Generation struct {
	topo  Topology
	cells []State
}

// NewGeneration returns an all-dead generation sized for topo.
func NewGeneration(topo Topology) *Generation {
	return &Generation{topo: topo, cells: make([]State, topo.Len())}
}

// Topology returns the topology the generation was sized for.
func (g *Generation) Topology() Topology {
	return g.topo
}

// StateAt returns the state of p, or false when p is not a node.
func (g *Generation) StateAt(p Point) (State, bool) {
	idx, ok := g.topo.Index(p)
	if !ok {
		return Dead, false
	}
	return g.cells[idx], true
}

// Set stores s at p. It reports false when p is not a node.
func (g *Generation) Set(p Point, s State) bool {
	idx, ok := g.topo.Index(p)
	if !ok {
		return false
	}
	g.cells[idx] = s
	return true
}

// Population counts live nodes.
func (g *Generation) Population() int {
	n := 0
	for p := range g.topo.Nodes() {
		idx, _ := g.topo.Index(p)
		if g.cells[idx] == Alive {
			n++
		}
	}
	return n
}

// Clear kills every node.
func (g *Generation) Clear() {
	clear(g.cells)
}

// CopyFrom overwrites g with src. Both must share a topology size.
func (g *Generation) CopyFrom(src *Generation) {
	copy(g.cells, src.cells)
}

// Randomize sets each node alive with the given probability.
func Randomize(g *Generation, density float64, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for p := range g.topo.Nodes() {
		if rng.Float64() < density {
			g.Set(p, Alive)
		} else {
			g.Set(p, Dead)
		}
	}
}

// Sparse is a map-backed lookup. Coordinates never stored have no state.
type Sparse map[Point]State

func (s Sparse) StateAt(p Point) (State, bool) {
	v, ok := s[p]
	return v, ok
}

type defaulted struct {
	src StateLookup
	def State
}

// WithDefault adapts src so that coordinates without a state report def.
func WithDefault(src StateLookup, def State) StateLookup {
	return defaulted{src: src, def: def}
}

func (d defaulted) StateAt(p Point) (State, bool) {
	if s, ok := d.src.StateAt(p); ok {
		return s, true
	}
	return d.def, true
}
