package life

// Engine advances a topology under a rule table. It keeps two generations and
// swaps them on every step.
type Engine struct {
	topo  Topology
	rules Rules
	cur   *Generation
	next  *Generation
	count int
	nbuf  []Point
}

// NewEngine starts from a copy of seed. A nil seed starts all dead.
func NewEngine(topo Topology, rules Rules, seed *Generation) *Engine {
	e := &Engine{
		topo:  topo,
		rules: rules,
		cur:   NewGeneration(topo),
		next:  NewGeneration(topo),
		nbuf:  make([]Point, 0, len(mooreOffsets)),
	}
	if seed != nil {
		e.cur.CopyFrom(seed)
	}
	return e
}

// Topology returns the board the engine runs on.
func (e *Engine) Topology() Topology {
	return e.topo
}

// Rules returns the active rule table.
func (e *Engine) Rules() Rules {
	return e.rules
}

// Generation returns the current generation. It is overwritten by the step after next.
func (e *Engine) Generation() *Generation {
	return e.cur
}

// Count is the number of steps taken.
func (e *Engine) Count() int {
	return e.count
}

// Population counts live nodes in the current generation.
func (e *Engine) Population() int {
	return e.cur.Population()
}

// Step computes the next generation.
func (e *Engine) Step() {
	for p := range e.topo.Nodes() {
		e.nbuf = e.topo.Neighbors(p, e.nbuf[:0])
		live := 0
		for _, n := range e.nbuf {
			if s, _ := e.cur.StateAt(n); s == Alive {
				live++
			}
		}
		s, _ := e.cur.StateAt(p)
		e.next.Set(p, e.rules.Next(s, live))
	}
	e.cur, e.next = e.next, e.cur
	e.count++
}
