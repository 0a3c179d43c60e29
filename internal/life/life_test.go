package life

import (
	"errors"
	"testing"
)

func TestParseRules(t *testing.T) {
	cases := []struct {
		in   string
		want Rules
	}{
		{"B3/S23", Conway},
		{"b3s23", Conway},
		{"S23/B3", Conway},
		{"23/3", Conway},
		{"B2/S34", HexLife},
		{"B36/S23", Rules{Birth: 1<<3 | 1<<6, Survive: 1<<2 | 1<<3}},
		{"B/S", Rules{}},
	}
	for _, tc := range cases {
		got, err := ParseRules(tc.in)
		if err != nil {
			t.Fatalf("ParseRules(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRules(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseRulesRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "life", "B3x/S23", "1/2/3"} {
		if _, err := ParseRules(in); !errors.Is(err, ErrInvalidRules) {
			t.Fatalf("ParseRules(%q) err = %v, want ErrInvalidRules", in, err)
		}
	}
}

func TestRulesString(t *testing.T) {
	if got := Conway.String(); got != "B3/S23" {
		t.Fatalf("Conway.String() = %q, want B3/S23", got)
	}
	if got := HexLife.String(); got != "B2/S34" {
		t.Fatalf("HexLife.String() = %q, want B2/S34", got)
	}
}

func TestBlinkerOscillates(t *testing.T) {
	topo := NewRect(5, 5, false)
	seed := NewGeneration(topo)
	for x := 1; x <= 3; x++ {
		seed.Set(Point{X: x, Y: 2}, Alive)
	}
	e := NewEngine(topo, Conway, seed)

	e.Step()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := Dead
			if x == 2 && y >= 1 && y <= 3 {
				want = Alive
			}
			if got, _ := e.Generation().StateAt(Point{X: x, Y: y}); got != want {
				t.Fatalf("gen 1 (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	e.Step()
	for x := 1; x <= 3; x++ {
		if got, _ := e.Generation().StateAt(Point{X: x, Y: 2}); got != Alive {
			t.Fatalf("gen 2 (%d,2) = %v, want alive", x, got)
		}
	}
	if e.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", e.Count())
	}
	if e.Population() != 3 {
		t.Fatalf("Population() = %d, want 3", e.Population())
	}
}

func TestGliderWrapsOnTorus(t *testing.T) {
	topo := NewRect(6, 6, true)
	seed := NewGeneration(topo)
	for _, p := range []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		seed.Set(p, Alive)
	}
	e := NewEngine(topo, Conway, seed)
	for i := 0; i < 24; i++ {
		e.Step()
		if e.Population() != 5 {
			t.Fatalf("step %d population = %d, want 5", i+1, e.Population())
		}
	}
	// 24 steps move a glider 6 cells diagonally: back where it started.
	for p := range topo.Nodes() {
		want, _ := seed.StateAt(p)
		got, _ := e.Generation().StateAt(p)
		if got != want {
			t.Fatalf("after full lap %v = %v, want %v", p, got, want)
		}
	}
}

func TestHexTopology(t *testing.T) {
	h := NewHex(2)
	n := 0
	for p := range h.Nodes() {
		if !h.Contains(p) {
			t.Fatalf("node %v not contained", p)
		}
		n++
	}
	// 3r^2 + 3r + 1
	if n != 19 {
		t.Fatalf("node count = %d, want 19", n)
	}
	if got := len(h.Neighbors(Point{}, nil)); got != 6 {
		t.Fatalf("center neighbors = %d, want 6", got)
	}
	if got := len(h.Neighbors(Point{X: 2, Y: -2}, nil)); got != 3 {
		t.Fatalf("corner neighbors = %d, want 3", got)
	}
	if h.Contains(Point{X: 2, Y: 2}) {
		t.Fatalf("(2,2) is outside a radius 2 hexagon")
	}
	lo, cnt := h.RowSpan(-2)
	if lo != 0 || cnt != 3 {
		t.Fatalf("RowSpan(-2) = %d,%d, want 0,3", lo, cnt)
	}
	lo, cnt = h.RowSpan(0)
	if lo != -2 || cnt != 5 {
		t.Fatalf("RowSpan(0) = %d,%d, want -2,5", lo, cnt)
	}
}

func TestMaskedTopology(t *testing.T) {
	hole := Point{X: 1, Y: 1}
	m := NewMasked(NewRect(3, 3, false), hole)
	if m.Contains(hole) {
		t.Fatalf("hole reported as node")
	}
	if _, ok := m.Index(hole); ok {
		t.Fatalf("hole has an index")
	}
	n := 0
	for range m.Nodes() {
		n++
	}
	if n != 8 {
		t.Fatalf("nodes = %d, want 8", n)
	}
	for _, p := range m.Neighbors(Point{}, nil) {
		if p == hole {
			t.Fatalf("hole listed as neighbor")
		}
	}
	g := NewGeneration(m)
	if g.Set(hole, Alive) {
		t.Fatalf("Set on hole succeeded")
	}
	if _, ok := g.StateAt(hole); ok {
		t.Fatalf("hole has a state")
	}
}

func TestWithDefaultFillsSparseLookups(t *testing.T) {
	sparse := Sparse{{X: 1, Y: 1}: Alive}
	if _, ok := sparse.StateAt(Point{}); ok {
		t.Fatalf("sparse lookup invented a state")
	}
	filled := WithDefault(sparse, Dead)
	s, ok := filled.StateAt(Point{})
	if !ok || s != Dead {
		t.Fatalf("WithDefault StateAt = %v,%v, want dead,true", s, ok)
	}
	s, ok = filled.StateAt(Point{X: 1, Y: 1})
	if !ok || s != Alive {
		t.Fatalf("WithDefault StateAt = %v,%v, want alive,true", s, ok)
	}
}

func TestRandomizeIsDeterministic(t *testing.T) {
	topo := NewRect(16, 16, false)
	a := NewGeneration(topo)
	b := NewGeneration(topo)
	Randomize(a, 0.3, 42)
	Randomize(b, 0.3, 42)
	for p := range topo.Nodes() {
		sa, _ := a.StateAt(p)
		sb, _ := b.StateAt(p)
		if sa != sb {
			t.Fatalf("seeded soups differ at %v", p)
		}
	}
	if a.Population() == 0 {
		t.Fatalf("soup is empty")
	}
}
