package render

import "github.com/yitzhaks/gameoflife/internal/life"

// HexTokens renders a hexagon-shaped board in axial coordinates. Row r is
// indented by |r| columns and its cells are separated by one spacer column,
// which staggers the rows into a hexagon. There is no box border.
type HexTokens struct {
	_ noCopy

	topo   life.Topology
	states life.StateLookup
	theme  *Theme
	radius int

	phase  phase
	r      int
	q0     int
	n      int
	col    int
	indent int
	ch     rune

	q      tokenQueue
	colors lazyColors
	err    error
}

// NewHexTokens builds the enumerator for a hexagon of the given radius.
func NewHexTokens(topo life.Topology, states life.StateLookup, theme *Theme, radius int) *HexTokens {
	t := &HexTokens{}
	t.Reset(topo, states, theme, radius)
	return t
}

// Reset re-arms the enumerator for a new frame.
func (t *HexTokens) Reset(topo life.Topology, states life.StateLookup, theme *Theme, radius int) {
	t.topo = topo
	t.states = states
	t.theme = theme
	t.radius = max(radius, 0)
	t.phase = phaseStart
	t.q.reset()
	t.colors.reset()
	t.err = nil
	t.beginRow(-t.radius)
}

// Size is the widest row and the row count, in characters.
func (t *HexTokens) Size() (int, int) {
	side := 2*t.radius + 1
	return 2*side - 1, side
}

func (t *HexTokens) beginRow(r int) {
	t.r = r
	t.q0 = max(-t.radius, -r-t.radius)
	t.n = min(t.radius, -r+t.radius) - t.q0 + 1
	t.col = 0
	t.indent = 0
}

func (t *HexTokens) Next() (Token, bool) {
	for t.q.n == 0 {
		if t.phase == phaseDone {
			return Token{}, false
		}
		t.step()
	}
	return t.q.pop()
}

func (t *HexTokens) Err() error {
	return t.err
}

func (t *HexTokens) step() {
	switch t.phase {
	case phaseStart:
		t.q.push(ResetToken())
		t.phase = phaseRowIndent
	case phaseRowIndent:
		if t.indent >= abs(t.r) {
			t.phase = phaseCellColor
			return
		}
		t.colors.emit(&t.q, t.spacerFg(), ColorDefault, ' ')
		t.indent++
	case phaseCellColor:
		role, err := lookupRole(t.topo, t.states, life.Point{X: t.q0 + t.col, Y: t.r})
		if err != nil {
			t.fail(err)
			return
		}
		ch, fg, bg := t.theme.look(role)
		t.colors.directives(&t.q, fg, bg)
		t.ch = ch
		t.phase = phaseCellChar
	case phaseCellChar:
		t.q.push(CharToken(t.ch))
		t.col++
		if t.col < t.n {
			t.phase = phaseRowSpacer
		} else {
			t.phase = phaseRowNewline
		}
	case phaseRowSpacer:
		t.colors.emit(&t.q, t.spacerFg(), ColorDefault, ' ')
		t.phase = phaseCellColor
	case phaseRowNewline:
		t.q.push(CharToken('\n'))
		if t.r == t.radius {
			t.phase = phaseDone
			return
		}
		t.beginRow(t.r + 1)
		t.phase = phaseRowIndent
	default:
		unhandledPhase(t.phase)
	}
}

// spacerFg keeps whatever foreground is active; before any cell it falls back
// to the dead color so no glyph is left without one.
func (t *HexTokens) spacerFg() Color {
	if t.colors.fg != ColorNone {
		return ColorNone
	}
	return t.theme.DeadFg
}

func (t *HexTokens) fail(err error) {
	t.err = err
	t.q.reset()
	t.phase = phaseDone
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
