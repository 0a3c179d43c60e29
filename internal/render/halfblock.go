package render

import "github.com/yitzhaks/gameoflife/internal/life"

const (
	blockUpper = '▀'
	blockLower = '▄'
	blockFull  = '█'
)

// HalfBlockTokens packs two vertically stacked cells into each character:
// the upper cell drives one of foreground/background and the lower cell the
// other, so every output character carries a background directive too.
type HalfBlockTokens struct {
	_ noCopy

	topo   life.Topology
	states life.StateLookup
	theme  *Theme

	x0, y0 int
	w, h   int
	rows   int
	border borderPainter

	phase phase
	col   int
	row   int
	ch    rune

	q      tokenQueue
	colors lazyColors
	err    error
}

// NewHalfBlockTokens builds the enumerator. Viewport heights are in cells, so
// a viewport of height 2n fills n terminal rows.
func NewHalfBlockTokens(topo life.Topology, states life.StateLookup, theme *Theme, vp *Viewport) *HalfBlockTokens {
	t := &HalfBlockTokens{}
	t.Reset(topo, states, theme, vp)
	return t
}

// Reset re-arms the enumerator for a new frame.
func (t *HalfBlockTokens) Reset(topo life.Topology, states life.StateLookup, theme *Theme, vp *Viewport) {
	bw, bh := topo.Bounds()
	x0, y0, w, h, edges := vp.window(bw, bh)
	t.topo = topo
	t.states = states
	t.theme = theme
	t.x0, t.y0, t.w, t.h = x0, y0, w, h
	t.rows = (h + 1) / 2
	t.border = borderPainter{edges: edges, theme: theme}
	t.phase = phaseStart
	t.col, t.row = 0, 0
	t.q.reset()
	t.colors.reset()
	t.err = nil
}

// Size is the content width and height in characters, border excluded.
func (t *HalfBlockTokens) Size() (int, int) {
	return t.w, t.rows
}

func (t *HalfBlockTokens) Next() (Token, bool) {
	for t.q.n == 0 {
		if t.phase == phaseDone {
			return Token{}, false
		}
		t.step()
	}
	return t.q.pop()
}

func (t *HalfBlockTokens) Err() error {
	return t.err
}

func (t *HalfBlockTokens) rowStart() phase {
	switch {
	case t.row == t.rows && t.theme.Border:
		return phaseBottomBorder
	case t.row == t.rows:
		return phaseDone
	case t.theme.Border:
		return phaseLeftBorder
	case t.w == 0:
		return phaseRowNewline
	default:
		return phaseCellColor
	}
}

func (t *HalfBlockTokens) step() {
	switch t.phase {
	case phaseStart:
		t.q.push(ResetToken())
		if t.theme.Border {
			t.phase = phaseTopBorder
		} else {
			t.phase = t.rowStart()
		}
	case phaseTopBorder:
		if t.col == t.w+2 {
			t.q.push(CharToken('\n'))
			t.col = 0
			t.phase = t.rowStart()
			return
		}
		r, fg := t.border.top(t.col, t.w)
		t.colors.emit(&t.q, fg, ColorDefault, r)
		t.col++
	case phaseLeftBorder:
		r, fg := t.border.left()
		t.colors.emit(&t.q, fg, ColorDefault, r)
		if t.w == 0 {
			t.phase = phaseRightBorder
		} else {
			t.phase = phaseCellColor
		}
	case phaseCellColor:
		ch, fg, bg, err := t.pair()
		if err != nil {
			t.fail(err)
			return
		}
		t.colors.directives(&t.q, fg, bg)
		t.ch = ch
		t.phase = phaseCellChar
	case phaseCellChar:
		t.q.push(CharToken(t.ch))
		t.col++
		switch {
		case t.col < t.w:
			t.phase = phaseCellColor
		case t.theme.Border:
			t.phase = phaseRightBorder
		default:
			t.phase = phaseRowNewline
		}
	case phaseRightBorder:
		r, fg := t.border.right()
		t.colors.emit(&t.q, fg, ColorDefault, r)
		t.phase = phaseRowNewline
	case phaseRowNewline:
		t.q.push(CharToken('\n'))
		t.row++
		t.col = 0
		t.phase = t.rowStart()
	case phaseBottomBorder:
		if t.col == t.w+2 {
			t.q.push(CharToken('\n'))
			t.phase = phaseDone
			return
		}
		r, fg := t.border.bottom(t.col, t.w)
		t.colors.emit(&t.q, fg, ColorDefault, r)
		t.col++
	default:
		unhandledPhase(t.phase)
	}
}

// pair resolves the character and colors for the two cells under the cursor.
// A lower half past the end of an odd-height window shows the terminal default.
func (t *HalfBlockTokens) pair() (rune, Color, Color, error) {
	x := t.x0 + t.col
	upperY := t.y0 + 2*t.row
	upper, err := lookupRole(t.topo, t.states, life.Point{X: x, Y: upperY})
	if err != nil {
		return 0, ColorNone, ColorNone, err
	}
	upperColor := t.theme.halfColor(upper)
	lowerColor := ColorDefault
	lowerAlive := false
	if 2*t.row+1 < t.h {
		lower, err := lookupRole(t.topo, t.states, life.Point{X: x, Y: upperY + 1})
		if err != nil {
			return 0, ColorNone, ColorNone, err
		}
		lowerColor = t.theme.halfColor(lower)
		lowerAlive = lower == roleAlive
	}
	upperAlive := upper == roleAlive

	switch {
	case upperAlive && lowerAlive:
		return blockFull, t.theme.AliveFg, t.theme.DeadBg, nil
	case upperAlive:
		return blockUpper, upperColor, lowerColor, nil
	case lowerAlive:
		return blockLower, lowerColor, upperColor, nil
	case upperColor == lowerColor:
		return ' ', t.theme.DeadFg, upperColor, nil
	default:
		return blockUpper, upperColor, lowerColor, nil
	}
}

// halfColor is the color a role paints half a character with.
func (t *Theme) halfColor(role cellRole) Color {
	switch role {
	case roleAlive:
		return t.AliveFg
	case roleDead:
		return t.DeadBg
	default:
		return t.OutsideBg
	}
}

func (t *HalfBlockTokens) fail(err error) {
	t.err = err
	t.q.reset()
	t.phase = phaseDone
}
