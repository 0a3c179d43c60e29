package render

import (
	"errors"
	"fmt"

	"github.com/yitzhaks/gameoflife/internal/life"
)

// ErrMissingState is returned when a node of the topology has no state in the
// generation being rendered. The renderer never substitutes a default; wrap
// sparse generations with life.WithDefault before rendering.
var ErrMissingState = errors.New("node has no state")

// phase is a step of the token state machines. Every enumerator uses a
// subset; reaching a phase an enumerator does not handle is a defect.
type phase uint8

const (
	phaseStart phase = iota
	phaseTopBorder
	phaseLeftBorder
	phaseRowIndent
	phaseCellColor
	phaseCellChar
	phaseRowSpacer
	phaseRightBorder
	phaseRowNewline
	phaseBottomBorder
	phaseDone
)

func unhandledPhase(p phase) {
	panic(fmt.Sprintf("render: unhandled phase %d", p))
}

type cellRole uint8

const (
	roleOutside cellRole = iota
	roleDead
	roleAlive
)

func lookupRole(topo life.Topology, states life.StateLookup, p life.Point) (cellRole, error) {
	if !topo.Contains(p) {
		return roleOutside, nil
	}
	s, ok := states.StateAt(p)
	if !ok {
		return roleOutside, fmt.Errorf("%w at (%d,%d)", ErrMissingState, p.X, p.Y)
	}
	if s == life.Alive {
		return roleAlive, nil
	}
	return roleDead, nil
}

// look returns the character and colors of a full-cell role.
func (t *Theme) look(role cellRole) (rune, Color, Color) {
	switch role {
	case roleAlive:
		return t.AliveChar, t.AliveFg, t.AliveBg
	case roleDead:
		return t.DeadChar, t.DeadFg, t.DeadBg
	default:
		return ' ', t.OutsideFg, t.OutsideBg
	}
}

// CellTokens renders one character per cell inside an optional box border.
type CellTokens struct {
	_ noCopy

	topo   life.Topology
	states life.StateLookup
	theme  *Theme

	x0, y0 int
	w, h   int
	border borderPainter

	phase phase
	col   int
	row   int
	ch    rune

	q      tokenQueue
	colors lazyColors
	err    error
}

// NewCellTokens builds the enumerator for a rectangular board. vp may be nil.
func NewCellTokens(topo life.Topology, states life.StateLookup, theme *Theme, vp *Viewport) *CellTokens {
	c := &CellTokens{}
	c.Reset(topo, states, theme, vp)
	return c
}

// Reset re-arms the enumerator for a new frame.
func (c *CellTokens) Reset(topo life.Topology, states life.StateLookup, theme *Theme, vp *Viewport) {
	bw, bh := topo.Bounds()
	x0, y0, w, h, edges := vp.window(bw, bh)
	c.topo = topo
	c.states = states
	c.theme = theme
	c.x0, c.y0, c.w, c.h = x0, y0, w, h
	c.border = borderPainter{edges: edges, theme: theme}
	c.phase = phaseStart
	c.col, c.row = 0, 0
	c.q.reset()
	c.colors.reset()
	c.err = nil
}

// Size is the content width and height in characters, border excluded.
func (c *CellTokens) Size() (int, int) {
	return c.w, c.h
}

func (c *CellTokens) Next() (Token, bool) {
	for c.q.n == 0 {
		if c.phase == phaseDone {
			return Token{}, false
		}
		c.step()
	}
	return c.q.pop()
}

func (c *CellTokens) Err() error {
	return c.err
}

func (c *CellTokens) rowStart() phase {
	switch {
	case c.row == c.h && c.theme.Border:
		return phaseBottomBorder
	case c.row == c.h:
		return phaseDone
	case c.theme.Border:
		return phaseLeftBorder
	case c.w == 0:
		return phaseRowNewline
	default:
		return phaseCellColor
	}
}

func (c *CellTokens) step() {
	switch c.phase {
	case phaseStart:
		c.q.push(ResetToken())
		if c.theme.Border {
			c.phase = phaseTopBorder
		} else {
			c.phase = c.rowStart()
		}
	case phaseTopBorder:
		if c.col == c.w+2 {
			c.q.push(CharToken('\n'))
			c.col = 0
			c.phase = c.rowStart()
			return
		}
		r, fg := c.border.top(c.col, c.w)
		c.colors.emit(&c.q, fg, ColorDefault, r)
		c.col++
	case phaseLeftBorder:
		r, fg := c.border.left()
		c.colors.emit(&c.q, fg, ColorDefault, r)
		if c.w == 0 {
			c.phase = phaseRightBorder
		} else {
			c.phase = phaseCellColor
		}
	case phaseCellColor:
		role, err := lookupRole(c.topo, c.states, life.Point{X: c.x0 + c.col, Y: c.y0 + c.row})
		if err != nil {
			c.fail(err)
			return
		}
		ch, fg, bg := c.theme.look(role)
		c.colors.directives(&c.q, fg, bg)
		c.ch = ch
		c.phase = phaseCellChar
	case phaseCellChar:
		c.q.push(CharToken(c.ch))
		c.col++
		switch {
		case c.col < c.w:
			c.phase = phaseCellColor
		case c.theme.Border:
			c.phase = phaseRightBorder
		default:
			c.phase = phaseRowNewline
		}
	case phaseRightBorder:
		r, fg := c.border.right()
		c.colors.emit(&c.q, fg, ColorDefault, r)
		c.phase = phaseRowNewline
	case phaseRowNewline:
		c.q.push(CharToken('\n'))
		c.row++
		c.col = 0
		c.phase = c.rowStart()
	case phaseBottomBorder:
		if c.col == c.w+2 {
			c.q.push(CharToken('\n'))
			c.phase = phaseDone
			return
		}
		r, fg := c.border.bottom(c.col, c.w)
		c.colors.emit(&c.q, fg, ColorDefault, r)
		c.col++
	default:
		unhandledPhase(c.phase)
	}
}

func (c *CellTokens) fail(err error) {
	c.err = err
	c.q.reset()
	c.phase = phaseDone
}
