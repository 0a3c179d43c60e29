// Package emu is a small VT emulator covering the escape sequences the
// renderer writes: cursor positioning, erase in line, SGR colors, cursor
// visibility and the alternate screen. Anything else is parsed and ignored.
package emu

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/yitzhaks/gameoflife/internal/terminal"
)

// Emulator is a minimal VT-style terminal.
type Emulator struct {
	cols int
	rows int

	main screen
	alt  screen
	scr  *screen

	cursorVisible bool
	wrapPending   bool

	fg uint32
	bg uint32

	parser parserState
}

var _ terminal.Emulator = (*Emulator)(nil)

// New constructs a new emulator with the given size.
func New(cols, rows int) *Emulator {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	e := &Emulator{
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
	}
	e.main = newScreen(cols, rows)
	e.alt = newScreen(cols, rows)
	e.scr = &e.main
	return e
}

// Write feeds terminal output into the emulator.
func (e *Emulator) Write(p []byte) error {
	for _, b := range p {
		e.consumeByte(b)
	}
	return nil
}

// Resize changes the emulator size, keeping the overlapping content.
func (e *Emulator) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	onAlt := e.scr == &e.alt
	e.cols = cols
	e.rows = rows
	e.main = e.main.resize(cols, rows)
	e.alt = e.alt.resize(cols, rows)
	if onAlt {
		e.scr = &e.alt
	} else {
		e.scr = &e.main
	}
	e.wrapPending = false
}

// Snapshot captures the visible screen.
func (e *Emulator) Snapshot() (terminal.Snapshot, error) {
	cells := make([]terminal.Cell, len(e.scr.cells))
	copy(cells, e.scr.cells)
	return terminal.Snapshot{
		Cols:          e.cols,
		Rows:          e.rows,
		Cursor:        e.scr.cursor,
		CursorVisible: e.cursorVisible,
		AltScreen:     e.scr == &e.alt,
		Cells:         cells,
	}, nil
}

// Lines is shorthand for the snapshot's text rows.
func (e *Emulator) Lines() []string {
	snap, _ := e.Snapshot()
	return snap.Lines()
}

func (e *Emulator) consumeByte(b byte) {
	switch e.parser.state {
	case stateGround:
		e.handleGround(b)
	case stateEscape:
		e.handleEscape(b)
	case stateCSI:
		e.handleCSIByte(b)
	case stateOSC:
		e.handleOSCByte(b)
	default:
		e.parser.state = stateGround
	}
}

func (e *Emulator) handleGround(b byte) {
	switch {
	case b == 0x1b:
		e.parser.state = stateEscape
	case b < 0x20 || b == 0x7f:
		e.handleControl(b)
	default:
		e.handlePrintableByte(b)
	}
}

func (e *Emulator) handleEscape(b byte) {
	e.parser.state = stateGround
	switch b {
	case '[':
		e.parser.resetCSI()
		e.parser.state = stateCSI
	case ']':
		e.parser.oscEsc = false
		e.parser.state = stateOSC
	}
}

func (e *Emulator) handleCSIByte(b byte) {
	switch {
	case b >= 0x40 && b <= 0x7e:
		private := e.parser.private
		params := e.parser.finalizeParams()
		e.parser.state = stateGround
		e.handleCSI(b, params, private)
	case b == '?' && !e.parser.paramSeen:
		e.parser.private = true
	case b >= '0' && b <= '9':
		e.parser.addDigit(int(b - '0'))
	case b == ';':
		e.parser.nextParam()
	case b == 0x1b:
		e.parser.state = stateEscape
	}
}

// handleOSCByte skips an OSC string up to BEL or ST.
func (e *Emulator) handleOSCByte(b byte) {
	if e.parser.oscEsc {
		e.parser.oscEsc = false
		if b == '\\' {
			e.parser.state = stateGround
		}
		return
	}
	switch b {
	case 0x1b:
		e.parser.oscEsc = true
	case 0x07:
		e.parser.state = stateGround
	}
}

func (e *Emulator) handleControl(b byte) {
	switch b {
	case 0x08: // BS
		e.wrapPending = false
		if e.scr.cursor.X > 0 {
			e.scr.cursor.X--
		}
	case 0x0a: // LF
		e.lineFeed()
	case 0x0d: // CR
		e.wrapPending = false
		e.scr.cursor.X = 0
	}
}

func (e *Emulator) handlePrintableByte(b byte) {
	if b < utf8.RuneSelf && len(e.parser.utf8Buf) == 0 {
		e.printRune(rune(b))
		return
	}
	e.parser.utf8Buf = append(e.parser.utf8Buf, b)
	if utf8.FullRune(e.parser.utf8Buf) {
		r, _ := utf8.DecodeRune(e.parser.utf8Buf)
		e.parser.utf8Buf = e.parser.utf8Buf[:0]
		e.printRune(r)
	}
}

func (e *Emulator) handleCSI(final byte, params []int, private bool) {
	switch final {
	case 'H', 'f':
		e.cursorPosition(param(params, 0, 1), param(params, 1, 1))
	case 'K':
		e.eraseLine(param(params, 0, 0))
	case 'm':
		e.selectGraphicRendition(params)
	case 'h':
		e.setMode(params, private, true)
	case 'l':
		e.setMode(params, private, false)
	}
}

func (e *Emulator) printRune(r rune) {
	if e.wrapPending {
		e.wrapPending = false
		e.scr.cursor.X = 0
		e.lineFeed()
	}
	width := runewidth.RuneWidth(r)
	if width <= 0 || width > e.cols {
		width = 1
	}
	if width == 2 && e.scr.cursor.X == e.cols-1 {
		e.scr.cursor.X = 0
		e.lineFeed()
	}
	e.setCell(e.scr.cursor.X, e.scr.cursor.Y, r, width)
	e.scr.cursor.X += width
	if e.scr.cursor.X >= e.cols {
		e.wrapPending = true
		e.scr.cursor.X = e.cols - 1
	}
}

func (e *Emulator) setCell(x, y int, r rune, width int) {
	if !e.scr.inBounds(x, y) {
		return
	}
	e.scr.cells[e.scr.index(x, y)] = terminal.Cell{Rune: r, FG: e.fg, BG: e.bg}
	if width == 2 && x+1 < e.cols {
		e.scr.cells[e.scr.index(x+1, y)] = terminal.Cell{Rune: 0, FG: e.fg, BG: e.bg}
	}
}

func (e *Emulator) lineFeed() {
	e.wrapPending = false
	if e.scr.cursor.Y == e.rows-1 {
		e.scr.scrollUp(e.blankCell())
		return
	}
	e.scr.cursor.Y++
}

func (e *Emulator) cursorPosition(row, col int) {
	e.wrapPending = false
	e.scr.cursor.Y = clamp(row-1, 0, e.rows-1)
	e.scr.cursor.X = clamp(col-1, 0, e.cols-1)
}

func (e *Emulator) eraseLine(mode int) {
	e.wrapPending = false
	switch mode {
	case 0:
		e.scr.clearLine(e.scr.cursor.Y, e.scr.cursor.X, e.cols-1, e.blankCell())
	case 1:
		e.scr.clearLine(e.scr.cursor.Y, 0, e.scr.cursor.X, e.blankCell())
	case 2:
		e.scr.clearLine(e.scr.cursor.Y, 0, e.cols-1, e.blankCell())
	}
}

func (e *Emulator) setMode(params []int, private, enable bool) {
	if !private {
		return
	}
	for _, p := range params {
		switch p {
		case 25:
			e.cursorVisible = enable
		case 1049:
			e.setAltScreen(enable)
		}
	}
}

func (e *Emulator) setAltScreen(enable bool) {
	e.wrapPending = false
	if enable {
		if e.scr == &e.alt {
			return
		}
		e.main.savedCursor = e.main.cursor
		e.alt.clearAll(e.blankCell())
		e.alt.cursor = terminal.Cursor{}
		e.scr = &e.alt
		return
	}
	if e.scr == &e.main {
		return
	}
	e.main.cursor = e.main.savedCursor
	e.scr = &e.main
}

func (e *Emulator) selectGraphicRendition(params []int) {
	for _, p := range params {
		switch {
		case p <= 0:
			e.fg = terminal.ColorDefault
			e.bg = terminal.ColorDefault
		case p == 39:
			e.fg = terminal.ColorDefault
		case p == 49:
			e.bg = terminal.ColorDefault
		case p >= 30 && p <= 37:
			e.fg = terminal.Indexed(p - 30)
		case p >= 40 && p <= 47:
			e.bg = terminal.Indexed(p - 40)
		case p >= 90 && p <= 97:
			e.fg = terminal.Indexed(p - 90 + 8)
		case p >= 100 && p <= 107:
			e.bg = terminal.Indexed(p - 100 + 8)
		}
	}
}

func (e *Emulator) blankCell() terminal.Cell {
	return terminal.Cell{Rune: ' ', FG: e.fg, BG: e.bg}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
