package emu

import "github.com/yitzhaks/gameoflife/internal/terminal"

type screen struct {
	cols int
	rows int

	cells       []terminal.Cell
	cursor      terminal.Cursor
	savedCursor terminal.Cursor
}

var blank = terminal.Cell{Rune: ' '}

func newScreen(cols, rows int) screen {
	s := screen{
		cols:  cols,
		rows:  rows,
		cells: make([]terminal.Cell, cols*rows),
	}
	s.clearAll(blank)
	return s
}

func (s screen) resize(cols, rows int) screen {
	next := newScreen(cols, rows)
	for y := 0; y < min(rows, s.rows); y++ {
		for x := 0; x < min(cols, s.cols); x++ {
			next.cells[y*cols+x] = s.cells[y*s.cols+x]
		}
	}
	next.cursor = clampCursor(s.cursor, cols, rows)
	next.savedCursor = clampCursor(s.savedCursor, cols, rows)
	return next
}

func clampCursor(c terminal.Cursor, cols, rows int) terminal.Cursor {
	return terminal.Cursor{X: min(c.X, cols-1), Y: min(c.Y, rows-1)}
}

func (s *screen) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < s.cols && y < s.rows
}

func (s *screen) index(x, y int) int {
	return y*s.cols + x
}

func (s *screen) clearAll(fill terminal.Cell) {
	for i := range s.cells {
		s.cells[i] = fill
	}
}

func (s *screen) clearLine(y, x0, x1 int, fill terminal.Cell) {
	if y < 0 || y >= s.rows {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, s.cols-1)
	for x := x0; x <= x1; x++ {
		s.cells[s.index(x, y)] = fill
	}
}

func (s *screen) scrollUp(fill terminal.Cell) {
	cols := s.cols
	copy(s.cells, s.cells[cols:])
	for x := 0; x < cols; x++ {
		s.cells[s.index(x, s.rows-1)] = fill
	}
}
