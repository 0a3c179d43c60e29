// Package terminal holds the screen model shared by the in-repo emulator and
// its callers.
package terminal

import (
	"fmt"
	"strings"
)

// Emulator is a terminal that can be fed output and inspected.
type Emulator interface {
	Write(p []byte) error
	Resize(cols, rows int)
	Snapshot() (Snapshot, error)
}

// Cursor represents a cursor position.
type Cursor struct {
	X int
	Y int
}

// Cell represents a terminal cell's content and colors.
type Cell struct {
	Rune rune
	FG   uint32
	BG   uint32
}

// Snapshot captures terminal state.
type Snapshot struct {
	Cols          int
	Rows          int
	Cursor        Cursor
	CursorVisible bool
	AltScreen     bool
	Cells         []Cell
}

// Color encoding for snapshot cells. Indexed colors carry the ANSI palette
// index (0-15) in the low bits.
const (
	ColorDefault   uint32 = 0
	ColorIndexed   uint32 = 1 << 24
	ColorFlagMask  uint32 = 0xff000000
	ColorValueMask uint32 = 0x00ffffff
)

// Indexed encodes ANSI palette index n.
func Indexed(n int) uint32 {
	return ColorIndexed | uint32(n)&ColorValueMask
}

// CellAt returns the cell at (x, y).
func (s Snapshot) CellAt(x, y int) (Cell, error) {
	if x < 0 || y < 0 || x >= s.Cols || y >= s.Rows {
		return Cell{}, fmt.Errorf("cell (%d,%d) out of range %dx%d", x, y, s.Cols, s.Rows)
	}
	return s.Cells[y*s.Cols+x], nil
}

// Lines returns the screen text, one string per row, with trailing blanks
// trimmed.
func (s Snapshot) Lines() []string {
	lines := make([]string, s.Rows)
	var b strings.Builder
	for y := 0; y < s.Rows; y++ {
		b.Reset()
		for x := 0; x < s.Cols; x++ {
			r := s.Cells[y*s.Cols+x].Rune
			if r == 0 {
				continue
			}
			b.WriteRune(r)
		}
		lines[y] = strings.TrimRight(b.String(), " ")
	}
	return lines
}

// Text joins Lines with newlines after dropping trailing empty rows.
func (s Snapshot) Text() string {
	lines := s.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Diff reports the first cell that differs between a and b, or "" when the
// screens match.
func Diff(a, b Snapshot) string {
	if a.Cols != b.Cols || a.Rows != b.Rows {
		return fmt.Sprintf("size %dx%d != %dx%d", a.Cols, a.Rows, b.Cols, b.Rows)
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			x, y := i%a.Cols, i/a.Cols
			return fmt.Sprintf("cell (%d,%d): %q fg=%#x bg=%#x != %q fg=%#x bg=%#x",
				x, y, a.Cells[i].Rune, a.Cells[i].FG, a.Cells[i].BG,
				b.Cells[i].Rune, b.Cells[i].FG, b.Cells[i].BG)
		}
	}
	return ""
}
