package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/yitzhaks/gameoflife/internal/life"
)

// parsePlaintext reads the .cells format: "!" comment lines, then rows of
// "O" (alive) and "." (dead).
func parsePlaintext(data []byte) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	y := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			body := strings.TrimSpace(line[1:])
			if name, ok := strings.CutPrefix(body, "Name:"); ok {
				p.Name = strings.TrimSpace(name)
			} else if body != "" {
				p.Comments = append(p.Comments, body)
			}
			continue
		}
		for x, ch := range []rune(line) {
			switch ch {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, life.Point{X: x, Y: y})
			case '.', ' ':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidPattern, lineNo, ch)
			}
		}
		p.Width = max(p.Width, len([]rune(line)))
		y++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	p.Height = y
	return p, nil
}
