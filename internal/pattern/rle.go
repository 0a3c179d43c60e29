package pattern

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/yitzhaks/gameoflife/internal/life"
)

func parseRLE(data []byte) (*Pattern, error) {
	p := &Pattern{}
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	header := false
	x, y, run := 0, 0, 0
	done := false
	for sc.Scan() && !done {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			p.comment(line)
			continue
		}
		if !header {
			if err := p.rleHeader(line); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidPattern, lineNo, err)
			}
			header = true
			continue
		}
		for i := 0; i < len(line) && !done; i++ {
			ch := line[i]
			switch {
			case ch >= '0' && ch <= '9':
				run = run*10 + int(ch-'0')
				continue
			case ch == ' ' || ch == '\t':
				continue
			}
			n := max(run, 1)
			run = 0
			switch ch {
			case 'b', '.':
				x += n
			case '$':
				y += n
				x = 0
			case '!':
				done = true
			default:
				if ch < 'A' || (ch > 'Z' && ch < 'a') || ch > 'z' {
					return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidPattern, lineNo, ch)
				}
				for k := 0; k < n; k++ {
					p.Cells = append(p.Cells, life.Point{X: x + k, Y: y})
				}
				x += n
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: missing RLE header", ErrInvalidPattern)
	}
	if run != 0 {
		return nil, fmt.Errorf("%w: dangling run count %d", ErrInvalidPattern, run)
	}
	return p, nil
}

func (p *Pattern) comment(line string) {
	if len(line) < 2 {
		return
	}
	body := strings.TrimSpace(line[2:])
	switch line[1] {
	case 'N':
		p.Name = body
	case 'r':
		p.Rule = body
	case 'C', 'c', 'O':
		p.Comments = append(p.Comments, body)
	}
}

// rleHeader parses "x = m, y = n[, rule = abc]".
func (p *Pattern) rleHeader(line string) error {
	for _, field := range strings.Split(line, ",") {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return fmt.Errorf("malformed header field %q", strings.TrimSpace(field))
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		switch key {
		case "x", "y":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return fmt.Errorf("bad %s %q", key, value)
			}
			if key == "x" {
				p.Width = n
			} else {
				p.Height = n
			}
		case "rule":
			p.Rule = value
		}
	}
	return nil
}
