// Package pattern loads Life patterns from RLE and plaintext (.cells) files
// and places them on a generation.
package pattern

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yitzhaks/gameoflife/internal/life"
)

// ErrInvalidPattern is wrapped by every parse failure.
var ErrInvalidPattern = errors.New("invalid pattern")

// Format is a pattern file format.
type Format int

const (
	FormatAuto Format = iota
	FormatRLE
	FormatPlaintext
)

func (f Format) String() string {
	switch f {
	case FormatRLE:
		return "rle"
	case FormatPlaintext:
		return "plaintext"
	default:
		return "auto"
	}
}

// Pattern is a set of live cells relative to the pattern's top-left corner.
type Pattern struct {
	Name     string
	Comments []string
	Width    int
	Height   int
	// Rule is the rule string declared by the file, if any.
	Rule  string
	Cells []life.Point
}

// Parse reads a pattern. FormatAuto sniffs the content.
func Parse(r io.Reader, format Format) (*Pattern, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}
	if format == FormatAuto {
		format = sniff(data)
	}
	var p *Pattern
	switch format {
	case FormatRLE:
		p, err = parseRLE(data)
	case FormatPlaintext:
		p, err = parsePlaintext(data)
	default:
		return nil, fmt.Errorf("%w: unknown format %d", ErrInvalidPattern, format)
	}
	if err != nil {
		return nil, err
	}
	p.fitBounds()
	return p, nil
}

// Load reads a pattern file, choosing the format by extension and falling
// back to sniffing. The file name names patterns that do not name themselves.
func Load(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()

	p, err := Parse(f, formatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

func formatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".rle":
		return FormatRLE
	case ".cells":
		return FormatPlaintext
	default:
		return FormatAuto
	}
}

// sniff treats content with an "x = " header as RLE and anything else as
// plaintext.
func sniff(data []byte) Format {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "!") {
			continue
		}
		if strings.HasPrefix(line, "x") && strings.Contains(line, "=") {
			return FormatRLE
		}
		return FormatPlaintext
	}
	return FormatPlaintext
}

// fitBounds grows Width/Height to cover every cell.
func (p *Pattern) fitBounds() {
	for _, c := range p.Cells {
		p.Width = max(p.Width, c.X+1)
		p.Height = max(p.Height, c.Y+1)
	}
}

// Place sets the pattern's cells alive with its top-left corner at origin.
// Cells that fall outside the generation's topology are skipped and counted.
func Place(gen *life.Generation, p *Pattern, origin life.Point) (placed, skipped int) {
	for _, c := range p.Cells {
		if gen.Set(origin.Add(c), life.Alive) {
			placed++
		} else {
			skipped++
		}
	}
	return placed, skipped
}

// Centered returns the origin that centers p on a w x h board. With w and h
// zero it centers p on (0, 0), which suits hexagonal boards.
func Centered(p *Pattern, w, h int) life.Point {
	return life.Point{X: floorDiv(w-p.Width, 2), Y: floorDiv(h-p.Height, 2)}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
