package life

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRules is returned for rule strings that cannot be parsed.
var ErrInvalidRules = errors.New("invalid rules")

// Rules is a birth/survival table indexed by live neighbor count.
type Rules struct {
	Birth   uint16
	Survive uint16
}

var (
	// Conway is B3/S23.
	Conway = Rules{Birth: 1 << 3, Survive: 1<<2 | 1<<3}
	// HexLife is B2/S34, a common rule for six-neighbor boards.
	HexLife = Rules{Birth: 1 << 2, Survive: 1<<3 | 1<<4}
)

// Next returns the state of a node with the given live neighbor count.
func (r Rules) Next(s State, liveNeighbors int) State {
	if liveNeighbors < 0 || liveNeighbors > 15 {
		return Dead
	}
	bit := uint16(1) << liveNeighbors
	if s == Alive {
		if r.Survive&bit != 0 {
			return Alive
		}
		return Dead
	}
	if r.Birth&bit != 0 {
		return Alive
	}
	return Dead
}

func (r Rules) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 9; n++ {
		if mask&(1<<n) != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
}

// ParseRules accepts "B3/S23", "b3s23" and the legacy survival/birth form "23/3".
func ParseRules(s string) (Rules, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Rules{}, fmt.Errorf("%w: empty", ErrInvalidRules)
	}
	upper := strings.ToUpper(raw)
	if !strings.ContainsAny(upper, "BS") {
		parts := strings.Split(upper, "/")
		if len(parts) != 2 {
			return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
		}
		survive, err := parseCounts(parts[0])
		if err != nil {
			return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
		}
		birth, err := parseCounts(parts[1])
		if err != nil {
			return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
		}
		return Rules{Birth: birth, Survive: survive}, nil
	}

	upper = strings.ReplaceAll(upper, "/", "")
	bi := strings.IndexByte(upper, 'B')
	si := strings.IndexByte(upper, 'S')
	if bi < 0 || si < 0 {
		return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
	}
	var birthPart, survivePart string
	if bi < si {
		birthPart, survivePart = upper[bi+1:si], upper[si+1:]
	} else {
		survivePart, birthPart = upper[si+1:bi], upper[bi+1:]
	}
	birth, err := parseCounts(birthPart)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
	}
	survive, err := parseCounts(survivePart)
	if err != nil {
		return Rules{}, fmt.Errorf("%w: %q", ErrInvalidRules, s)
	}
	return Rules{Birth: birth, Survive: survive}, nil
}

func parseCounts(s string) (uint16, error) {
	var mask uint16
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("bad count %q", r)
		}
		mask |= 1 << (r - '0')
	}
	return mask, nil
}
