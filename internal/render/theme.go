package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// Theme maps cell roles to characters and colors.
type Theme struct {
	AliveChar rune
	DeadChar  rune

	AliveFg Color
	AliveBg Color
	DeadFg  Color
	DeadBg  Color

	// BorderFg colors edges that are the true board boundary; BorderScrollFg
	// colors edges with more board beyond them.
	BorderFg       Color
	BorderScrollFg Color

	// Outside colors coordinates in the iterated rectangle that are not nodes.
	OutsideFg Color
	OutsideBg Color

	Border bool
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		AliveChar:      '█',
		DeadChar:       '·',
		AliveFg:        ColorGreen,
		AliveBg:        ColorDefault,
		DeadFg:         ColorDarkGray,
		DeadBg:         ColorDefault,
		BorderFg:       ColorGray,
		BorderScrollFg: ColorDarkGray,
		OutsideFg:      ColorDarkGray,
		OutsideBg:      ColorBlack,
		Border:         true,
	}
}

// Validate checks that every character occupies one terminal column and every
// color is in the palette.
func (t Theme) Validate() error {
	for _, c := range []struct {
		name string
		r    rune
	}{
		{"alive char", t.AliveChar},
		{"dead char", t.DeadChar},
	} {
		if c.r == '\n' || c.r < ' ' {
			return fmt.Errorf("%s %q is a control character", c.name, c.r)
		}
		if w := runewidth.RuneWidth(c.r); w != 1 {
			return fmt.Errorf("%s %q is %d columns wide, want 1", c.name, c.r, w)
		}
	}
	for _, c := range []struct {
		name  string
		color Color
	}{
		{"alive fg", t.AliveFg},
		{"alive bg", t.AliveBg},
		{"dead fg", t.DeadFg},
		{"dead bg", t.DeadBg},
		{"border fg", t.BorderFg},
		{"border scroll fg", t.BorderScrollFg},
		{"outside fg", t.OutsideFg},
		{"outside bg", t.OutsideBg},
	} {
		if !c.color.Known() {
			return fmt.Errorf("%s: %s is not a known color", c.name, c.color)
		}
	}
	return nil
}
