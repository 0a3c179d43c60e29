package render

import (
	"fmt"
	"strings"
)

// Color is the closed set of colors the pipeline understands. ColorNone means
// "not set" and is never written to the terminal.
type Color uint8

const (
	ColorNone Color = iota
	ColorDefault
	ColorBlack
	ColorDarkRed
	ColorDarkGreen
	ColorDarkYellow
	ColorDarkBlue
	ColorDarkMagenta
	ColorDarkCyan
	ColorGray
	ColorDarkGray
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite

	colorCount
)

var colorNames = [colorCount]string{
	ColorNone:        "none",
	ColorDefault:     "default",
	ColorBlack:       "black",
	ColorDarkRed:     "dark-red",
	ColorDarkGreen:   "dark-green",
	ColorDarkYellow:  "dark-yellow",
	ColorDarkBlue:    "dark-blue",
	ColorDarkMagenta: "dark-magenta",
	ColorDarkCyan:    "dark-cyan",
	ColorGray:        "gray",
	ColorDarkGray:    "dark-gray",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorBlue:        "blue",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
}

// Foreground SGR parameters. Background is foreground + 10.
var fgCodes = [colorCount]int{
	ColorDefault:     39,
	ColorBlack:       30,
	ColorDarkRed:     31,
	ColorDarkGreen:   32,
	ColorDarkYellow:  33,
	ColorDarkBlue:    34,
	ColorDarkMagenta: 35,
	ColorDarkCyan:    36,
	ColorGray:        37,
	ColorDarkGray:    90,
	ColorRed:         91,
	ColorGreen:       92,
	ColorYellow:      93,
	ColorBlue:        94,
	ColorMagenta:     95,
	ColorCyan:        96,
	ColorWhite:       97,
}

// Known reports whether c is a member of the closed palette. ColorNone is not.
func (c Color) Known() bool {
	return c > ColorNone && c < colorCount
}

func (c Color) String() string {
	if c < colorCount {
		return colorNames[c]
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// FgCode returns the SGR foreground parameter for c.
func (c Color) FgCode() int {
	mustKnow(c)
	return fgCodes[c]
}

// BgCode returns the SGR background parameter for c.
func (c Color) BgCode() int {
	mustKnow(c)
	return fgCodes[c] + 10
}

// ParseColor resolves a configuration color name such as "dark-gray" or "DarkGray".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	for c := ColorDefault; c < colorCount; c++ {
		n := colorNames[c]
		if key == n || key == strings.ReplaceAll(n, "-", "") {
			return c, nil
		}
	}
	return ColorNone, fmt.Errorf("unknown color %q", name)
}

func mustKnow(c Color) {
	if !c.Known() {
		panic(fmt.Sprintf("render: color %s is outside the known palette", c))
	}
}
