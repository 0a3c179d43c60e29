package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
)

// Topology names accepted in board.topology.
const (
	TopologyRect  = "rect"
	TopologyTorus = "torus"
	TopologyHex   = "hex"
)

// Validate resolves every enumerated or parsed field and reports all
// problems at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Board.Rules(); err != nil {
		errs = append(errs, err)
	}
	switch c.Board.TopologyName() {
	case TopologyRect, TopologyTorus:
		if c.Board.Width < 0 || c.Board.Height < 0 {
			errs = append(errs, fmt.Errorf("board size %dx%d is negative", c.Board.Width, c.Board.Height))
		}
	case TopologyHex:
		if c.Board.Radius < 1 {
			errs = append(errs, fmt.Errorf("hex radius %d must be at least 1", c.Board.Radius))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown topology %q", c.Board.Topology))
	}
	if c.Board.Density < 0 || c.Board.Density > 1 {
		errs = append(errs, fmt.Errorf("density %v is outside [0,1]", c.Board.Density))
	}
	if _, err := c.Geometry(); err != nil {
		errs = append(errs, err)
	}
	if c.Render.FPS < 1 {
		errs = append(errs, fmt.Errorf("fps %d must be at least 1", c.Render.FPS))
	}
	if c.Render.GenerationsPerSecond <= 0 {
		errs = append(errs, fmt.Errorf("gps %v must be positive", c.Render.GenerationsPerSecond))
	}
	if _, err := c.Theme.RenderTheme(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TopologyName normalizes board.topology.
func (b BoardConfig) TopologyName() string {
	name := strings.ToLower(strings.TrimSpace(b.Topology))
	switch name {
	case "", "torus", "toroidal", "wrap":
		return TopologyTorus
	case "rect", "rectangle", "plane", "bounded":
		return TopologyRect
	case "hex", "hexagon", "hexagonal":
		return TopologyHex
	default:
		return name
	}
}

// Rules parses board.rule, falling back to the topology's usual rule.
func (b BoardConfig) Rules() (life.Rules, error) {
	rule := strings.TrimSpace(b.Rule)
	if rule == "" {
		if b.TopologyName() == TopologyHex {
			rule = DefaultHexRule
		} else {
			rule = DefaultRule
		}
	}
	return life.ParseRules(rule)
}

// Geometry resolves render.geometry against the board topology. Empty and
// "auto" follow the topology; an explicit packing that cannot walk the
// topology's coordinates is an error.
func (c Config) Geometry() (render.Geometry, error) {
	hex := c.Board.TopologyName() == TopologyHex
	name := strings.ToLower(strings.TrimSpace(c.Render.Geometry))
	if name == "" || name == GeometryAuto {
		if hex {
			return render.GeometryHex, nil
		}
		return render.GeometryCells, nil
	}
	g, err := render.ParseGeometry(name)
	if err != nil {
		return g, err
	}
	if (g == render.GeometryHex) != hex {
		return g, fmt.Errorf("geometry %s cannot draw a %s board", g, c.Board.TopologyName())
	}
	return g, nil
}

// RenderTheme converts the theme section into a validated render.Theme.
func (t ThemeConfig) RenderTheme() (render.Theme, error) {
	theme := render.DefaultTheme()
	theme.Border = t.Border

	chars := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"theme.alive", t.Alive, &theme.AliveChar},
		{"theme.dead", t.Dead, &theme.DeadChar},
	}
	for _, c := range chars {
		if c.src == "" {
			continue
		}
		if utf8.RuneCountInString(c.src) != 1 {
			return render.Theme{}, fmt.Errorf("%s %q must be a single character", c.name, c.src)
		}
		r, _ := utf8.DecodeRuneInString(c.src)
		*c.dst = r
	}

	colors := []struct {
		name string
		src  string
		dst  *render.Color
	}{
		{"theme.alive_fg", t.AliveFg, &theme.AliveFg},
		{"theme.alive_bg", t.AliveBg, &theme.AliveBg},
		{"theme.dead_fg", t.DeadFg, &theme.DeadFg},
		{"theme.dead_bg", t.DeadBg, &theme.DeadBg},
		{"theme.border_fg", t.BorderFg, &theme.BorderFg},
		{"theme.border_scroll_fg", t.BorderScrollFg, &theme.BorderScrollFg},
		{"theme.outside_fg", t.OutsideFg, &theme.OutsideFg},
		{"theme.outside_bg", t.OutsideBg, &theme.OutsideBg},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		color, err := render.ParseColor(c.src)
		if err != nil {
			return render.Theme{}, fmt.Errorf("%s: %w", c.name, err)
		}
		*c.dst = color
	}
	if err := theme.Validate(); err != nil {
		return render.Theme{}, err
	}
	return theme, nil
}
