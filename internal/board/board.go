// Package board builds a seeded life engine from the board section of the
// configuration.
package board

import (
	"fmt"
	"strings"

	"github.com/yitzhaks/gameoflife/internal/config"
	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/pattern"
)

const (
	// DefaultWidth and DefaultHeight size a rectangular board when neither
	// the configuration nor the caller knows better.
	DefaultWidth  = 64
	DefaultHeight = 32
)

// Board is a seeded engine and how it was seeded.
type Board struct {
	Engine  *life.Engine
	Pattern *pattern.Pattern
	Placed  int
	Skipped int
}

// Build creates the topology, resolves the rule and seeds the first
// generation. width and height size rectangular boards whose configured size
// is zero; callers pass the terminal area or zero for the defaults.
func Build(cfg config.BoardConfig, width, height int) (*Board, error) {
	topo, err := Topology(cfg, width, height)
	if err != nil {
		return nil, err
	}

	var p *pattern.Pattern
	if ref := strings.TrimSpace(cfg.Pattern); ref != "" {
		p, err = pattern.Resolve(ref, config.DefaultPatternDir())
		if err != nil {
			return nil, err
		}
	}

	rules, err := resolveRules(cfg, p)
	if err != nil {
		return nil, err
	}

	b := &Board{Pattern: p}
	seed := life.NewGeneration(topo)
	if p != nil {
		b.Placed, b.Skipped = pattern.Place(seed, p, origin(topo, p))
	} else {
		life.Randomize(seed, cfg.Density, cfg.Seed)
		b.Placed = seed.Population()
	}
	b.Engine = life.NewEngine(topo, rules, seed)
	return b, nil
}

// Topology builds the configured topology.
func Topology(cfg config.BoardConfig, width, height int) (life.Topology, error) {
	switch cfg.TopologyName() {
	case config.TopologyHex:
		if cfg.Radius < 1 {
			return nil, fmt.Errorf("hex radius %d must be at least 1", cfg.Radius)
		}
		return life.NewHex(cfg.Radius), nil
	case config.TopologyRect, config.TopologyTorus:
		w, h := cfg.Width, cfg.Height
		if w <= 0 {
			w = width
		}
		if h <= 0 {
			h = height
		}
		if w <= 0 {
			w = DefaultWidth
		}
		if h <= 0 {
			h = DefaultHeight
		}
		return life.NewRect(w, h, cfg.TopologyName() == config.TopologyTorus), nil
	default:
		return nil, fmt.Errorf("unknown topology %q", cfg.Topology)
	}
}

// resolveRules prefers the configured rule, then the pattern's own rule, then
// the topology's usual rule.
func resolveRules(cfg config.BoardConfig, p *pattern.Pattern) (life.Rules, error) {
	if strings.TrimSpace(cfg.Rule) == "" && p != nil && p.Rule != "" {
		rules, err := life.ParseRules(p.Rule)
		if err != nil {
			return life.Rules{}, fmt.Errorf("pattern %s: %w", p.Name, err)
		}
		return rules, nil
	}
	return cfg.Rules()
}

func origin(topo life.Topology, p *pattern.Pattern) life.Point {
	if _, ok := topo.(*life.Hex); ok {
		return pattern.Centered(p, 0, 0)
	}
	w, h := topo.Bounds()
	return pattern.Centered(p, w, h)
}
