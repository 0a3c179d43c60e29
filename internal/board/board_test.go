package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/yitzhaks/gameoflife/internal/config"
	"github.com/yitzhaks/gameoflife/internal/life"
)

func TestBuildTorusFromPattern(t *testing.T) {
	b, err := Build(config.BoardConfig{Topology: "torus", Width: 20, Height: 10, Pattern: "glider"}, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Placed != 5 || b.Skipped != 0 {
		t.Fatalf("placed %d skipped %d, want 5/0", b.Placed, b.Skipped)
	}
	if w, h := b.Engine.Topology().Bounds(); w != 20 || h != 10 {
		t.Fatalf("bounds = %dx%d", w, h)
	}
	if b.Engine.Rules() != life.Conway {
		t.Fatalf("rules = %v", b.Engine.Rules())
	}
	if b.Engine.Population() != 5 {
		t.Fatalf("population = %d", b.Engine.Population())
	}
}

func TestBuildSizesToCallerThenDefaults(t *testing.T) {
	topo, err := Topology(config.BoardConfig{Topology: "rect"}, 33, 11)
	if err != nil {
		t.Fatalf("Topology: %v", err)
	}
	if w, h := topo.Bounds(); w != 33 || h != 11 {
		t.Fatalf("bounds = %dx%d, want 33x11", w, h)
	}
	if topo.(*life.Rect).Wrap() {
		t.Fatalf("rect topology must not wrap")
	}
	topo, err = Topology(config.BoardConfig{}, 0, 0)
	if err != nil {
		t.Fatalf("Topology: %v", err)
	}
	if w, h := topo.Bounds(); w != DefaultWidth || h != DefaultHeight {
		t.Fatalf("bounds = %dx%d, want defaults", w, h)
	}
}

func TestBuildHexUsesHexRule(t *testing.T) {
	b, err := Build(config.BoardConfig{Topology: "hex", Radius: 6, Density: 0.5, Seed: 7}, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Engine.Rules() != life.HexLife {
		t.Fatalf("rules = %v, want hex rule", b.Engine.Rules())
	}
	if b.Placed == 0 || b.Placed != b.Engine.Population() {
		t.Fatalf("random soup placed %d, population %d", b.Placed, b.Engine.Population())
	}
}

func TestBuildRandomIsDeterministic(t *testing.T) {
	cfg := config.BoardConfig{Width: 16, Height: 16, Density: 0.4, Seed: 42}
	a, err := Build(cfg, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	b, err := Build(cfg, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for p := range a.Engine.Topology().Nodes() {
		sa, _ := a.Engine.Generation().StateAt(p)
		sb, _ := b.Engine.Generation().StateAt(p)
		if sa != sb {
			t.Fatalf("state at %v differs between identical seeds", p)
		}
	}
}

func TestBuildPatternRuleAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeds.rle")
	if err := os.WriteFile(path, []byte("x = 2, y = 1, rule = B2/S\n2o!\n"), 0o600); err != nil {
		t.Fatalf("write pattern: %v", err)
	}
	b, err := Build(config.BoardConfig{Width: 8, Height: 8, Pattern: path}, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := b.Engine.Rules().String(); got != "B2/S" {
		t.Fatalf("rules = %s, want pattern rule B2/S", got)
	}
	b, err = Build(config.BoardConfig{Width: 8, Height: 8, Pattern: path, Rule: "B3/S23"}, 0, 0)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if b.Engine.Rules() != life.Conway {
		t.Fatalf("configured rule must win, got %v", b.Engine.Rules())
	}
}

func TestBuildErrors(t *testing.T) {
	if _, err := Build(config.BoardConfig{Topology: "klein"}, 0, 0); err == nil {
		t.Fatalf("expected unknown topology error")
	}
	if _, err := Build(config.BoardConfig{Pattern: "no-such-pattern"}, 0, 0); err == nil {
		t.Fatalf("expected unknown pattern error")
	}
	if _, err := Build(config.BoardConfig{Rule: "B9"}, 0, 0); err == nil {
		t.Fatalf("expected rule error")
	}
}
