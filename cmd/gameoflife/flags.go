package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yitzhaks/gameoflife"
)

// boardFlags are the board, render and theme flags shared by every command
// that builds a board. A flag overrides the loaded config only when set.
type boardFlags struct {
	topology string
	width    int
	height   int
	radius   int
	rule     string
	pattern  string
	density  float64
	seed     uint64
	geometry string
	alive    string
	dead     string
	noBorder bool
}

func (f *boardFlags) register(flags *pflag.FlagSet) {
	def := gameoflife.DefaultConfig()
	flags.StringVarP(&f.topology, "topology", "t", def.Board.Topology, "board topology: rect, torus or hex")
	flags.IntVar(&f.width, "width", def.Board.Width, "board width in cells (0 fits the terminal)")
	flags.IntVar(&f.height, "height", def.Board.Height, "board height in cells (0 fits the terminal)")
	flags.IntVar(&f.radius, "radius", def.Board.Radius, "hex board radius")
	flags.StringVarP(&f.rule, "rule", "r", def.Board.Rule, "B/S rule, e.g. B3/S23 (empty picks the topology's rule)")
	flags.StringVarP(&f.pattern, "pattern", "p", def.Board.Pattern, "built-in pattern name or RLE/.cells file (empty seeds a random soup)")
	flags.Float64Var(&f.density, "density", def.Board.Density, "live fraction of a random soup")
	flags.Uint64Var(&f.seed, "seed", def.Board.Seed, "random soup seed")
	flags.StringVarP(&f.geometry, "geometry", "g", def.Render.Geometry, "glyph packing: auto, cells, halfblock or hex")
	flags.StringVar(&f.alive, "alive", def.Theme.Alive, "alive cell character")
	flags.StringVar(&f.dead, "dead", def.Theme.Dead, "dead cell character")
	flags.BoolVar(&f.noBorder, "no-border", false, "draw the board without a border")
}

func (f *boardFlags) apply(cmd *cobra.Command, cfg *gameoflife.Config) {
	flags := cmd.Flags()
	if flags.Changed("topology") {
		cfg.Board.Topology = f.topology
	}
	if flags.Changed("width") {
		cfg.Board.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Board.Height = f.height
	}
	if flags.Changed("radius") {
		cfg.Board.Radius = f.radius
	}
	if flags.Changed("rule") {
		cfg.Board.Rule = f.rule
	}
	if flags.Changed("pattern") {
		cfg.Board.Pattern = f.pattern
	}
	if flags.Changed("density") {
		cfg.Board.Density = f.density
	}
	if flags.Changed("seed") {
		cfg.Board.Seed = f.seed
	}
	if flags.Changed("geometry") {
		cfg.Render.Geometry = f.geometry
	}
	if flags.Changed("alive") {
		cfg.Theme.Alive = f.alive
	}
	if flags.Changed("dead") {
		cfg.Theme.Dead = f.dead
	}
	if flags.Changed("no-border") {
		cfg.Theme.Border = !f.noBorder
	}
}

// loadConfig loads the config and applies the shared flags.
func loadConfig(cmd *cobra.Command, loader *gameoflife.Loader, f *boardFlags) (gameoflife.Config, error) {
	cfg, err := loader.Load()
	if err != nil {
		return gameoflife.Config{}, err
	}
	if f != nil {
		f.apply(cmd, &cfg)
	}
	return cfg, nil
}
