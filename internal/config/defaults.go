package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Topology: DefaultTopology,
			Radius:   DefaultHexRadius,
			Density:  DefaultDensity,
		},
		Render: RenderConfig{
			Geometry:             DefaultGeometry,
			FPS:                  DefaultFPS,
			GenerationsPerSecond: DefaultGenerationsPerSecond,
		},
		Theme: ThemeConfig{
			Alive:          DefaultAliveChar,
			Dead:           DefaultDeadChar,
			AliveFg:        DefaultAliveFg,
			AliveBg:        DefaultAliveBg,
			DeadFg:         DefaultDeadFg,
			DeadBg:         DefaultDeadBg,
			BorderFg:       DefaultBorderFg,
			BorderScrollFg: DefaultBorderScrollFg,
			OutsideFg:      DefaultOutsideFg,
			OutsideBg:      DefaultOutsideBg,
			Border:         true,
		},
		Log: LogConfig{
			File: DefaultLogPath(),
		},
	}
}

// SetDefaults registers every default with v so that environment overrides
// and partial config files resolve against them.
func SetDefaults(v interface{ SetDefault(string, any) }) {
	cfg := DefaultConfig()
	v.SetDefault("board.topology", cfg.Board.Topology)
	v.SetDefault("board.width", cfg.Board.Width)
	v.SetDefault("board.height", cfg.Board.Height)
	v.SetDefault("board.radius", cfg.Board.Radius)
	v.SetDefault("board.rule", cfg.Board.Rule)
	v.SetDefault("board.pattern", cfg.Board.Pattern)
	v.SetDefault("board.density", cfg.Board.Density)
	v.SetDefault("board.seed", cfg.Board.Seed)
	v.SetDefault("render.geometry", cfg.Render.Geometry)
	v.SetDefault("render.fps", cfg.Render.FPS)
	v.SetDefault("render.gps", cfg.Render.GenerationsPerSecond)
	v.SetDefault("render.paused", cfg.Render.Paused)
	v.SetDefault("render.max_generations", cfg.Render.MaxGenerations)
	v.SetDefault("theme.alive", cfg.Theme.Alive)
	v.SetDefault("theme.dead", cfg.Theme.Dead)
	v.SetDefault("theme.alive_fg", cfg.Theme.AliveFg)
	v.SetDefault("theme.alive_bg", cfg.Theme.AliveBg)
	v.SetDefault("theme.dead_fg", cfg.Theme.DeadFg)
	v.SetDefault("theme.dead_bg", cfg.Theme.DeadBg)
	v.SetDefault("theme.border_fg", cfg.Theme.BorderFg)
	v.SetDefault("theme.border_scroll_fg", cfg.Theme.BorderScrollFg)
	v.SetDefault("theme.outside_fg", cfg.Theme.OutsideFg)
	v.SetDefault("theme.outside_bg", cfg.Theme.OutsideBg)
	v.SetDefault("theme.border", cfg.Theme.Border)
	v.SetDefault("log.file", cfg.Log.File)
}
