package config

const (
	// EnvPrefix prefixes every environment override, e.g. GAMEOFLIFE_RENDER_FPS.
	EnvPrefix = "GAMEOFLIFE"

	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = ".gameoflife"
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = "config.yaml"
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = "gameoflife.log"
	// DefaultPatternDirName holds user pattern files, searched after the built-ins.
	DefaultPatternDirName = "patterns"

	// DefaultTopology is the default board shape.
	DefaultTopology = "torus"
	// DefaultRule is Conway's rule.
	DefaultRule = "B3/S23"
	// DefaultHexRule is the rule used on hexagonal boards when none is set.
	DefaultHexRule = "B2/S34"
	// DefaultHexRadius is the default radius of a hexagonal board.
	DefaultHexRadius = 12
	// DefaultDensity is the live fraction of a random soup.
	DefaultDensity = 0.3

	// DefaultGeometry is the default glyph packing. GeometryAuto draws hex
	// boards as hexagons and everything else one cell per character.
	DefaultGeometry = GeometryAuto
	// GeometryAuto picks the glyph packing from the topology.
	GeometryAuto = "auto"
	// DefaultFPS caps the frame rate.
	DefaultFPS = 30
	// DefaultGenerationsPerSecond is the starting simulation speed.
	DefaultGenerationsPerSecond = 10.0

	// DefaultAliveChar and DefaultDeadChar are the cell characters.
	DefaultAliveChar = "█"
	DefaultDeadChar  = "·"

	DefaultAliveFg        = "green"
	DefaultAliveBg        = "default"
	DefaultDeadFg         = "dark-gray"
	DefaultDeadBg         = "default"
	DefaultBorderFg       = "gray"
	DefaultBorderScrollFg = "dark-gray"
	DefaultOutsideFg      = "dark-gray"
	DefaultOutsideBg      = "black"
)
