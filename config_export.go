package gameoflife

import "github.com/yitzhaks/gameoflife/internal/config"

// Config mirrors the gameoflife configuration.
type Config = config.Config

// BoardConfig describes the board and its seed.
type BoardConfig = config.BoardConfig

// RenderConfig controls frame pacing and glyph packing.
type RenderConfig = config.RenderConfig

// ThemeConfig names the characters and colors of each cell role.
type ThemeConfig = config.ThemeConfig

// LogConfig configures the interactive log file.
type LogConfig = config.LogConfig

// Loader wraps configuration loading via Viper.
type Loader = config.Loader

const (
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = config.EnvPrefix
	// DefaultConfigDirName is the directory name under the home directory.
	DefaultConfigDirName = config.DefaultConfigDirName
	// DefaultConfigFileName is the default config file name.
	DefaultConfigFileName = config.DefaultConfigFileName
	// DefaultLogFileName is the default log file name.
	DefaultLogFileName = config.DefaultLogFileName

	// TopologyRect, TopologyTorus and TopologyHex are the board shapes.
	TopologyRect  = config.TopologyRect
	TopologyTorus = config.TopologyTorus
	TopologyHex   = config.TopologyHex

	// DefaultTopology is the default board shape.
	DefaultTopology = config.DefaultTopology
	// DefaultRule is Conway's rule.
	DefaultRule = config.DefaultRule
	// DefaultHexRule is the default rule on hexagonal boards.
	DefaultHexRule = config.DefaultHexRule
	// DefaultGeometry is the default glyph packing.
	DefaultGeometry = config.DefaultGeometry
	// GeometryAuto picks the glyph packing from the topology.
	GeometryAuto = config.GeometryAuto
	// DefaultFPS is the default frame-rate cap.
	DefaultFPS = config.DefaultFPS
	// DefaultGenerationsPerSecond is the default simulation speed.
	DefaultGenerationsPerSecond = config.DefaultGenerationsPerSecond
)

// NewLoader returns a config loader with defaults wired.
func NewLoader() *config.Loader {
	l := config.NewLoader()
	config.SetDefaults(l.Viper())
	return l
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return config.DefaultConfig()
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	return config.DefaultConfigDir()
}

// DefaultConfigPath returns the default config path.
func DefaultConfigPath() string {
	return config.DefaultConfigPath()
}

// DefaultLogPath returns the default log path.
func DefaultLogPath() string {
	return config.DefaultLogPath()
}

// DefaultPatternDir returns the user pattern directory.
func DefaultPatternDir() string {
	return config.DefaultPatternDir()
}
