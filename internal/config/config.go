package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root configuration for gameoflife.
type Config struct {
	Board  BoardConfig  `mapstructure:"board" yaml:"board" json:"board"`
	Render RenderConfig `mapstructure:"render" yaml:"render" json:"render"`
	Theme  ThemeConfig  `mapstructure:"theme" yaml:"theme" json:"theme"`
	Log    LogConfig    `mapstructure:"log" yaml:"log" json:"log"`
}

// BoardConfig describes the board and how it is seeded.
type BoardConfig struct {
	// Topology is rect, torus or hex.
	Topology string `mapstructure:"topology" yaml:"topology" json:"topology"`
	// Width and Height of zero size the board to the terminal.
	Width  int    `mapstructure:"width" yaml:"width" json:"width"`
	Height int    `mapstructure:"height" yaml:"height" json:"height"`
	Radius int    `mapstructure:"radius" yaml:"radius" json:"radius"`
	// Rule is a B/S rule string. Empty picks the topology's usual rule.
	Rule string `mapstructure:"rule" yaml:"rule" json:"rule"`
	// Pattern is a built-in pattern name or a pattern file. Empty seeds a
	// random soup.
	Pattern string  `mapstructure:"pattern" yaml:"pattern" json:"pattern"`
	Density float64 `mapstructure:"density" yaml:"density" json:"density"`
	Seed    uint64  `mapstructure:"seed" yaml:"seed" json:"seed"`
}

// RenderConfig controls frame pacing and glyph packing.
type RenderConfig struct {
	Geometry             string  `mapstructure:"geometry" yaml:"geometry" json:"geometry"`
	FPS                  int     `mapstructure:"fps" yaml:"fps" json:"fps"`
	GenerationsPerSecond float64 `mapstructure:"gps" yaml:"gps" json:"gps"`
	Paused               bool    `mapstructure:"paused" yaml:"paused" json:"paused"`
	MaxGenerations       int     `mapstructure:"max_generations" yaml:"max_generations" json:"max_generations"`
}

// ThemeConfig names characters and palette colors for each cell role.
type ThemeConfig struct {
	Alive          string `mapstructure:"alive" yaml:"alive" json:"alive"`
	Dead           string `mapstructure:"dead" yaml:"dead" json:"dead"`
	AliveFg        string `mapstructure:"alive_fg" yaml:"alive_fg" json:"alive_fg"`
	AliveBg        string `mapstructure:"alive_bg" yaml:"alive_bg" json:"alive_bg"`
	DeadFg         string `mapstructure:"dead_fg" yaml:"dead_fg" json:"dead_fg"`
	DeadBg         string `mapstructure:"dead_bg" yaml:"dead_bg" json:"dead_bg"`
	BorderFg       string `mapstructure:"border_fg" yaml:"border_fg" json:"border_fg"`
	BorderScrollFg string `mapstructure:"border_scroll_fg" yaml:"border_scroll_fg" json:"border_scroll_fg"`
	OutsideFg      string `mapstructure:"outside_fg" yaml:"outside_fg" json:"outside_fg"`
	OutsideBg      string `mapstructure:"outside_bg" yaml:"outside_bg" json:"outside_bg"`
	Border         bool   `mapstructure:"border" yaml:"border" json:"border"`
}

// LogConfig configures the log file used while the terminal is owned by the
// game. Levels and formats come from pslog's environment variables.
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file" json:"file"`
}

// Loader wraps Viper configuration loading for gameoflife.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader initializes a Loader with standard defaults.
func NewLoader() *Loader {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/gameoflife")
	v.AddConfigPath("$HOME/" + DefaultConfigDirName)

	return &Loader{v: v}
}

// Viper exposes the underlying Viper instance for flag binding and defaults.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = strings.TrimSpace(path)
}

// ConfigFileUsed reports the file that was read, if any.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// ReadInConfig reads configuration from file if available.
func (l *Loader) ReadInConfig() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	return nil
}

// Load reads configuration and unmarshals it into a Config struct.
func (l *Loader) Load() (Config, error) {
	if err := l.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
