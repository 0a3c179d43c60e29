package config

import (
	"os"
	"path/filepath"
)

// DefaultConfigDir returns the default gameoflife config directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultConfigDirName
	}
	return filepath.Join(home, DefaultConfigDirName)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultConfigFileName)
}

// DefaultPatternDir returns the directory searched for pattern names that are
// neither built in nor paths.
func DefaultPatternDir() string {
	return filepath.Join(DefaultConfigDir(), DefaultPatternDirName)
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultConfigDir(), DefaultLogFileName)
}
