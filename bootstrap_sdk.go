package gameoflife

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"pkt.systems/pslog"
)

// Bootstrap writes cfg to the default config path. It refuses to overwrite an
// existing file.
func Bootstrap(ctx context.Context, cfg Config, logger pslog.Logger) (string, error) {
	return BootstrapTo(ctx, DefaultConfigPath(), cfg, logger)
}

// BootstrapTo writes cfg as YAML to path.
func BootstrapTo(_ context.Context, path string, cfg Config, logger pslog.Logger) (string, error) {
	if logger == nil {
		logger = pslog.LoggerFromEnv()
	}
	if err := cfg.Validate(); err != nil {
		return "", fmt.Errorf("invalid config: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config already exists at %s", path)
	} else if !os.IsNotExist(err) {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	logger.Info("bootstrapped config", "path", path)
	return path, nil
}
