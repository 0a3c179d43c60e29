package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/yitzhaks/gameoflife"
	"pkt.systems/pslog"
)

// openFileLogger logs to a file because the game owns the terminal.
func openFileLogger(path string) (pslog.Logger, io.Closer, error) {
	if path == "" {
		path = gameoflife.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, err
	}
	logger := pslog.LoggerFromEnv(pslog.WithEnvWriter(file))
	return logger, file, nil
}
