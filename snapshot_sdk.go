package gameoflife

import (
	"context"
	"fmt"
	"io"

	"github.com/yitzhaks/gameoflife/internal/board"
	"github.com/yitzhaks/gameoflife/internal/headless"
	"github.com/yitzhaks/gameoflife/internal/pattern"
	"pkt.systems/pslog"
)

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	Config      Config
	Generations int
	// Format is "ansi" or "text".
	Format string
	Logger pslog.Logger
}

// Snapshot builds the configured board, advances it and writes the final
// frame to w.
func Snapshot(ctx context.Context, w io.Writer, opts SnapshotOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	format, err := headless.ParseFormat(opts.Format)
	if err != nil {
		return err
	}
	geometry, _ := cfg.Geometry()
	theme, _ := cfg.Theme.RenderTheme()
	b, err := board.Build(cfg.Board, 0, 0)
	if err != nil {
		return err
	}
	return headless.Snapshot(w, headless.SnapshotOptions{
		Engine:      b.Engine,
		Geometry:    geometry,
		Theme:       theme,
		Generations: opts.Generations,
		Format:      format,
		Logger:      logger,
	})
}

// Patterns lists the built-in pattern names.
func Patterns() []string {
	return pattern.Names()
}

// UserPatterns lists the pattern files under DefaultPatternDir.
func UserPatterns() []string {
	return pattern.UserNames(DefaultPatternDir())
}
