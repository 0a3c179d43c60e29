package gameoflife

import (
	"context"
	"fmt"

	"github.com/yitzhaks/gameoflife/internal/board"
	"github.com/yitzhaks/gameoflife/internal/headless"
	"pkt.systems/pslog"
)

// ErrMismatch is returned by Verify when a differential frame disagrees with
// a full paint.
var ErrMismatch = headless.ErrMismatch

// VerifyReport summarizes a verification run.
type VerifyReport = headless.Report

// VerifyOptions configures Verify.
type VerifyOptions struct {
	Config      Config
	Generations int
	ViewWidth   int
	ViewHeight  int
	Pan         bool
	Logger      pslog.Logger
}

// Verify replays the configured board through the differential renderer and
// checks every frame against a full paint.
func Verify(ctx context.Context, opts VerifyOptions) (VerifyReport, error) {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return VerifyReport{}, fmt.Errorf("invalid config: %w", err)
	}
	geometry, _ := cfg.Geometry()
	theme, _ := cfg.Theme.RenderTheme()
	b, err := board.Build(cfg.Board, 0, 0)
	if err != nil {
		return VerifyReport{}, err
	}
	return headless.Verify(headless.VerifyOptions{
		Engine:      b.Engine,
		Geometry:    geometry,
		Theme:       theme,
		Generations: opts.Generations,
		ViewWidth:   opts.ViewWidth,
		ViewHeight:  opts.ViewHeight,
		Pan:         opts.Pan,
		Logger:      logger,
	})
}
