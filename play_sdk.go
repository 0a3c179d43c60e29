package gameoflife

import (
	"context"
	"fmt"
	"os"

	"github.com/yitzhaks/gameoflife/internal/board"
	"github.com/yitzhaks/gameoflife/internal/session"
	"pkt.systems/pslog"
)

// PlayOptions configures an interactive game.
type PlayOptions struct {
	Config Config
	// Cols and Rows override the terminal size.
	Cols       int
	Rows       int
	Stdin      *os.File
	Stdout     *os.File
	DisableRaw bool
	Logger     pslog.Logger
}

// Play runs the game in the terminal until the user quits.
func Play(ctx context.Context, opts PlayOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = pslog.Ctx(ctx)
	}
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	geometry, _ := cfg.Geometry()
	theme, _ := cfg.Theme.RenderTheme()

	cols, rows := opts.Cols, opts.Rows
	if cols <= 0 || rows <= 0 {
		cols, rows = session.TerminalSize(opts.Stdout, opts.Stdin, os.Stdout, os.Stdin)
	}
	areaW, areaH := 0, 0
	if cols > 0 && rows > 0 {
		areaW, areaH = session.BoardArea(geometry, theme.Border, cols, rows)
	}
	b, err := board.Build(cfg.Board, areaW, areaH)
	if err != nil {
		return err
	}
	if b.Skipped > 0 {
		logger.Warn("pattern does not fit the board", "skipped", b.Skipped, "placed", b.Placed)
	}
	w, h := b.Engine.Topology().Bounds()
	logger.Info("board ready",
		"topology", cfg.Board.TopologyName(),
		"width", w,
		"height", h,
		"rule", b.Engine.Rules().String(),
		"population", b.Engine.Population(),
	)

	return session.New(session.Options{
		Engine:               b.Engine,
		Geometry:             geometry,
		Theme:                theme,
		FPS:                  cfg.Render.FPS,
		GenerationsPerSecond: cfg.Render.GenerationsPerSecond,
		Paused:               cfg.Render.Paused,
		MaxGenerations:       cfg.Render.MaxGenerations,
		Cols:                 opts.Cols,
		Rows:                 opts.Rows,
		Stdin:                opts.Stdin,
		Stdout:               opts.Stdout,
		DisableRaw:           opts.DisableRaw,
		Logger:               logger,
	}).Run(ctx)
}
