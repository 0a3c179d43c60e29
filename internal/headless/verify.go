package headless

import (
	"errors"
	"fmt"

	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
	"github.com/yitzhaks/gameoflife/internal/terminal"
	"github.com/yitzhaks/gameoflife/internal/terminal/emu"
	"pkt.systems/pslog"
)

// VerifyOptions configures Verify.
type VerifyOptions struct {
	Engine      *life.Engine
	Geometry    render.Geometry
	Theme       render.Theme
	Generations int
	// ViewWidth and ViewHeight clip the board to a viewport, in cells. Zero
	// shows the whole board.
	ViewWidth  int
	ViewHeight int
	// Pan moves the viewport one cell diagonally per generation, bouncing
	// off the board edges.
	Pan    bool
	Logger pslog.Logger
}

// Report summarizes a verification run.
type Report struct {
	Generations int
	Frames      int
	// DiffBytes and FullBytes are the bytes written by the differential
	// frames and by the full paints they were checked against.
	DiffBytes int64
	FullBytes int64
	Stats     render.DiffStats
}

// Verify renders Generations+1 frames through one long-lived renderer into
// one emulator and compares each against a fresh full paint in another. The
// first mismatch is returned wrapped in ErrMismatch.
func Verify(opts VerifyOptions) (Report, error) {
	var rep Report
	if opts.Engine == nil {
		return rep, errors.New("headless: engine is required")
	}
	if err := opts.Theme.Validate(); err != nil {
		return rep, fmt.Errorf("theme: %w", err)
	}
	logger := loggerOrDefault(opts.Logger).With("component", "verify")
	eng := opts.Engine

	vp := viewport(eng.Topology(), opts)
	live := render.NewRenderer(opts.Geometry, opts.Theme)
	cols, rows := live.Size(eng.Topology(), vp)
	screen := emu.New(max(cols, 1), max(rows, 1))
	diffOut := &countingWriter{w: emuWriter{screen}}

	dx, dy := 1, 1
	for gen := 0; gen <= opts.Generations; gen++ {
		if gen > 0 {
			eng.Step()
			if opts.Pan && vp != nil {
				dx, dy = bounce(vp, dx, dy)
			}
		}
		if err := live.Frame(diffOut, eng.Topology(), eng.Generation(), vp, 1); err != nil {
			return rep, fmt.Errorf("generation %d: %w", eng.Count(), err)
		}
		stats := live.Stats()
		rep.Stats.Chars += stats.Chars
		rep.Stats.Moves += stats.Moves
		rep.Stats.Colors += stats.Colors

		got, err := screen.Snapshot()
		if err != nil {
			return rep, err
		}

		reference := render.NewRenderer(opts.Geometry, opts.Theme)
		refScreen := emu.New(max(cols, 1), max(rows, 1))
		fullOut := &countingWriter{w: emuWriter{refScreen}}
		if err := reference.Frame(fullOut, eng.Topology(), eng.Generation(), vp, 1); err != nil {
			return rep, fmt.Errorf("generation %d: %w", eng.Count(), err)
		}
		rep.FullBytes += fullOut.n
		want, err := refScreen.Snapshot()
		if err != nil {
			return rep, err
		}

		rep.Frames++
		rep.Generations = eng.Count()
		if diff := terminal.Diff(got, want); diff != "" {
			logger.Warn("frame mismatch", "generation", eng.Count(), "diff", diff)
			rep.DiffBytes = diffOut.n
			return rep, fmt.Errorf("%w at generation %d: %s", ErrMismatch, eng.Count(), diff)
		}
		logger.Debug("frame verified",
			"generation", eng.Count(),
			"chars", stats.Chars,
			"moves", stats.Moves,
			"colors", stats.Colors,
		)
	}
	rep.DiffBytes = diffOut.n
	logger.Info("verified",
		"frames", rep.Frames,
		"diff_bytes", rep.DiffBytes,
		"full_bytes", rep.FullBytes,
	)
	return rep, nil
}

func viewport(topo life.Topology, opts VerifyOptions) *render.Viewport {
	if opts.Geometry == render.GeometryHex {
		return nil
	}
	if opts.ViewWidth <= 0 && opts.ViewHeight <= 0 {
		return nil
	}
	bw, bh := topo.Bounds()
	w, h := opts.ViewWidth, opts.ViewHeight
	if w <= 0 {
		w = bw
	}
	if h <= 0 {
		h = bh
	}
	return render.NewViewport(w, h, bw, bh)
}

// bounce pans vp by (dx, dy), reversing a direction that hits an edge.
func bounce(vp *render.Viewport, dx, dy int) (int, int) {
	if (dx > 0 && vp.IsAtRight()) || (dx < 0 && vp.IsAtLeft()) {
		dx = -dx
	}
	if (dy > 0 && vp.IsAtBottom()) || (dy < 0 && vp.IsAtTop()) {
		dy = -dy
	}
	vp.Pan(dx, dy)
	return dx, dy
}
