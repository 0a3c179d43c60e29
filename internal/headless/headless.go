// Package headless runs the renderer without a terminal: snapshots for
// scripts and tests, and a verifier that replays differential frames into an
// emulator and checks them against full paints.
package headless

import (
	"errors"
	"fmt"
	"io"

	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
	"github.com/yitzhaks/gameoflife/internal/terminal"
	"github.com/yitzhaks/gameoflife/internal/terminal/emu"
	"pkt.systems/pslog"
)

// ErrMismatch is returned by Verify when a differential frame leaves the
// screen different from a full paint of the same generation.
var ErrMismatch = errors.New("differential frame does not match full paint")

// Format selects snapshot output.
type Format int

const (
	// FormatANSI is the full-paint escape stream, one line per row.
	FormatANSI Format = iota
	// FormatText is the screen text after the frame is replayed through an
	// emulator.
	FormatText
)

// ParseFormat resolves a command-line format name.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "", "ansi":
		return FormatANSI, nil
	case "text", "plain":
		return FormatText, nil
	default:
		return FormatANSI, fmt.Errorf("unknown format %q", name)
	}
}

// SnapshotOptions configures Snapshot.
type SnapshotOptions struct {
	Engine      *life.Engine
	Geometry    render.Geometry
	Theme       render.Theme
	Generations int
	Format      Format
	Logger      pslog.Logger
}

// Snapshot advances the engine and writes the final generation to w.
func Snapshot(w io.Writer, opts SnapshotOptions) error {
	if opts.Engine == nil {
		return errors.New("headless: engine is required")
	}
	logger := loggerOrDefault(opts.Logger).With("component", "snapshot")
	if err := opts.Theme.Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}
	eng := opts.Engine
	for range max(opts.Generations, 0) {
		eng.Step()
	}
	logger.Debug("snapshot",
		"generation", eng.Count(),
		"population", eng.Population(),
		"format", opts.Format,
	)

	if opts.Format == FormatANSI {
		return render.Render(w, opts.Geometry, eng.Topology(), eng.Generation(), opts.Theme)
	}
	snap, _, err := paint(render.NewRenderer(opts.Geometry, opts.Theme), nil, eng, nil)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, snap.Text()+"\n"); err != nil {
		return err
	}
	return nil
}

// paint draws one frame into e, creating an emulator sized to the frame when
// e is nil, and returns the resulting screen.
func paint(r *render.Renderer, e *emu.Emulator, eng *life.Engine, vp *render.Viewport) (terminal.Snapshot, *emu.Emulator, error) {
	if e == nil {
		cols, rows := r.Size(eng.Topology(), vp)
		e = emu.New(max(cols, 1), max(rows, 1))
	}
	if err := r.Frame(emuWriter{e}, eng.Topology(), eng.Generation(), vp, 1); err != nil {
		return terminal.Snapshot{}, e, err
	}
	snap, err := e.Snapshot()
	return snap, e, err
}

// emuWriter adapts an emulator to io.Writer.
type emuWriter struct {
	e terminal.Emulator
}

func (w emuWriter) Write(p []byte) (int, error) {
	if err := w.e.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// countingWriter counts bytes on their way to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func loggerOrDefault(l pslog.Logger) pslog.Logger {
	if l == nil {
		return pslog.LoggerFromEnv()
	}
	return l
}
