package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/yitzhaks/gameoflife/internal/config"
	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
	"pkt.systems/pslog"
)

const (
	// headerRows is the status line above the board.
	headerRows = 1

	minGenerationsPerSecond = 0.125
	maxGenerationsPerSecond = 1024
	// maxStepsPerFrame bounds catch-up after a stall; the clock is rebased
	// instead of stepping through the backlog.
	maxStepsPerFrame = 64

	fallbackCols = 80
	fallbackRows = 24
)

// Options configures an interactive session.
type Options struct {
	Engine               *life.Engine
	Geometry             render.Geometry
	Theme                render.Theme
	FPS                  int
	GenerationsPerSecond float64
	Paused               bool
	// MaxGenerations stops the clock once reached. Zero runs forever.
	MaxGenerations int
	// Cols and Rows are used when the terminal size cannot be queried.
	Cols       int
	Rows       int
	Stdin      *os.File
	Stdout     *os.File
	DisableRaw bool
	Logger     pslog.Logger
	// OnFrame observes every drawn frame.
	OnFrame func(generation int, stats render.DiffStats)
}

// Runner drives the engine and the renderer against a terminal until the
// user quits or the context ends.
type Runner struct {
	opts   Options
	logger pslog.Logger

	renderer *render.Renderer
	vp       *render.Viewport
	out      *bufio.Writer

	cols, rows int
	paused     bool
	gps        float64
	nextGen    time.Time
	header     string
	dirty      bool
	// relayout asks the loop to rebuild the screen after a key changed the
	// frame shape.
	relayout bool
}

// New constructs a Runner.
func New(opts Options) *Runner {
	return &Runner{opts: opts}
}

// Run takes over the terminal and blocks until exit.
func (r *Runner) Run(ctx context.Context) error {
	if r.opts.Engine == nil {
		return errors.New("session: engine is required")
	}
	if r.opts.Logger == nil {
		r.opts.Logger = pslog.LoggerFromEnv()
	}
	r.logger = r.opts.Logger.With("component", "session")
	if r.opts.FPS <= 0 {
		r.opts.FPS = config.DefaultFPS
	}
	r.gps = r.opts.GenerationsPerSecond
	if r.gps <= 0 {
		r.gps = config.DefaultGenerationsPerSecond
	}
	r.paused = r.opts.Paused
	if err := r.opts.Theme.Validate(); err != nil {
		return fmt.Errorf("theme: %w", err)
	}

	stdin := r.stdin()
	stdout := r.stdout()
	if !r.opts.DisableRaw {
		if err := r.makeRaw(stdin); err != nil {
			return err
		}
		defer r.restoreTerminal(stdin)
	}

	r.out = bufio.NewWriterSize(stdout, 64*1024)
	r.renderer = render.NewRenderer(r.opts.Geometry, r.opts.Theme)
	r.resize()
	if err := r.enterScreen(); err != nil {
		return err
	}
	defer r.leaveScreen()

	sigCtx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, syscall.SIGWINCH)
	defer signal.Stop(sigwinch)

	loopCtx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	keys := make(chan Key, 64)
	inputErr := make(chan error, 1)
	go func() {
		inputErr <- r.readKeys(loopCtx, stdin, keys)
	}()

	r.logger.Info("session started",
		"geometry", r.opts.Geometry.String(),
		"cols", r.cols,
		"rows", r.rows,
		"fps", r.opts.FPS,
		"gps", r.gps,
	)

	ticker := time.NewTicker(time.Second / time.Duration(r.opts.FPS))
	defer ticker.Stop()

	r.nextGen = time.Now()
	r.dirty = true
	if err := r.draw(); err != nil {
		return err
	}
	for {
		select {
		case <-loopCtx.Done():
			r.logger.Info("session stopped", "reason", "signal", "generation", r.opts.Engine.Count())
			return nil
		case err := <-inputErr:
			if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
				r.logger.Warn("input stopped", "err", err)
				return err
			}
			r.logger.Info("session stopped", "reason", "input closed", "generation", r.opts.Engine.Count())
			return nil
		case <-sigwinch:
			if err := r.rebuildScreen(); err != nil {
				return err
			}
			r.logger.Debug("terminal resized", "cols", r.cols, "rows", r.rows)
		case k := <-keys:
			if quit := r.handleKey(k, keys); quit {
				r.logger.Info("session stopped", "reason", "quit", "generation", r.opts.Engine.Count())
				return nil
			}
			if r.relayout {
				if err := r.rebuildScreen(); err != nil {
					return err
				}
				r.logger.Debug("border toggled", "border", r.opts.Theme.Border)
			}
		case now := <-ticker.C:
			r.advance(now)
			if err := r.draw(); err != nil {
				return err
			}
		}
	}
}

func (r *Runner) readKeys(ctx context.Context, stdin *os.File, keys chan<- Key) error {
	buf := make([]byte, 256)
	parsed := make([]Key, 0, 64)
	for {
		n, err := readInput(ctx, stdin, buf)
		if err != nil {
			if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return err
		}
		parsed = ParseKeys(buf[:n], parsed[:0])
		for _, k := range parsed {
			select {
			case keys <- k:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// handleKey applies one key and reports whether the session should end.
func (r *Runner) handleKey(k Key, keys <-chan Key) bool {
	switch k {
	case KeyQuit:
		return true
	case KeyTogglePause:
		r.paused = !r.paused
		r.nextGen = time.Now()
	case KeyStep:
		if r.canStep() {
			r.opts.Engine.Step()
		}
		r.paused = true
	case KeyFaster:
		r.setSpeed(r.gps * 2)
	case KeySlower:
		r.setSpeed(r.gps / 2)
	case KeyToggleBorder:
		r.opts.Theme.Border = !r.opts.Theme.Border
		r.renderer.SetTheme(r.opts.Theme)
		r.relayout = true
	default:
		if !k.Navigation() {
			return false
		}
		r.navigate(k)
		if drainNavigation(keys, r.navigate) {
			r.logger.Debug("key dropped after navigation")
		}
	}
	r.dirty = true
	return false
}

func (r *Runner) navigate(k Key) {
	if r.vp == nil {
		return
	}
	pageX := max(r.vp.Width()-1, 1)
	pageY := max(r.vp.Height()-1, 1)
	switch k {
	case KeyLeft:
		r.vp.Pan(-1, 0)
	case KeyRight:
		r.vp.Pan(1, 0)
	case KeyUp:
		r.vp.Pan(0, -1)
	case KeyDown:
		r.vp.Pan(0, 1)
	case KeyPageLeft:
		r.vp.Pan(-pageX, 0)
	case KeyPageRight:
		r.vp.Pan(pageX, 0)
	case KeyPageUp:
		r.vp.Pan(0, -pageY)
	case KeyPageDown:
		r.vp.Pan(0, pageY)
	case KeyCenter:
		r.vp.Center(r.vp.BoardWidth()/2, r.vp.BoardHeight()/2)
	}
}

func (r *Runner) setSpeed(gps float64) {
	r.gps = min(max(gps, minGenerationsPerSecond), maxGenerationsPerSecond)
	r.nextGen = time.Now()
}

func (r *Runner) canStep() bool {
	return r.opts.MaxGenerations <= 0 || r.opts.Engine.Count() < r.opts.MaxGenerations
}

// advance runs the generation clock up to now.
func (r *Runner) advance(now time.Time) {
	if r.paused {
		return
	}
	interval := time.Duration(float64(time.Second) / r.gps)
	steps := 0
	for !now.Before(r.nextGen) && r.canStep() {
		if steps == maxStepsPerFrame {
			r.nextGen = now.Add(interval)
			break
		}
		r.opts.Engine.Step()
		r.nextGen = r.nextGen.Add(interval)
		steps++
	}
	if steps > 0 {
		r.dirty = true
	}
	if !r.canStep() {
		r.paused = true
		r.dirty = true
	}
}

// resize recomputes the viewport for the current terminal size, keeping the
// same board point in the middle.
func (r *Runner) resize() {
	cols, rows := termSizeAny(r.stdout(), r.stdin())
	if cols <= 0 || rows <= 0 {
		cols, rows = r.opts.Cols, r.opts.Rows
	}
	if cols <= 0 || rows <= 0 {
		cols, rows = fallbackCols, fallbackRows
	}
	r.cols, r.rows = cols, rows
	r.vp = layoutViewport(r.vp, r.opts.Engine.Topology(), r.opts.Geometry, r.opts.Theme.Border, cols, rows)
	r.renderer.Invalidate()
	r.header = ""
	r.dirty = true
}

// layoutViewport sizes a viewport to the terminal area below the header. Hex
// boards are always drawn whole and get no viewport.
func layoutViewport(prev *render.Viewport, topo life.Topology, geometry render.Geometry, border bool, cols, rows int) *render.Viewport {
	if geometry == render.GeometryHex {
		return nil
	}
	bw, bh := topo.Bounds()
	w, h := BoardArea(geometry, border, cols, rows)
	cx, cy := bw/2, bh/2
	if prev != nil {
		cx = prev.OffsetX() + prev.Width()/2
		cy = prev.OffsetY() + prev.Height()/2
	}
	vp := render.NewViewport(w, h, bw, bh)
	vp.Center(cx, cy)
	return vp
}

// BoardArea is the board size, in cells, that fills a cols x rows terminal
// below the header.
func BoardArea(geometry render.Geometry, border bool, cols, rows int) (int, int) {
	frame := 0
	if border {
		frame = 2
	}
	return max(cols-frame, 1), max(rows-headerRows-frame, 1) * geometry.CellsPerChar()
}

// TerminalSize reports the size of the first terminal among files, trying
// /dev/tty last. It returns zeros when none is a terminal.
func TerminalSize(files ...*os.File) (int, int) {
	return termSizeAny(files...)
}

func (r *Runner) draw() error {
	if !r.dirty {
		return nil
	}
	eng := r.opts.Engine
	header := headerText(status{
		generation: eng.Count(),
		population: eng.Population(),
		paused:     r.paused,
		finished:   !r.canStep(),
		gps:        r.gps,
		vp:         r.vp,
	}, r.cols)
	if header != r.header {
		if err := writeHeader(r.out, header, r.opts.Theme.BorderFg); err != nil {
			return err
		}
		r.header = header
	}
	if err := r.renderer.Frame(r.out, eng.Topology(), eng.Generation(), r.vp, headerRows+1); err != nil {
		return fmt.Errorf("render generation %d: %w", eng.Count(), err)
	}
	if err := r.out.Flush(); err != nil {
		return err
	}
	r.dirty = false
	if r.opts.OnFrame != nil {
		r.opts.OnFrame(eng.Count(), r.renderer.Stats())
	}
	return nil
}

// rebuildScreen clears the alternate screen and lays the board out again.
func (r *Runner) rebuildScreen() error {
	r.relayout = false
	if err := r.leaveScreen(); err != nil {
		return err
	}
	r.resize()
	return r.enterScreen()
}

func (r *Runner) enterScreen() error {
	for _, step := range []func(io.Writer) error{render.EnterAltScreen, render.HideCursor} {
		if err := step(r.out); err != nil {
			return err
		}
	}
	r.renderer.Invalidate()
	r.header = ""
	return r.out.Flush()
}

func (r *Runner) leaveScreen() error {
	for _, step := range []func(io.Writer) error{render.ResetColors, render.ShowCursor, render.ExitAltScreen} {
		if err := step(r.out); err != nil {
			return err
		}
	}
	return r.out.Flush()
}

func (r *Runner) makeRaw(file *os.File) error {
	if file == nil {
		return fmt.Errorf("stdin is nil")
	}
	state, err := term.MakeRaw(int(file.Fd()))
	if err != nil {
		return fmt.Errorf("stdin is not a terminal")
	}
	storeTerminalState(state)
	return nil
}

func (r *Runner) restoreTerminal(file *os.File) {
	state := loadTerminalState()
	if state != nil {
		_ = term.Restore(int(file.Fd()), state)
	}
}

func (r *Runner) stdin() *os.File {
	if r.opts.Stdin != nil {
		return r.opts.Stdin
	}
	return os.Stdin
}

func (r *Runner) stdout() *os.File {
	if r.opts.Stdout != nil {
		return r.opts.Stdout
	}
	return os.Stdout
}

func termSize(file *os.File) (int, int) {
	if file == nil {
		return 0, 0
	}
	cols, rows, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, 0
	}
	return cols, rows
}

func termSizeAny(files ...*os.File) (int, int) {
	for _, file := range files {
		if file == nil {
			continue
		}
		cols, rows := termSize(file)
		if cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	if tty, err := os.Open("/dev/tty"); err == nil {
		defer func() {
			_ = tty.Close()
		}()
		if cols, rows := termSize(tty); cols > 0 && rows > 0 {
			return cols, rows
		}
	}
	return 0, 0
}

var terminalStateMu sync.Mutex
var terminalState *term.State

func storeTerminalState(state *term.State) {
	terminalStateMu.Lock()
	terminalState = state
	terminalStateMu.Unlock()
}

func loadTerminalState() *term.State {
	terminalStateMu.Lock()
	defer terminalStateMu.Unlock()
	return terminalState
}
