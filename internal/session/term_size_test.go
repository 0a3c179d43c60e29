package session

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/creack/pty"

	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
)

func TestTerminalSizeReadsPTY(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = master.Close()
		_ = slave.Close()
	})
	_ = pty.Setsize(master, &pty.Winsize{Cols: 90, Rows: 30})

	cols, rows := TerminalSize(nil, slave)
	if cols != 90 || rows != 30 {
		t.Fatalf("TerminalSize = %dx%d, want 90x30", cols, rows)
	}
}

func TestResizeFollowsTerminalAndKeepsCenter(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = master.Close()
		_ = slave.Close()
	})
	_ = pty.Setsize(master, &pty.Winsize{Cols: 42, Rows: 23})

	topo := life.NewRect(100, 100, true)
	theme := render.DefaultTheme()
	r := New(Options{
		Engine:   life.NewEngine(topo, life.Conway, life.NewGeneration(topo)),
		Geometry: render.GeometryCells,
		Theme:    theme,
		Stdin:    slave,
		Stdout:   slave,
	})
	r.renderer = render.NewRenderer(render.GeometryCells, theme)

	r.resize()
	if r.cols != 42 || r.rows != 23 {
		t.Fatalf("size = %dx%d, want 42x23", r.cols, r.rows)
	}
	if r.vp.Width() != 40 || r.vp.Height() != 20 || r.vp.OffsetX() != 30 || r.vp.OffsetY() != 40 {
		t.Fatalf("viewport = %dx%d@%d,%d, want 40x20@30,40", r.vp.Width(), r.vp.Height(), r.vp.OffsetX(), r.vp.OffsetY())
	}
	if !r.dirty || r.header != "" {
		t.Fatalf("resize should force a redraw")
	}

	r.dirty = false
	_ = pty.Setsize(master, &pty.Winsize{Cols: 62, Rows: 13})
	r.resize()
	if r.vp.Width() != 60 || r.vp.Height() != 10 || r.vp.OffsetX() != 20 || r.vp.OffsetY() != 45 {
		t.Fatalf("viewport = %dx%d@%d,%d, want 60x10@20,45", r.vp.Width(), r.vp.Height(), r.vp.OffsetX(), r.vp.OffsetY())
	}
	if !r.dirty {
		t.Fatalf("second resize should force a redraw")
	}
}

func TestToggleBorderRelaysOutBoard(t *testing.T) {
	master, slave, err := pty.Open()
	if err != nil {
		t.Fatalf("pty.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = master.Close()
		_ = slave.Close()
	})
	_ = pty.Setsize(master, &pty.Winsize{Cols: 42, Rows: 23})

	topo := life.NewRect(100, 100, true)
	theme := render.DefaultTheme()
	var screen bytes.Buffer
	r := New(Options{
		Engine:   life.NewEngine(topo, life.Conway, life.NewGeneration(topo)),
		Geometry: render.GeometryCells,
		Theme:    theme,
		Stdin:    slave,
		Stdout:   slave,
	})
	r.out = bufio.NewWriter(&screen)
	r.renderer = render.NewRenderer(render.GeometryCells, theme)
	r.resize()
	if err := r.draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	if !strings.Contains(screen.String(), "╔") {
		t.Fatalf("first frame should be boxed")
	}

	if quit := r.handleKey(KeyToggleBorder, nil); quit || !r.relayout {
		t.Fatalf("toggle border: quit=%v relayout=%v", quit, r.relayout)
	}
	if r.renderer.Theme().Border {
		t.Fatalf("renderer still draws a border")
	}
	screen.Reset()
	if err := r.rebuildScreen(); err != nil {
		t.Fatalf("rebuildScreen: %v", err)
	}
	if r.relayout {
		t.Fatalf("relayout not cleared")
	}
	if r.vp.Width() != 42 || r.vp.Height() != 22 {
		t.Fatalf("borderless viewport = %dx%d, want 42x22", r.vp.Width(), r.vp.Height())
	}
	if err := r.draw(); err != nil {
		t.Fatalf("draw: %v", err)
	}
	out := screen.String()
	if !strings.Contains(out, "\x1b[?1049l") || !strings.Contains(out, "\x1b[?1049h") {
		t.Fatalf("screen not rebuilt: %q", out)
	}
	if strings.ContainsAny(out, "╔║") {
		t.Fatalf("borderless frame still has box glyphs")
	}
}
