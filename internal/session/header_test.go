package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yitzhaks/gameoflife/internal/life"
	"github.com/yitzhaks/gameoflife/internal/render"
)

func TestHeaderText(t *testing.T) {
	text := headerText(status{generation: 12, population: 5, paused: true, gps: 10}, 200)
	for _, want := range []string{"gen 12", "pop 5", "paused", "10 gen/s", "q:quit"} {
		if !strings.Contains(text, want) {
			t.Fatalf("header %q missing %q", text, want)
		}
	}
	if strings.Contains(text, "@") {
		t.Fatalf("whole-board viewport should not show an offset: %q", text)
	}
}

func TestHeaderTextShowsOffsetAndTruncates(t *testing.T) {
	vp := render.NewViewport(10, 5, 40, 20)
	vp.MoveTo(7, 3)
	text := headerText(status{generation: 1, gps: 2.5, vp: vp}, 200)
	if !strings.Contains(text, "@7,3") || !strings.Contains(text, "running") {
		t.Fatalf("header = %q", text)
	}
	short := headerText(status{generation: 1, gps: 2.5, vp: vp}, 8)
	if short != "gen 1  p" {
		t.Fatalf("truncated header = %q", short)
	}
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := writeHeader(&buf, "gen 1", render.ColorGray); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	if got, want := buf.String(), "\x1b[1;1H\x1b[0m\x1b[37mgen 1\x1b[0m\x1b[K"; got != want {
		t.Fatalf("writeHeader = %q, want %q", got, want)
	}

	buf.Reset()
	if err := writeHeader(&buf, "x", render.ColorNone); err != nil {
		t.Fatalf("writeHeader: %v", err)
	}
	if got, want := buf.String(), "\x1b[1;1H\x1b[0mx\x1b[0m\x1b[K"; got != want {
		t.Fatalf("writeHeader(no color) = %q, want %q", got, want)
	}
}

func TestLayoutViewport(t *testing.T) {
	topo := life.NewRect(100, 100, true)
	vp := layoutViewport(nil, topo, render.GeometryCells, true, 42, 23)
	if vp.Width() != 40 || vp.Height() != 20 {
		t.Fatalf("cells viewport = %dx%d, want 40x20", vp.Width(), vp.Height())
	}
	if vp.OffsetX() != 30 || vp.OffsetY() != 40 {
		t.Fatalf("viewport not centered: %d,%d", vp.OffsetX(), vp.OffsetY())
	}

	half := layoutViewport(vp, topo, render.GeometryHalfBlock, true, 42, 23)
	if half.Height() != 40 {
		t.Fatalf("half-block viewport height = %d, want 40", half.Height())
	}
	if half.OffsetY()+half.Height()/2 != vp.OffsetY()+vp.Height()/2 {
		t.Fatalf("resize moved the view center")
	}

	if layoutViewport(nil, life.NewHex(4), render.GeometryHex, false, 80, 24) != nil {
		t.Fatalf("hex geometry must not get a viewport")
	}
}

func TestBoardArea(t *testing.T) {
	if w, h := BoardArea(render.GeometryCells, true, 80, 24); w != 78 || h != 21 {
		t.Fatalf("cells area = %dx%d, want 78x21", w, h)
	}
	if w, h := BoardArea(render.GeometryHalfBlock, false, 80, 24); w != 80 || h != 46 {
		t.Fatalf("half-block area = %dx%d, want 80x46", w, h)
	}
	if w, h := BoardArea(render.GeometryCells, true, 1, 1); w != 1 || h != 1 {
		t.Fatalf("tiny area = %dx%d, want 1x1", w, h)
	}
}
