package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yitzhaks/gameoflife/internal/render"
)

const keyHints = "space:run/pause n:step +/-:speed hjkl:pan HJKL:page c:center b:border q:quit"

type status struct {
	generation int
	population int
	paused     bool
	finished   bool
	gps        float64
	vp         *render.Viewport
}

// headerText formats the status line, truncated to cols columns.
func headerText(s status, cols int) string {
	var b strings.Builder
	b.WriteString("gen ")
	b.WriteString(strconv.Itoa(s.generation))
	b.WriteString("  pop ")
	b.WriteString(strconv.Itoa(s.population))
	switch {
	case s.finished:
		b.WriteString("  done")
	case s.paused:
		b.WriteString("  paused")
	default:
		b.WriteString("  running")
	}
	b.WriteString("  ")
	b.WriteString(strconv.FormatFloat(s.gps, 'g', 4, 64))
	b.WriteString(" gen/s")
	if s.vp != nil && (s.vp.Width() < s.vp.BoardWidth() || s.vp.Height() < s.vp.BoardHeight()) {
		fmt.Fprintf(&b, "  @%d,%d", s.vp.OffsetX(), s.vp.OffsetY())
	}
	b.WriteString("  ")
	b.WriteString(keyHints)
	return runewidth.Truncate(b.String(), max(cols, 0), "")
}

// writeHeader repaints row 1 in fg on the default background and clears its
// tail.
func writeHeader(w io.Writer, text string, fg render.Color) error {
	if err := render.MoveTo(w, 1, 1); err != nil {
		return err
	}
	if err := render.ResetColors(w); err != nil {
		return err
	}
	if err := render.SetColors(w, fg, render.ColorNone); err != nil {
		return err
	}
	if _, err := io.WriteString(w, text); err != nil {
		return err
	}
	if err := render.ResetColors(w); err != nil {
		return err
	}
	return render.ClearToEOL(w)
}
