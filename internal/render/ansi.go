package render

import (
	"bufio"
	"io"
)

// The complete set of escape sequences this package writes.
var (
	seqCSI         = []byte("\x1b[")
	seqReset       = []byte("\x1b[0m")
	seqClearEOL    = []byte("\x1b[K")
	seqCursorHide  = []byte("\x1b[?25l")
	seqCursorShow  = []byte("\x1b[?25h")
	seqAltScreenOn = []byte("\x1b[?1049h")
	seqAltScreenOf = []byte("\x1b[?1049l")
)

// writeInt writes a non-negative integer without allocating.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

// writeCursorPos positions the cursor; row and col are 1-based.
func writeCursorPos(w *bufio.Writer, row, col int) {
	w.Write(seqCSI)
	writeInt(w, row)
	w.WriteByte(';')
	writeInt(w, col)
	w.WriteByte('H')
}

func writeSGR(w *bufio.Writer, code int) {
	w.Write(seqCSI)
	writeInt(w, code)
	w.WriteByte('m')
}

// MoveTo writes a cursor position sequence. row and col are 1-based.
func MoveTo(w io.Writer, row, col int) error {
	bw := bufio.NewWriterSize(w, 16)
	writeCursorPos(bw, row, col)
	return bw.Flush()
}

// SetColors writes foreground and background SGR sequences. ColorNone skips a
// layer.
func SetColors(w io.Writer, fg, bg Color) error {
	bw := bufio.NewWriterSize(w, 16)
	if fg != ColorNone {
		writeSGR(bw, fg.FgCode())
	}
	if bg != ColorNone {
		writeSGR(bw, bg.BgCode())
	}
	return bw.Flush()
}

// ResetColors writes SGR 0.
func ResetColors(w io.Writer) error {
	_, err := w.Write(seqReset)
	return err
}

// ClearToEOL erases from the cursor to the end of the line.
func ClearToEOL(w io.Writer) error {
	_, err := w.Write(seqClearEOL)
	return err
}

func EnterAltScreen(w io.Writer) error {
	_, err := w.Write(seqAltScreenOn)
	return err
}

func ExitAltScreen(w io.Writer) error {
	_, err := w.Write(seqAltScreenOf)
	return err
}

func HideCursor(w io.Writer) error {
	_, err := w.Write(seqCursorHide)
	return err
}

func ShowCursor(w io.Writer) error {
	_, err := w.Write(seqCursorShow)
	return err
}
