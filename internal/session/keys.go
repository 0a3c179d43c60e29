package session

import "time"

const inputPollInterval = 50 * time.Millisecond

// Key is a decoded keyboard command.
type Key uint8

const (
	KeyNone Key = iota
	KeyQuit
	KeyTogglePause
	KeyStep
	KeyFaster
	KeySlower
	KeyToggleBorder
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageLeft
	KeyPageRight
	KeyPageUp
	KeyPageDown
	KeyCenter
)

func (k Key) String() string {
	switch k {
	case KeyQuit:
		return "quit"
	case KeyTogglePause:
		return "pause"
	case KeyStep:
		return "step"
	case KeyFaster:
		return "faster"
	case KeySlower:
		return "slower"
	case KeyToggleBorder:
		return "border"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyPageLeft:
		return "page-left"
	case KeyPageRight:
		return "page-right"
	case KeyPageUp:
		return "page-up"
	case KeyPageDown:
		return "page-down"
	case KeyCenter:
		return "center"
	default:
		return "none"
	}
}

// Navigation reports whether k moves the viewport.
func (k Key) Navigation() bool {
	return k >= KeyLeft && k <= KeyCenter
}

// ParseKeys decodes one read from a raw-mode terminal. Unknown bytes and
// unknown escape sequences are dropped. A lone ESC at the end of buf is a
// quit; terminals send arrow keys as a whole sequence in one read.
func ParseKeys(buf []byte, out []Key) []Key {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == 0x1b {
			if i+1 >= len(buf) || (buf[i+1] != '[' && buf[i+1] != 'O') {
				out = append(out, KeyQuit)
				continue
			}
			// CSI or SS3: skip parameters up to the final byte.
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j < len(buf) {
				if k := arrowKey(buf[j]); k != KeyNone {
					out = append(out, k)
				}
			}
			i = j
			continue
		}
		if k := byteKey(b); k != KeyNone {
			out = append(out, k)
		}
	}
	return out
}

func arrowKey(final byte) Key {
	switch final {
	case 'A':
		return KeyUp
	case 'B':
		return KeyDown
	case 'C':
		return KeyRight
	case 'D':
		return KeyLeft
	default:
		return KeyNone
	}
}

func byteKey(b byte) Key {
	switch b {
	case 'q', 'Q', 0x03:
		return KeyQuit
	case ' ', 'p':
		return KeyTogglePause
	case 'n', '.':
		return KeyStep
	case '+', '=':
		return KeyFaster
	case '-', '_':
		return KeySlower
	case 'b':
		return KeyToggleBorder
	case 'h':
		return KeyLeft
	case 'l':
		return KeyRight
	case 'k':
		return KeyUp
	case 'j':
		return KeyDown
	case 'H':
		return KeyPageLeft
	case 'L':
		return KeyPageRight
	case 'K':
		return KeyPageUp
	case 'J':
		return KeyPageDown
	case 'c':
		return KeyCenter
	default:
		return KeyNone
	}
}

// drainNavigation swallows every key already queued behind a navigation key so
// that held arrow keys do not lag behind the screen. Queued navigation keys
// are applied; the first other key ends the drain and is discarded. It
// reports whether a key was discarded.
func drainNavigation(keys <-chan Key, apply func(Key)) bool {
	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return false
			}
			if !k.Navigation() {
				return true
			}
			apply(k)
		default:
			return false
		}
	}
}
