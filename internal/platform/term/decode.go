package term

import (
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	ctrlC = 0x03
	esc   = 0x1b
	cr    = '\r'
)

// Event is one decoded input event.
type Event struct {
	Key  core.Key
	Quit bool
}

// Decode splits one read from a raw terminal into events. Escape sequences
// are expected to arrive whole within a read.
func Decode(buf []byte, emit func(Event)) {
	for len(buf) > 0 {
		b := buf[0]
		switch {
		case b == ctrlC || b == 'q':
			emit(Event{Quit: true})
			buf = buf[1:]

		case b == esc:
			if len(buf) >= 3 && (buf[1] == '[' || buf[1] == 'O') {
				if code, ok := arrow(buf[2]); ok {
					emit(Event{Key: core.Raw(code)})
				}
				buf = buf[3:]
				continue
			}
			emit(Event{Key: core.Raw(core.CodeEscape)})
			buf = buf[1:]

		case b == cr || b == '\n':
			emit(Event{Key: core.Raw(core.CodeEnter)})
			buf = buf[1:]

		case b < 0x20 || b == 0x7f:
			// Other control bytes
			buf = buf[1:]

		default:
			r, size := utf8.DecodeRune(buf)
			if r != utf8.RuneError {
				emit(Event{Key: core.Unicode(r)})
			}
			buf = buf[size:]
		}
	}
}

func arrow(b byte) (core.KeyCode, bool) {
	switch b {
	case 'A':
		return core.CodeArrowUp, true
	case 'B':
		return core.CodeArrowDown, true
	case 'C':
		return core.CodeArrowRight, true
	case 'D':
		return core.CodeArrowLeft, true
	}
	return core.CodeUnknown, false
}
