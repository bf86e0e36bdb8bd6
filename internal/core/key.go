package core

// KeyKind tags the class of a decoded key event.
type KeyKind uint8

const (
	KeyNone    KeyKind = iota // Nothing decoded yet
	KeyUnicode                // Printable character in Rune
	KeyRaw                    // Non-printable key in Code
)

// KeyCode identifies a non-printable key.
type KeyCode uint8

const (
	CodeUnknown KeyCode = iota
	CodeArrowUp
	CodeArrowDown
	CodeArrowLeft
	CodeArrowRight
	CodeEscape
	CodeEnter
)

// Key is a decoded keyboard event, the value held by the latest-key cell.
type Key struct {
	Kind KeyKind
	Rune rune
	Code KeyCode
}

// Unicode returns a printable key event.
func Unicode(r rune) Key {
	return Key{Kind: KeyUnicode, Rune: r}
}

// Raw returns a non-printable key event.
func Raw(c KeyCode) Key {
	return Key{Kind: KeyRaw, Code: c}
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k.Kind {
	case KeyUnicode:
		return string(k.Rune)
	case KeyRaw:
		switch k.Code {
		case CodeArrowUp:
			return "up"
		case CodeArrowDown:
			return "down"
		case CodeArrowLeft:
			return "left"
		case CodeArrowRight:
			return "right"
		case CodeEscape:
			return "esc"
		case CodeEnter:
			return "enter"
		}
		return "raw"
	default:
		return "none"
	}
}
