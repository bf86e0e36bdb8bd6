package core

// Attr is a text-mode display attribute byte: the low nibble selects the
// foreground color, the high nibble the background.
type Attr uint8

// Color is one of the sixteen text-mode palette entries.
type Color uint8

// Palette entries in text-mode order.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// AttrDefault is light gray on black.
const AttrDefault = Attr(LightGray)

// MakeAttr builds an attribute byte from a foreground and background color.
func MakeAttr(fg, bg Color) Attr {
	return Attr((uint8(bg)&0x0f)<<4 | uint8(fg)&0x0f)
}

// Foreground returns the foreground color.
func (a Attr) Foreground() Color {
	return Color(a & 0x0f)
}

// Background returns the background color.
func (a Attr) Background() Color {
	return Color(a >> 4)
}

// ansiIndex maps text-mode palette order to the ANSI 16-color order.
var ansiIndex = [16]uint8{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// ANSI returns the ANSI 16-color index of c.
func (c Color) ANSI() uint8 {
	return ansiIndex[c&0x0f]
}
