package core

import (
	"strings"
)

// Cell is one character position of a text surface.
type Cell struct {
	Rune rune
	Attr Attr
}

// Blank is the cell a cleared screen is filled with.
var Blank = Cell{Rune: ' ', Attr: AttrDefault}

// Screen is a 2D character buffer for composing frames.
// Storage is allocated once by NewScreen and reused for every frame.
type Screen struct {
	width  int
	height int
	cells  []Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	s.Fill(Blank.Rune, Blank.Attr)
}

// Fill fills the entire screen with the given rune and attribute.
func (s *Screen) Fill(r rune, a Attr) {
	for i := range s.cells {
		s.cells[i] = Cell{Rune: r, Attr: a}
	}
}

// Set places a rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, a Attr) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = Cell{Rune: r, Attr: a}
}

// Row returns row y. The slice aliases the screen.
func (s *Screen) Row(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	return s.cells[y*s.width : (y+1)*s.width]
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
// Cells beyond the screen bounds are clipped.
func (s *Screen) DrawHLine(x, y, length int, r rune, a Attr) {
	for i := 0; i < length; i++ {
		s.Set(x+i, y, r, a)
	}
}

// String converts the screen buffer to plain text, rows joined by newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(LineString(s.Row(y)))
	}
	return sb.String()
}

// LineString returns the characters of a line without attributes.
func LineString(cells []Cell) string {
	var sb strings.Builder
	sb.Grow(len(cells))
	for _, c := range cells {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// TextLine writes text into dst as cells with the given attribute and
// returns the filled prefix. dst is reused to avoid per-frame allocation.
func TextLine(dst []Cell, text string, a Attr) []Cell {
	dst = dst[:0]
	for _, r := range text {
		dst = append(dst, Cell{Rune: r, Attr: a})
	}
	return dst
}
