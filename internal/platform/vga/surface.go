// Package vga provides a character-and-attribute frontend on tcell: cells are
// written straight into the terminal grid the way a text-mode buffer would be.
package vga

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styles caches one tcell style per attribute byte.
var styles = func() [256]tcell.Style {
	var out [256]tcell.Style
	for i := range out {
		a := core.Attr(i)
		out[i] = tcell.StyleDefault.
			Foreground(tcell.PaletteColor(int(a.Foreground().ANSI()))).
			Background(tcell.PaletteColor(int(a.Background().ANSI())))
	}
	return out
}()

// Style returns the tcell style for an attribute byte.
func Style(a core.Attr) tcell.Style {
	return styles[a]
}

// Surface writes lines top-down into a tcell screen.
type Surface struct {
	screen tcell.Screen
	row    int
}

// NewSurface creates a surface on an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Clear blanks the screen and moves the cursor to the top row.
func (s *Surface) Clear() error {
	s.screen.Clear()
	s.row = 0
	return nil
}

// WriteLine writes cells at the current row. Rows below the screen are
// dropped.
func (s *Surface) WriteLine(cells []core.Cell) error {
	_, h := s.screen.Size()
	if s.row < h {
		for x, c := range cells {
			s.screen.SetContent(x, s.row, c.Rune, nil, styles[c.Attr])
		}
	}
	s.row++
	return nil
}

// Flush shows the frame.
func (s *Surface) Flush() error {
	s.screen.Show()
	return nil
}

var _ core.Surface = (*Surface)(nil)
