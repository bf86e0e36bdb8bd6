// Package term provides a line-oriented frontend on a raw terminal: frames
// are written as styled text with ANSI cursor control, keys are decoded from
// stdin bytes.
package term

import (
	"bufio"
	"io"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	// Raw mode disables output post-processing, so lines need an explicit CR.
	newline = "\r\n"
)

// Surface writes frames to a terminal.
type Surface struct {
	w  *bufio.Writer
	sb strings.Builder
}

// NewSurface creates a surface writing to w.
func NewSurface(w io.Writer) *Surface {
	return &Surface{w: bufio.NewWriter(w)}
}

// Clear homes the cursor and erases the display.
func (s *Surface) Clear() error {
	_, err := s.w.WriteString(clearScreen)
	return err
}

// WriteLine writes one styled line.
func (s *Surface) WriteLine(cells []core.Cell) error {
	s.sb.Reset()
	render.WriteStyled(&s.sb, cells)
	s.sb.WriteString(newline)
	_, err := s.w.WriteString(s.sb.String())
	return err
}

// Flush pushes buffered output to the terminal.
func (s *Surface) Flush() error {
	return s.w.Flush()
}

var _ core.Surface = (*Surface)(nil)
