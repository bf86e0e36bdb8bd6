package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// FrameMsg carries one completed frame to the model.
type FrameMsg string

// Surface collects styled lines and hands each flushed frame to the program.
type Surface struct {
	send  func(tea.Msg)
	sb    strings.Builder
	lines int
}

// NewSurface creates a surface delivering frames through send
// (usually (*tea.Program).Send).
func NewSurface(send func(tea.Msg)) *Surface {
	return &Surface{send: send}
}

// Clear starts a new frame.
func (s *Surface) Clear() error {
	s.sb.Reset()
	s.lines = 0
	return nil
}

// WriteLine appends one styled line.
func (s *Surface) WriteLine(cells []core.Cell) error {
	if s.lines > 0 {
		s.sb.WriteByte('\n')
	}
	render.WriteStyled(&s.sb, cells)
	s.lines++
	return nil
}

// Flush sends the frame so far. Lines written after a Flush extend the same
// frame.
func (s *Surface) Flush() error {
	s.send(FrameMsg(s.sb.String()))
	return nil
}

var _ core.Surface = (*Surface)(nil)
