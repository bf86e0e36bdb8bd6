// Package memory provides an in-memory text surface used by the headless
// frontend and by tests.
package memory

import (
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Surface keeps the lines written since the last Clear.
type Surface struct {
	lines   [][]core.Cell
	flushes int
	clears  int
}

// NewSurface creates an empty surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Clear drops every line.
func (s *Surface) Clear() error {
	s.lines = s.lines[:0]
	s.clears++
	return nil
}

// WriteLine appends a copy of cells.
func (s *Surface) WriteLine(cells []core.Cell) error {
	line := make([]core.Cell, len(cells))
	copy(line, cells)
	s.lines = append(s.lines, line)
	return nil
}

// Flush counts a completed frame.
func (s *Surface) Flush() error {
	s.flushes++
	return nil
}

// Lines returns the current lines as plain text.
func (s *Surface) Lines() []string {
	out := make([]string, len(s.lines))
	for i, l := range s.lines {
		out[i] = core.LineString(l)
	}
	return out
}

// Line returns line i with attributes, or nil.
func (s *Surface) Line(i int) []core.Cell {
	if i < 0 || i >= len(s.lines) {
		return nil
	}
	return s.lines[i]
}

// String returns the current lines joined by newlines.
func (s *Surface) String() string {
	return strings.Join(s.Lines(), "\n")
}

// Flushes returns how many times Flush was called.
func (s *Surface) Flushes() int {
	return s.flushes
}

// Clears returns how many times Clear was called.
func (s *Surface) Clears() int {
	return s.clears
}

var _ core.Surface = (*Surface)(nil)
