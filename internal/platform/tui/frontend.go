package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

func init() {
	registry.Register("tui", func() registry.Frontend { return Frontend{} })
}

// Frontend runs a session inside a Bubble Tea program.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "tui" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Bubble Tea terminal UI" }

// Fullscreen implements registry.Frontend.
func (Frontend) Fullscreen() bool { return true }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, s *runner.Session) (runner.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(
		NewModel(s.Keys(), cancel),
		tea.WithAltScreen(), // Use alternate screen buffer
	)
	surface := NewSurface(p.Send)

	var (
		g   errgroup.Group
		res runner.Result
	)
	g.Go(func() error {
		var err error
		res, err = s.Play(ctx, surface)
		p.Send(DoneMsg{Result: res, Err: err})
		return err
	})

	_, runErr := p.Run()
	// The program may exit first (killed, or input closed)
	cancel()
	playErr := g.Wait()

	if runErr != nil {
		return res, fmt.Errorf("tui: %w", runErr)
	}
	return res, playErr
}
