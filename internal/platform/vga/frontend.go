package vga

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

func init() {
	registry.Register("vga", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs a session on a full-screen tcell grid.
type Frontend struct {
	// NewScreen overrides screen creation; tests use a simulation screen.
	NewScreen func() (tcell.Screen, error)
}

// ID implements registry.Frontend.
func (*Frontend) ID() string { return "vga" }

// Title implements registry.Frontend.
func (*Frontend) Title() string { return "Text-mode grid (tcell)" }

// Fullscreen implements registry.Frontend.
func (*Frontend) Fullscreen() bool { return true }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, s *runner.Session) (runner.Result, error) {
	newScreen := f.NewScreen
	if newScreen == nil {
		newScreen = tcell.NewScreen
	}
	screen, err := newScreen()
	if err != nil {
		return runner.Result{}, fmt.Errorf("vga: %w", err)
	}
	if err := screen.Init(); err != nil {
		return runner.Result{}, fmt.Errorf("vga: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	w, h := screen.Size()
	cfg := s.Config()
	// Score line, two borders, the grid and the death line
	if w < cfg.Grid.Width || h < cfg.Grid.Height+4 {
		return runner.Result{}, fmt.Errorf("vga: terminal %dx%d too small for a %dx%d grid", w, h, cfg.Grid.Width, cfg.Grid.Height)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		over atomic.Bool
		res  runner.Result
	)
	g, gctx := errgroup.WithContext(ctx)
	keyboard := NewKeyboard(screen, s.Keys(), cancel, over.Load)

	g.Go(func() error {
		return keyboard.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		// Wake the keyboard poll
		//nolint:errcheck // A full queue wakes it just the same
		screen.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})
	g.Go(func() error {
		var err error
		res, err = s.Play(gctx, NewSurface(screen))
		if err != nil || res.Quit {
			cancel()
			return err
		}
		// Keep "You Died" up until the next key
		over.Store(true)
		return nil
	})

	err = g.Wait()
	return res, err
}
