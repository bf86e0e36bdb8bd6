// Package headless provides a frontend without a terminal.
package headless

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/tui-snake/internal/platform/memory"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

func init() {
	registry.Register("headless", func() registry.Frontend { return &Frontend{} })
}

// Frontend plays without a keyboard on an in-memory surface and prints the
// final frame. The snake runs straight until it dies, which makes it handy
// for checking pacing and configuration.
type Frontend struct {
	// Out receives the final frame. Defaults to os.Stdout.
	Out io.Writer
}

// ID implements registry.Frontend.
func (*Frontend) ID() string { return "headless" }

// Title implements registry.Frontend.
func (*Frontend) Title() string { return "Headless (prints the final frame)" }

// Fullscreen implements registry.Frontend.
func (*Frontend) Fullscreen() bool { return false }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, s *runner.Session) (runner.Result, error) {
	out := f.Out
	if out == nil {
		out = os.Stdout
	}

	surface := memory.NewSurface()
	res, err := s.Play(ctx, surface)
	if err != nil {
		return res, err
	}
	if _, err := fmt.Fprintln(out, surface.String()); err != nil {
		return res, fmt.Errorf("headless: %w", err)
	}
	return res, nil
}
