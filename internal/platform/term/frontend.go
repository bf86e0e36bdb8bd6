package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/cancelreader"
	"golang.org/x/sync/errgroup"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

func init() {
	registry.Register("term", func() registry.Frontend { return Frontend{} })
}

const (
	hideCursor = "\x1b[?25l"
	showCursor = "\x1b[?25h"
)

// Frontend plays on the controlling terminal in raw mode.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "term" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Raw terminal (ANSI)" }

// Fullscreen implements registry.Frontend.
func (Frontend) Fullscreen() bool { return true }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, s *runner.Session) (runner.Result, error) {
	fd := int(os.Stdin.Fd())
	if !xterm.IsTerminal(fd) {
		return runner.Result{}, errors.New("term: stdin is not a terminal")
	}
	if w, h, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg := s.Config()
		if w < cfg.Grid.Width || h < cfg.Grid.Height+4 {
			return runner.Result{}, fmt.Errorf("term: terminal %dx%d too small for a %dx%d grid", w, h, cfg.Grid.Width, cfg.Grid.Height)
		}
	}

	old, err := xterm.MakeRaw(fd)
	if err != nil {
		return runner.Result{}, fmt.Errorf("term: raw mode: %w", err)
	}
	defer xterm.Restore(fd, old) //nolint:errcheck // Best-effort restore on exit

	in, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return runner.Result{}, fmt.Errorf("term: %w", err)
	}
	defer in.Close()

	os.Stdout.WriteString(hideCursor)       //nolint:errcheck
	defer os.Stdout.WriteString(showCursor) //nolint:errcheck

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		res  runner.Result
		done = make(chan struct{})
	)
	chunks := make(chan []byte)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return readChunks(gctx, in, chunks)
	})
	g.Go(func() error {
		return produceKeys(gctx, chunks, s.Keys(), cancel, done)
	})
	g.Go(func() error {
		<-gctx.Done()
		in.Cancel()
		return nil
	})
	g.Go(func() error {
		var err error
		res, err = s.Play(gctx, NewSurface(os.Stdout))
		if err != nil || res.Quit {
			cancel()
			return err
		}
		close(done)
		os.Stdout.WriteString("press any key to exit" + newline) //nolint:errcheck
		return nil
	})

	err = g.Wait()
	return res, err
}

// flushRetry is how long a held key waits before the next publish attempt.
const flushRetry = time.Millisecond

// Latch is the producer side of the key latch. Press and Flush report false
// while the consumer holds it.
type Latch interface {
	Press(core.Key) bool
	Flush() bool
}

// readChunks forwards raw input to the producer until the reader is
// cancelled or ctx is done. chunks is closed on return.
func readChunks(ctx context.Context, in io.Reader, chunks chan<- []byte) error {
	defer close(chunks)
	for {
		buf := make([]byte, 64)
		n, err := in.Read(buf)
		if errors.Is(err, cancelreader.ErrCanceled) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("term: read: %w", err)
		}
		select {
		case chunks <- buf[:n]:
		case <-ctx.Done():
			return nil
		}
	}
}

// produceKeys is the keyboard producer and the only caller of Press and
// Flush. It stops on a quit key, on any key once done is closed, or when
// input ends. A key held by the game loop is retried every flushRetry.
func produceKeys(ctx context.Context, chunks <-chan []byte, latch Latch, quit func(), done <-chan struct{}) error {
	retry := time.NewTimer(flushRetry)
	retry.Stop()
	defer retry.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-retry.C:
		case chunk, ok := <-chunks:
			if !ok {
				quit()
				return nil
			}
			select {
			case <-done:
				quit()
				return nil
			default:
			}

			stop := false
			Decode(chunk, func(ev Event) {
				if ev.Quit {
					stop = true
					return
				}
				latch.Press(ev.Key)
			})
			if stop {
				quit()
				return nil
			}
		}
		if !latch.Flush() {
			retry.Reset(flushRetry)
		}
	}
}
