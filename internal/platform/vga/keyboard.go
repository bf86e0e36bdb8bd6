package vga

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// flushRetry is how long a held key waits before the next publish attempt.
const flushRetry = time.Millisecond

// Latch is the producer side of the key latch. Press and Flush report false
// while the consumer holds it.
type Latch interface {
	Press(core.Key) bool
	Flush() bool
}

// retryFlush tags the interrupt event that wakes the poll for a retry.
type retryFlush struct{}

// ToKey decodes a tcell key event into the game's key event.
func ToKey(ev *tcell.EventKey) (core.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return core.Unicode(ev.Rune()), true
	case tcell.KeyUp:
		return core.Raw(core.CodeArrowUp), true
	case tcell.KeyDown:
		return core.Raw(core.CodeArrowDown), true
	case tcell.KeyLeft:
		return core.Raw(core.CodeArrowLeft), true
	case tcell.KeyRight:
		return core.Raw(core.CodeArrowRight), true
	case tcell.KeyEscape:
		return core.Raw(core.CodeEscape), true
	case tcell.KeyEnter:
		return core.Raw(core.CodeEnter), true
	}
	return core.Key{}, false
}

// isQuit reports whether ev asks to leave the game.
func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

// Keyboard is the keyboard producer: it polls screen events and publishes
// decoded keys to the latch.
type Keyboard struct {
	screen  tcell.Screen
	latch   Latch
	quit    func()
	over    func() bool
	retries bool // A retry interrupt is in flight
}

// NewKeyboard creates a producer. quit is called on a quit key, or on any key
// once over reports true.
func NewKeyboard(screen tcell.Screen, latch Latch, quit func(), over func() bool) *Keyboard {
	return &Keyboard{screen: screen, latch: latch, quit: quit, over: over}
}

// Run polls events until ctx is done. The caller must post an interrupt
// event on cancellation to unblock the poll.
func (k *Keyboard) Run(ctx context.Context) error {
	for {
		ev := k.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			// Screen finalized
			return nil
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventInterrupt:
			if _, ok := ev.Data().(retryFlush); ok {
				k.retries = false
			}
		case *tcell.EventKey:
			if isQuit(ev) || k.over() {
				k.quit()
				return nil
			}
			if key, ok := ToKey(ev); ok {
				k.latch.Press(key)
			}
		}
		if ctx.Err() != nil {
			return nil
		}
		// A key held during Press is retried here, and again after
		// flushRetry until the loop lets it through
		if !k.latch.Flush() && !k.retries {
			k.retries = true
			time.AfterFunc(flushRetry, func() {
				k.screen.PostEvent(tcell.NewEventInterrupt(retryFlush{})) //nolint:errcheck // Queue full means another event will retry
			})
		}
	}
}
