package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// keyCell is a latest-key cell the test controls directly.
type keyCell struct {
	key  core.Key
	held bool
}

func (k *keyCell) TryLoad() (core.Key, bool) {
	if k.held {
		return core.Key{}, false
	}
	return k.key, true
}

func newEngine(t *testing.T, cfg Config, keys KeySource) *Engine {
	t.Helper()
	e, err := New(cfg, NewArena(cfg), keys)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e
}

// place overwrites the body, heading and food.
func place(t *testing.T, e *Engine, dir Direction, food Position, body ...Position) {
	t.Helper()
	e.body.Clear()
	for _, p := range body {
		if err := e.body.Push(p); err != nil {
			t.Fatalf("place: %v", err)
		}
	}
	e.state.Direction = dir
	e.current = food
}

func pos(x, y uint16) Position {
	return Position{X: x, Y: y}
}

func assertBodyValid(t *testing.T, e *Engine) {
	t.Helper()
	body := e.Body()
	for i, p := range body {
		if p.X < 1 || int(p.X) > e.cfg.Width || p.Y < 1 || int(p.Y) > e.cfg.Height {
			t.Fatalf("tick %d: segment %d at %v out of bounds", e.Tick(), i, p)
		}
		for j := i + 1; j < len(body); j++ {
			if body[j] == p {
				t.Fatalf("tick %d: segments %d and %d both at %v", e.Tick(), i, j, p)
			}
		}
	}
}
