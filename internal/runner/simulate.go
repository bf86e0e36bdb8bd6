package runner

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/irq"
)

// Script maps a tick number to the key pressed just before that tick.
type Script map[uint64]core.Key

// Simulate runs the engine headless for at most ticks ticks, pressing the
// scripted keys through a key latch, and calls fn with a snapshot after every
// tick. It stops early when the snake dies. The run is fully determined by
// cfg and script.
func Simulate(cfg config.SnakeConfig, ticks uint64, script Script, fn func(snake.Snapshot) error) (snake.Snapshot, error) {
	if err := cfg.Validate(); err != nil {
		return snake.Snapshot{}, fmt.Errorf("runner: %w", err)
	}

	latch := &irq.KeyLatch{}
	eng := cfg.Engine()
	engine, err := snake.New(eng, snake.NewArena(eng), latch)
	if err != nil {
		return snake.Snapshot{}, fmt.Errorf("runner: %w", err)
	}

	last := engine.Snapshot()
	for t := uint64(1); t <= ticks; t++ {
		if k, ok := script[t]; ok {
			// Nothing else holds the latch here
			latch.Press(k)
		}
		step, err := engine.Step()
		if err != nil {
			return last, err
		}
		last = engine.Snapshot()
		if fn != nil {
			if err := fn(last); err != nil {
				return last, err
			}
		}
		if step.GameOver {
			break
		}
	}
	return last, nil
}
