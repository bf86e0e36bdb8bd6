// Package runner drives one game: it wires the engine to the interrupt-style
// producers, the pacer and a text surface, and runs the loop until the snake
// dies, the player quits or the static budget runs out.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/irq"
	"github.com/vovakirdan/tui-snake/internal/render"
	"github.com/vovakirdan/tui-snake/internal/sched"
)

// Result is the outcome of a finished session.
type Result struct {
	RunID      string
	Score      int
	Ticks      uint64
	Cause      snake.DeathCause
	Quit       bool   // Player left before dying
	Contention uint64 // Poll attempts that found the counter held
}

// Session owns everything one game needs. Memory for the engine is
// allocated in NewSession; the loop itself does not allocate containers.
type Session struct {
	id       uuid.UUID
	cfg      config.SnakeConfig
	engine   *snake.Engine
	counter  *irq.TickCounter
	keys     *irq.KeyLatch
	timer    *irq.Timer
	poller   *sched.Poller
	sleeper  *sched.Sleeper
	renderer *render.Renderer
	logger   *log.Logger
}

// NewSession validates cfg and builds a session. A nil logger discards output.
func NewSession(cfg config.SnakeConfig, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	id := uuid.New()
	s := &Session{
		id:       id,
		cfg:      cfg,
		counter:  &irq.TickCounter{},
		keys:     &irq.KeyLatch{},
		renderer: render.New(cfg.Grid.Width, cfg.Grid.Height, cfg.RenderTheme()),
		logger:   logger.With("run", id.String()),
	}

	eng := cfg.Engine()
	engine, err := snake.New(eng, snake.NewArena(eng), s.keys)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	s.engine = engine

	timer, err := irq.NewTimer(s.counter, cfg.Timing.TimerHz)
	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	s.timer = timer

	return s, nil
}

// ID returns the run id attached to every log line of this session.
func (s *Session) ID() string {
	return s.id.String()
}

// Keys returns the latest-key cell. Frontends feed it from exactly one
// keyboard goroutine.
func (s *Session) Keys() *irq.KeyLatch {
	return s.keys
}

// Engine exposes the engine for inspection.
func (s *Session) Engine() *snake.Engine {
	return s.engine
}

// Config returns the session configuration.
func (s *Session) Config() config.SnakeConfig {
	return s.cfg
}

// TickInterval returns the wall-clock length of one game tick.
func (s *Session) TickInterval() time.Duration {
	return time.Duration(s.cfg.Timing.TickQuantum) * s.timer.Period()
}

// Play runs the game on surface until it ends. Death and ctx cancellation
// end the game normally; any other error is fatal.
func (s *Session) Play(ctx context.Context, surface core.Surface) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pacer := s.pacer()
	defer s.stopPacer()

	s.logger.Info("session started",
		"grid", fmt.Sprintf("%dx%d", s.cfg.Grid.Width, s.cfg.Grid.Height),
		"seed", s.cfg.Seed,
		"pacer", s.cfg.Timing.Pacer,
		"tick", s.TickInterval())

	g, gctx := errgroup.WithContext(ctx)
	if s.poller != nil {
		// The timer only feeds the poller
		g.Go(func() error {
			return s.timer.Run(gctx)
		})
	}

	var res Result
	g.Go(func() error {
		defer cancel()
		var err error
		res, err = s.loop(gctx, surface, pacer)
		return err
	})

	err := g.Wait()
	res.RunID = s.ID()
	if s.poller != nil {
		res.Contention = s.poller.Contention()
	}

	switch {
	case err == nil:
		s.logger.Info("game over", "score", res.Score, "ticks", res.Ticks, "cause", res.Cause)
		return res, nil
	case errors.Is(err, context.Canceled):
		res.Quit = true
		s.logger.Info("session quit", "score", res.Score, "ticks", res.Ticks)
		return res, nil
	default:
		s.logger.Error("halt", "tick", res.Ticks, "err", err)
		return res, err
	}
}

func (s *Session) pacer() sched.Pacer {
	if s.cfg.Timing.Pacer == config.PacerSleep {
		s.sleeper = sched.NewSleeper(s.TickInterval())
		return s.sleeper
	}
	s.poller = sched.NewPoller(s.counter, s.cfg.Timing.TickQuantum)
	return s.poller
}

func (s *Session) stopPacer() {
	if s.sleeper != nil {
		s.sleeper.Stop()
	}
}

// loop is the single consumer: step, draw, then wait for the next tick.
func (s *Session) loop(ctx context.Context, surface core.Surface, pacer sched.Pacer) (Result, error) {
	for {
		step, err := s.engine.Step()
		res := Result{Score: step.Score, Ticks: step.Tick, Cause: step.Cause}
		if err != nil {
			return res, err
		}
		if step.Ate {
			s.logger.Debug("food eaten", "tick", step.Tick, "score", step.Score, "food_left", s.engine.FoodRemaining())
		}

		if err := s.renderer.Frame(surface, step.Score, s.engine.Body(), s.engine.Food()); err != nil {
			return res, err
		}
		if step.GameOver {
			if err := s.renderer.GameOver(surface); err != nil {
				return res, err
			}
			return res, nil
		}

		if err := pacer.Wait(ctx); err != nil {
			return res, err
		}
	}
}
