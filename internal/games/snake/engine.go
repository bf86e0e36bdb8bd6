// Package snake implements the bounded-memory snake engine: a fixed-budget
// body, a debounced input queue, a pre-generated food supply and the
// per-tick movement and collision rules.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/bounded"
)

// StepResult describes the outcome of one tick.
type StepResult struct {
	Tick     uint64
	Score    int
	Ate      bool
	GameOver bool
	Cause    DeathCause
}

// Engine owns the game state. It is driven by a single goroutine.
type Engine struct {
	cfg   Config
	body  *bounded.Vec[Position] // Head at index 0
	food  *FoodAllocator
	input *Debouncer

	current Position // Active food
	state   State
	cause   DeathCause
	tick    uint64
}

// New creates an engine over arena, reading keys from keys.
func New(cfg Config, arena *Arena, keys KeySource) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := arena.fits(cfg); err != nil {
		return nil, err
	}

	food, err := NewFoodAllocator(arena.Food[:cfg.FoodCapacity], cfg.Width, cfg.Height, cfg.Seed)
	if err != nil {
		return nil, err
	}
	input, err := NewDebouncer(keys, arena.Input[:cfg.InputCapacity], cfg.InputDepth)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:   cfg,
		body:  bounded.New(arena.Body[:cfg.BodyCapacity]),
		food:  food,
		input: input,
		state: State{Direction: DirRight, Alive: true},
	}

	// Body runs from (start, h/2) back to (1, h/2), heading right
	row := uint16(cfg.Height / 2)
	for x := cfg.StartLength; x >= 1; x-- {
		if err := e.body.Push(Position{X: uint16(x), Y: row}); err != nil {
			return nil, fmt.Errorf("snake: initial body: %w", err)
		}
	}
	e.current = Position{X: uint16(cfg.Width - 1), Y: row}

	return e, nil
}

// Step advances the game by one tick. Death is reported in the result; an
// error means the static budget was undersized and the game cannot go on.
func (e *Engine) Step() (StepResult, error) {
	if !e.state.Alive {
		return e.result(false), nil
	}
	e.tick++

	if err := e.input.Poll(); err != nil {
		return e.result(false), fmt.Errorf("snake: tick %d: input queue: %w", e.tick, err)
	}
	if dir, ok := e.input.Next(e.state.Direction); ok {
		e.state.Direction = dir
	}

	head, err := e.body.Front()
	if err != nil {
		return e.result(false), fmt.Errorf("snake: tick %d: %w", e.tick, err)
	}
	next := head.Step(e.state.Direction)

	if !e.inBounds(next) {
		e.die(CauseBoundary)
		return e.result(false), nil
	}
	if bounded.Contains(e.body, next) {
		e.die(CauseSelfCollision)
		return e.result(false), nil
	}

	if e.state.Eating {
		e.state.Eating = false
	} else if _, err := e.body.Pop(); err != nil {
		return e.result(false), fmt.Errorf("snake: tick %d: tail: %w", e.tick, err)
	}
	if err := e.body.Insert(0, next); err != nil {
		return e.result(false), fmt.Errorf("snake: tick %d: body: %w", e.tick, err)
	}

	ate := next == e.current
	if ate {
		e.state.Eating = true
		food, err := e.food.Next(e.body)
		if err != nil {
			return e.result(true), fmt.Errorf("snake: tick %d: %w", e.tick, err)
		}
		e.current = food
	}

	return e.result(ate), nil
}

// inBounds reports whether p lies in [1, width] × [1, height].
func (e *Engine) inBounds(p Position) bool {
	return p.X > 0 && int(p.X) <= e.cfg.Width &&
		p.Y > 0 && int(p.Y) <= e.cfg.Height
}

func (e *Engine) die(cause DeathCause) {
	e.state.Alive = false
	e.cause = cause
}

func (e *Engine) result(ate bool) StepResult {
	return StepResult{
		Tick:     e.tick,
		Score:    e.Score(),
		Ate:      ate,
		GameOver: !e.state.Alive,
		Cause:    e.cause,
	}
}

// Score is the number of segments grown since the start.
func (e *Engine) Score() int {
	return e.body.Len() - e.cfg.StartLength
}

// Body returns the segments, head first. The slice aliases engine storage
// and is only valid until the next Step.
func (e *Engine) Body() []Position {
	return e.body.View()
}

// Food returns the active food position.
func (e *Engine) Food() Position {
	return e.current
}

// State returns the current game state.
func (e *Engine) State() State {
	return e.state
}

// Phase returns Running or Dead.
func (e *Engine) Phase() Phase {
	if e.state.Alive {
		return PhaseRunning
	}
	return PhaseDead
}

// Cause returns why the game ended, or CauseNone while running.
func (e *Engine) Cause() DeathCause {
	return e.cause
}

// Tick returns the number of ticks stepped.
func (e *Engine) Tick() uint64 {
	return e.tick
}

// FoodRemaining returns the unused food candidates.
func (e *Engine) FoodRemaining() int {
	return e.food.Remaining()
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}
