package snake

import (
	"errors"
	"fmt"
)

// Defaults for the classic 20×10 board.
const (
	DefaultWidth         = 20
	DefaultHeight        = 10
	DefaultStartLength   = 4
	DefaultFoodCapacity  = 32
	DefaultInputDepth    = 2
	DefaultInputCapacity = DefaultInputDepth + 1
	DefaultSeed          = 23625234

	// MaxSide bounds both grid dimensions so coordinates stay well inside uint16.
	MaxSide = 1024
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("snake: invalid config")

// Config fixes the grid and the static memory budget of an engine.
type Config struct {
	Width       int
	Height      int
	StartLength int

	BodyCapacity  int // Must hold every grid cell
	FoodCapacity  int // Number of pre-generated food candidates
	InputCapacity int // Input queue slots, at least InputDepth+1
	InputDepth    int // Pending directions kept after each push

	Seed uint64
}

// DefaultConfig returns the classic board configuration.
func DefaultConfig() Config {
	return Config{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		StartLength:   DefaultStartLength,
		BodyCapacity:  DefaultWidth * DefaultHeight,
		FoodCapacity:  DefaultFoodCapacity,
		InputCapacity: DefaultInputCapacity,
		InputDepth:    DefaultInputDepth,
		Seed:          DefaultSeed,
	}
}

// Validate rejects grids and budgets the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Width < 3 || c.Width > MaxSide:
		return fmt.Errorf("%w: width %d not in [3, %d]", ErrInvalidConfig, c.Width, MaxSide)
	case c.Height < 2 || c.Height > MaxSide:
		return fmt.Errorf("%w: height %d not in [2, %d]", ErrInvalidConfig, c.Height, MaxSide)
	case c.StartLength < 1 || c.StartLength > c.Width-2:
		// The first food sits at width-1 and must not start under the body.
		return fmt.Errorf("%w: start length %d not in [1, %d]", ErrInvalidConfig, c.StartLength, c.Width-2)
	case c.BodyCapacity < c.Width*c.Height:
		return fmt.Errorf("%w: body capacity %d below grid size %d", ErrInvalidConfig, c.BodyCapacity, c.Width*c.Height)
	case c.FoodCapacity < 1:
		return fmt.Errorf("%w: food capacity must be positive", ErrInvalidConfig)
	case c.InputDepth < 1:
		return fmt.Errorf("%w: input depth must be positive", ErrInvalidConfig)
	case c.InputCapacity < c.InputDepth+1:
		return fmt.Errorf("%w: input capacity %d below depth+1 (%d)", ErrInvalidConfig, c.InputCapacity, c.InputDepth+1)
	}
	return nil
}

// Arena is the backing storage for an engine's containers. It is allocated
// once, up front, and never grown.
type Arena struct {
	Body  []Position
	Food  []Position
	Input []Direction
}

// NewArena allocates storage sized for cfg.
func NewArena(cfg Config) *Arena {
	return &Arena{
		Body:  make([]Position, cfg.BodyCapacity),
		Food:  make([]Position, cfg.FoodCapacity),
		Input: make([]Direction, cfg.InputCapacity),
	}
}

// fits reports whether the arena satisfies cfg's budget.
func (a *Arena) fits(cfg Config) error {
	switch {
	case len(a.Body) < cfg.BodyCapacity:
		return fmt.Errorf("%w: body storage %d < %d", ErrInvalidConfig, len(a.Body), cfg.BodyCapacity)
	case len(a.Food) < cfg.FoodCapacity:
		return fmt.Errorf("%w: food storage %d < %d", ErrInvalidConfig, len(a.Food), cfg.FoodCapacity)
	case len(a.Input) < cfg.InputCapacity:
		return fmt.Errorf("%w: input storage %d < %d", ErrInvalidConfig, len(a.Input), cfg.InputCapacity)
	}
	return nil
}
