package snake

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/tui-snake/internal/bounded"
)

// ErrFoodSupplyExhausted means every pre-generated candidate has been used
// or was covered by the body.
var ErrFoodSupplyExhausted = errors.New("snake: food supply exhausted")

// FoodAllocator hands out pre-generated food positions, skipping any that
// the body currently covers.
type FoodAllocator struct {
	queue *bounded.Vec[Position]
}

// NewFoodAllocator fills storage with seeded candidates strictly inside the
// border: x in [1, width-1], y in [1, height-1].
func NewFoodAllocator(storage []Position, width, height int, seed uint64) (*FoodAllocator, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("snake: grid %dx%d too small for food", width, height)
	}
	rng := rand.New(rand.NewSource(seed))
	queue := bounded.New(storage)

	for !queue.IsFull() {
		p := Position{
			X: uint16(1 + uniform(rng, uint32(width-1))),
			Y: uint16(1 + uniform(rng, uint32(height-1))),
		}
		if err := queue.Push(p); err != nil {
			return nil, err
		}
	}
	return &FoodAllocator{queue: queue}, nil
}

// uniform returns a value in [0, n) by masking and redrawing until in range.
func uniform(rng *rand.Rand, n uint32) uint32 {
	mask := uint32(1)<<bits.Len32(n-1) - 1
	for {
		if v := rng.Uint32() & mask; v < n {
			return v
		}
	}
}

// Next pops candidates from the back until one is not in body.
func (f *FoodAllocator) Next(body *bounded.Vec[Position]) (Position, error) {
	for {
		p, err := f.queue.Pop()
		if err != nil {
			return Position{}, ErrFoodSupplyExhausted
		}
		if !bounded.Contains(body, p) {
			return p, nil
		}
	}
}

// Remaining returns the number of unused candidates.
func (f *FoodAllocator) Remaining() int {
	return f.queue.Len()
}
