package irq

import (
	"context"
	"fmt"
	"time"
)

// TickCounter is a monotonically increasing counter owned by a single timer
// producer and read by the game loop.
//
// The producer never waits for the reader: a tick that cannot be published
// because the reader holds the cell is kept as pending and folded into the
// next successful publish, so the counter never loses or rolls back ticks.
type TickCounter struct {
	g       Guard[uint64]
	pending uint64 // producer-owned
}

// TryLoad returns the published count.
func (c *TickCounter) TryLoad() (uint64, bool) {
	return c.g.TryLoad()
}

// Tick records one hardware tick. Only the producer may call it.
func (c *TickCounter) Tick() {
	c.pending++
	c.g.TryUpdate(func(v *uint64) {
		*v += c.pending
		c.pending = 0
	})
}

// Pending returns the ticks not yet published. Producer side only.
func (c *TickCounter) Pending() uint64 {
	return c.pending
}

// Timer drives a TickCounter at a fixed resolution, standing in for the
// hardware timer interrupt.
type Timer struct {
	counter *TickCounter
	period  time.Duration
}

// NewTimer creates a timer that ticks hz times per second.
func NewTimer(counter *TickCounter, hz int) (*Timer, error) {
	if hz <= 0 {
		return nil, fmt.Errorf("irq: timer frequency must be positive, got %d", hz)
	}
	return &Timer{
		counter: counter,
		period:  time.Second / time.Duration(hz),
	}, nil
}

// Period returns the time between ticks.
func (t *Timer) Period() time.Duration {
	return t.period
}

// Run ticks the counter until ctx is done.
func (t *Timer) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			t.counter.Tick()
		}
	}
}
