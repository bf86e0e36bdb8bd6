// Package sched paces the game loop. Poller busy-waits on a shared tick
// counter the way the loop would on bare hardware; Sleeper is the hosted
// drop-in that blocks on a time.Ticker instead.
package sched

import (
	"context"
	"runtime"
	"time"
)

// Counter is a monotonic tick source read with a non-blocking try-acquire.
type Counter interface {
	TryLoad() (uint64, bool)
}

// Pacer blocks the loop until the next tick may start.
type Pacer interface {
	Wait(ctx context.Context) error
}

// Poller waits for a fixed number of counter ticks by polling.
type Poller struct {
	counter    Counter
	quantum    uint64
	contention uint64
}

// NewPoller creates a Poller that waits quantum counter ticks per Wait.
func NewPoller(counter Counter, quantum uint64) *Poller {
	return &Poller{
		counter: counter,
		quantum: quantum,
	}
}

// Quantum returns the number of counter ticks per game tick.
func (p *Poller) Quantum() uint64 {
	return p.quantum
}

// Contention returns how many poll attempts found the counter held.
func (p *Poller) Contention() uint64 {
	return p.contention
}

// Wait returns once the counter has advanced by at least the quantum since
// the call started. A held counter is skipped and polled again; the only
// error is ctx's.
func (p *Poller) Wait(ctx context.Context) error {
	var start uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		v, ok := p.counter.TryLoad()
		if ok {
			start = v
			break
		}
		p.contention++
		spin()
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cur, ok := p.counter.TryLoad()
		if !ok {
			p.contention++
			spin()
			continue
		}
		if cur-start >= p.quantum {
			return nil
		}
		spin()
	}
}

// spin yields the processor between polls so the producer goroutine can run.
func spin() {
	runtime.Gosched()
}

// Sleeper paces ticks with a time.Ticker.
type Sleeper struct {
	ticker *time.Ticker
}

// NewSleeper creates a Sleeper with the given tick interval.
func NewSleeper(interval time.Duration) *Sleeper {
	return &Sleeper{ticker: time.NewTicker(interval)}
}

// Wait blocks until the next ticker tick or ctx is done.
func (s *Sleeper) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ticker.C:
		return nil
	}
}

// Stop releases the ticker.
func (s *Sleeper) Stop() {
	s.ticker.Stop()
}
