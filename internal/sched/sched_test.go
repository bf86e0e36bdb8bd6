package sched

import (
	"context"
	"errors"
	"testing"
	"time"
)

// scriptedCounter replays a fixed sequence of TryLoad results, then keeps
// returning the last one.
type scriptedCounter struct {
	steps []step
	calls int
}

type step struct {
	v  uint64
	ok bool
}

func (c *scriptedCounter) TryLoad() (uint64, bool) {
	i := c.calls
	if i >= len(c.steps) {
		i = len(c.steps) - 1
	}
	c.calls++
	return c.steps[i].v, c.steps[i].ok
}

func TestPollerWaitsForQuantum(t *testing.T) {
	c := &scriptedCounter{steps: []step{
		{100, true}, // start
		{101, true},
		{103, true},
		{104, true}, // 104-100 >= 4
		{999, true},
	}}
	p := NewPoller(c, 4)

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if c.calls != 4 {
		t.Errorf("Wait polled %d times, expected 4", c.calls)
	}
	if p.Contention() != 0 {
		t.Errorf("Contention() = %d, expected 0", p.Contention())
	}
}

func TestPollerToleratesHeldCounter(t *testing.T) {
	c := &scriptedCounter{steps: []step{
		{0, false}, // start attempt blocked
		{10, true}, // start
		{0, false},
		{0, false},
		{12, true},
	}}
	p := NewPoller(c, 2)

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if p.Contention() != 3 {
		t.Errorf("Contention() = %d, expected 3", p.Contention())
	}
}

func TestPollerZeroQuantumReturnsImmediately(t *testing.T) {
	c := &scriptedCounter{steps: []step{{7, true}}}
	p := NewPoller(c, 0)

	if err := p.Wait(context.Background()); err != nil {
		t.Fatalf("Wait() failed: %v", err)
	}
	if c.calls != 2 {
		t.Errorf("Wait polled %d times, expected 2", c.calls)
	}
}

func TestPollerHonorsCancellation(t *testing.T) {
	// Counter never advances
	c := &scriptedCounter{steps: []step{{1, true}}}
	p := NewPoller(c, 5)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, expected context.Canceled", err)
	}
}

func TestSleeperWait(t *testing.T) {
	s := NewSleeper(time.Millisecond)
	defer s.Stop()

	if err := s.Wait(context.Background()); err != nil {
		t.Errorf("Wait() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Stop()
	if err := s.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() on cancelled ctx = %v, expected context.Canceled", err)
	}
}

var (
	_ Pacer = (*Poller)(nil)
	_ Pacer = (*Sleeper)(nil)
)
