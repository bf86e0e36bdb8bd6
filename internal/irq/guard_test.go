package irq

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestGuardReportsContention(t *testing.T) {
	var g Guard[int]
	if !g.TryStore(5) {
		t.Fatal("TryStore on free guard should succeed")
	}

	g.mu.Lock()
	if _, ok := g.TryLoad(); ok {
		t.Error("TryLoad should fail while the guard is held")
	}
	if g.TryStore(6) {
		t.Error("TryStore should fail while the guard is held")
	}
	called := false
	if g.TryUpdate(func(*int) { called = true }) || called {
		t.Error("TryUpdate should fail without calling fn while held")
	}
	g.mu.Unlock()

	v, ok := g.TryLoad()
	if !ok || v != 5 {
		t.Errorf("TryLoad() = %d, %v; expected 5, true", v, ok)
	}
}

func TestTickCounterKeepsTicksAcrossContention(t *testing.T) {
	var c TickCounter

	c.Tick()
	c.Tick()

	// Reader holds the cell: ticks accumulate as pending
	c.g.mu.Lock()
	c.Tick()
	c.Tick()
	c.Tick()
	c.g.mu.Unlock()

	if c.Pending() != 3 {
		t.Errorf("Pending() = %d, expected 3", c.Pending())
	}
	if v, _ := c.TryLoad(); v != 2 {
		t.Errorf("published count = %d, expected 2", v)
	}

	c.Tick()
	if v, _ := c.TryLoad(); v != 6 {
		t.Errorf("published count = %d, expected 6 after catch-up", v)
	}
	if c.Pending() != 0 {
		t.Errorf("Pending() = %d after publish, expected 0", c.Pending())
	}
}

func TestTickCounterMonotonicUnderConcurrentReads(t *testing.T) {
	var c TickCounter
	const ticks = 10000

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range ticks {
			c.Tick()
		}
	}()

	var last uint64
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		if v, ok := c.TryLoad(); ok {
			if v < last {
				t.Fatalf("counter went backwards: %d after %d", v, last)
			}
			last = v
		}
		select {
		case <-done:
			v, _ := c.TryLoad()
			if v+c.Pending() != ticks {
				t.Errorf("published %d + pending %d, expected %d", v, c.Pending(), ticks)
			}
			return
		default:
		}
	}
}

func TestTimerRun(t *testing.T) {
	var c TickCounter
	timer, err := NewTimer(&c, 1000)
	if err != nil {
		t.Fatalf("NewTimer() failed: %v", err)
	}
	if timer.Period() != time.Millisecond {
		t.Errorf("Period() = %v, expected 1ms", timer.Period())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if err := timer.Run(ctx); err != nil {
		t.Errorf("Run() = %v, expected nil on cancellation", err)
	}
	if v, _ := c.TryLoad(); v == 0 {
		t.Error("timer should have ticked at least once")
	}
}

func TestNewTimerRejectsZero(t *testing.T) {
	var c TickCounter
	if _, err := NewTimer(&c, 0); err == nil {
		t.Error("NewTimer(0) should fail")
	}
}

func TestKeyLatchSupersedesPending(t *testing.T) {
	var l KeyLatch

	if k, ok := l.TryLoad(); !ok || k.Kind != core.KeyNone {
		t.Errorf("empty latch = %+v, %v; expected KeyNone", k, ok)
	}

	l.g.mu.Lock()
	if l.Press(core.Unicode('w')) {
		t.Error("Press should report not published while held")
	}
	l.Press(core.Unicode('a'))
	l.g.mu.Unlock()

	if !l.Flush() {
		t.Fatal("Flush should publish once the cell is free")
	}
	k, _ := l.TryLoad()
	if k != core.Unicode('a') {
		t.Errorf("latest key = %v, expected a", k)
	}

	// Reading does not consume
	k, _ = l.TryLoad()
	if k != core.Unicode('a') {
		t.Errorf("second read = %v, expected a", k)
	}
}
