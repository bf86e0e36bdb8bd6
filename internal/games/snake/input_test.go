package snake

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestOppositeIsInvolution(t *testing.T) {
	tests := []struct {
		dir      Direction
		opposite Direction
	}{
		{DirUp, DirDown},
		{DirDown, DirUp},
		{DirLeft, DirRight},
		{DirRight, DirLeft},
	}

	for _, tc := range tests {
		if got := tc.dir.Opposite(); got != tc.opposite {
			t.Errorf("%v.Opposite() = %v, expected %v", tc.dir, got, tc.opposite)
		}
		if got := tc.dir.Opposite().Opposite(); got != tc.dir {
			t.Errorf("%v.Opposite().Opposite() = %v", tc.dir, got)
		}
	}
}

func TestDirectionForKey(t *testing.T) {
	tests := []struct {
		key core.Key
		dir Direction
		ok  bool
	}{
		{core.Unicode('w'), DirUp, true},
		{core.Unicode('a'), DirLeft, true},
		{core.Unicode('s'), DirDown, true},
		{core.Unicode('d'), DirRight, true},
		{core.Unicode('D'), DirRight, true},
		{core.Raw(core.CodeArrowUp), DirUp, true},
		{core.Raw(core.CodeArrowRight), DirRight, true},
		{core.Unicode('q'), 0, false},
		{core.Raw(core.CodeEnter), 0, false},
		{core.Key{}, 0, false},
	}

	for _, tc := range tests {
		dir, ok := DirectionForKey(tc.key)
		if ok != tc.ok || (ok && dir != tc.dir) {
			t.Errorf("DirectionForKey(%v) = %v, %v; expected %v, %v", tc.key, dir, ok, tc.dir, tc.ok)
		}
	}
}

func newDebouncer(t *testing.T, keys KeySource) *Debouncer {
	t.Helper()
	d, err := NewDebouncer(keys, make([]Direction, DefaultInputCapacity), DefaultInputDepth)
	if err != nil {
		t.Fatalf("NewDebouncer() failed: %v", err)
	}
	return d
}

func TestDebouncerDropsOldestBeyondDepth(t *testing.T) {
	d := newDebouncer(t, nil)

	for _, dir := range []Direction{DirUp, DirLeft, DirDown} {
		if err := d.Enqueue(dir); err != nil {
			t.Fatalf("Enqueue(%v) failed: %v", dir, err)
		}
	}

	expected := []Direction{DirLeft, DirDown}
	if !reflect.DeepEqual(d.Pending(), expected) {
		t.Errorf("Pending() = %v, expected %v", d.Pending(), expected)
	}
}

func TestDebouncerConsumesOnePerTick(t *testing.T) {
	d := newDebouncer(t, nil)
	d.Enqueue(DirUp)
	d.Enqueue(DirLeft)

	dir, ok := d.Next(DirRight)
	if !ok || dir != DirUp {
		t.Errorf("Next(right) = %v, %v; expected up, true", dir, ok)
	}
	if len(d.Pending()) != 1 {
		t.Errorf("one entry should remain, got %v", d.Pending())
	}
}

func TestDebouncerDiscardsRepeatAndReverse(t *testing.T) {
	d := newDebouncer(t, nil)

	d.Enqueue(DirRight)
	if dir, ok := d.Next(DirRight); ok || dir != DirRight {
		t.Errorf("repeat: Next = %v, %v; expected right, false", dir, ok)
	}

	d.Enqueue(DirLeft)
	if dir, ok := d.Next(DirRight); ok || dir != DirRight {
		t.Errorf("reverse: Next = %v, %v; expected right, false", dir, ok)
	}

	if dir, ok := d.Next(DirRight); ok || dir != DirRight {
		t.Errorf("empty: Next = %v, %v; expected right, false", dir, ok)
	}
}

func TestDebouncerPoll(t *testing.T) {
	keys := &keyCell{key: core.Unicode('w')}
	d := newDebouncer(t, keys)

	if err := d.Poll(); err != nil {
		t.Fatalf("Poll() failed: %v", err)
	}
	if !reflect.DeepEqual(d.Pending(), []Direction{DirUp}) {
		t.Errorf("Pending() = %v, expected [up]", d.Pending())
	}

	// Held cell is treated as unchanged
	keys.held = true
	d.Poll()
	if len(d.Pending()) != 1 {
		t.Errorf("held cell should not enqueue, Pending() = %v", d.Pending())
	}

	// Unrecognized keys are ignored
	keys.held = false
	keys.key = core.Unicode('z')
	d.Poll()
	if len(d.Pending()) != 1 {
		t.Errorf("unrecognized key should not enqueue, Pending() = %v", d.Pending())
	}

	// The cell is not drained: the same key enqueues on every poll, capped at depth
	keys.key = core.Unicode('s')
	for range 5 {
		d.Poll()
	}
	if !reflect.DeepEqual(d.Pending(), []Direction{DirDown, DirDown}) {
		t.Errorf("Pending() = %v, expected [down down]", d.Pending())
	}
}

func TestNewDebouncerRejectsSmallStorage(t *testing.T) {
	if _, err := NewDebouncer(nil, make([]Direction, 2), 2); err == nil {
		t.Error("storage of depth entries should be rejected")
	}
}
