// Package irq models state shared between interrupt-style producers and the
// game loop. Every access is a try-acquire: a caller that loses the race gets
// "not available this attempt" and decides for itself when to retry. Nothing
// in this package ever waits on a lock.
package irq

import "sync"

// Guard is an exclusive-access cell that reports acquisition failure instead
// of blocking.
type Guard[T any] struct {
	mu sync.Mutex
	v  T
}

// TryLoad copies the guarded value. ok is false if the cell is held.
func (g *Guard[T]) TryLoad() (v T, ok bool) {
	if !g.mu.TryLock() {
		return v, false
	}
	v = g.v
	g.mu.Unlock()
	return v, true
}

// TryStore replaces the guarded value. It returns false if the cell is held.
func (g *Guard[T]) TryStore(v T) bool {
	if !g.mu.TryLock() {
		return false
	}
	g.v = v
	g.mu.Unlock()
	return true
}

// TryUpdate applies fn to the guarded value under the lock. It returns false
// without calling fn if the cell is held.
func (g *Guard[T]) TryUpdate(fn func(*T)) bool {
	if !g.mu.TryLock() {
		return false
	}
	fn(&g.v)
	g.mu.Unlock()
	return true
}
