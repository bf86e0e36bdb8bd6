package irq

import "github.com/vovakirdan/tui-snake/internal/core"

// KeyLatch is the single-slot cell holding the most recently decoded key.
// Reading does not consume the key.
//
// Press and Flush belong to one keyboard producer. If the reader holds the
// cell, the newest key stays pending and is published on the next Press or
// Flush; an older pending key is simply superseded.
type KeyLatch struct {
	g          Guard[core.Key]
	pending    core.Key
	hasPending bool
}

// TryLoad copies the latest published key.
func (l *KeyLatch) TryLoad() (core.Key, bool) {
	return l.g.TryLoad()
}

// Press records a decoded key. It reports whether the key was published.
func (l *KeyLatch) Press(k core.Key) bool {
	l.pending = k
	l.hasPending = true
	return l.Flush()
}

// Flush retries publishing a pending key. It reports whether nothing is left
// pending.
func (l *KeyLatch) Flush() bool {
	if !l.hasPending {
		return true
	}
	if !l.g.TryStore(l.pending) {
		return false
	}
	l.hasPending = false
	return true
}
