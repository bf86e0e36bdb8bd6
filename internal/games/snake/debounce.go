package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/bounded"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeySource is the latest-key cell filled by the keyboard producer.
type KeySource interface {
	TryLoad() (core.Key, bool)
}

// DirectionForKey maps a decoded key to a heading. WASD and the arrow keys
// are recognized; everything else is ignored.
func DirectionForKey(k core.Key) (Direction, bool) {
	switch k.Kind {
	case core.KeyUnicode:
		switch k.Rune {
		case 'w', 'W':
			return DirUp, true
		case 'a', 'A':
			return DirLeft, true
		case 's', 'S':
			return DirDown, true
		case 'd', 'D':
			return DirRight, true
		}
	case core.KeyRaw:
		switch k.Code {
		case core.CodeArrowUp:
			return DirUp, true
		case core.CodeArrowLeft:
			return DirLeft, true
		case core.CodeArrowDown:
			return DirDown, true
		case core.CodeArrowRight:
			return DirRight, true
		}
	}
	return 0, false
}

// Debouncer turns the latest-key cell into a short queue of pending headings
// and releases at most one per tick.
type Debouncer struct {
	keys  KeySource
	queue *bounded.Vec[Direction]
	depth int
}

// NewDebouncer creates a debouncer over storage that keeps at most depth
// pending headings. storage must hold depth+1 entries.
func NewDebouncer(keys KeySource, storage []Direction, depth int) (*Debouncer, error) {
	if depth < 1 || len(storage) < depth+1 {
		return nil, fmt.Errorf("snake: input storage %d too small for depth %d", len(storage), depth)
	}
	return &Debouncer{
		keys:  keys,
		queue: bounded.New(storage),
		depth: depth,
	}, nil
}

// Poll reads the key cell once. A held cell or an unrecognized key leaves the
// queue unchanged.
func (d *Debouncer) Poll() error {
	if d.keys == nil {
		return nil
	}
	k, ok := d.keys.TryLoad()
	if !ok {
		return nil
	}
	dir, ok := DirectionForKey(k)
	if !ok {
		return nil
	}
	return d.Enqueue(dir)
}

// Enqueue pushes a heading and drops the oldest entries beyond the depth.
func (d *Debouncer) Enqueue(dir Direction) error {
	if err := d.queue.Push(dir); err != nil {
		return err
	}
	for d.queue.Len() > d.depth {
		if _, err := d.queue.PopFront(); err != nil {
			return err
		}
	}
	return nil
}

// Next pops the front heading and returns it if it is a real turn from
// current. Repeats and reversals are discarded.
func (d *Debouncer) Next(current Direction) (Direction, bool) {
	candidate, err := d.queue.PopFront()
	if err != nil {
		return current, false
	}
	if candidate == current || candidate == current.Opposite() {
		return current, false
	}
	return candidate, true
}

// Pending returns the queued headings, oldest first. The slice aliases the
// queue.
func (d *Debouncer) Pending() []Direction {
	return d.queue.View()
}
