package snake

import "fmt"

// Direction is the snake's heading.
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the reverse heading. Opposite(Opposite(d)) == d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// MarshalText encodes the direction by name.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Position is a grid cell, 1-indexed within [1, width] × [1, height].
type Position struct {
	X uint16 `yaml:"x"`
	Y uint16 `yaml:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Step returns p moved one cell towards d. Moving up or left from the first
// row or column yields 0 on that axis, which is outside the grid.
func (p Position) Step(d Direction) Position {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

// Phase is the engine's lifecycle state. Dead is terminal.
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhaseDead
)

func (p Phase) String() string {
	if p == PhaseDead {
		return "dead"
	}
	return "running"
}

// DeathCause records why the snake died.
type DeathCause uint8

const (
	CauseNone DeathCause = iota
	CauseBoundary
	CauseSelfCollision
)

func (c DeathCause) String() string {
	switch c {
	case CauseBoundary:
		return "boundary"
	case CauseSelfCollision:
		return "self_collision"
	default:
		return "none"
	}
}

// State is the per-game mutable state advanced once per tick.
type State struct {
	Direction Direction
	Eating    bool
	Alive     bool
}
