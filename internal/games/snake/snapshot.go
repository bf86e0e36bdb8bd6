package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64     `yaml:"tick"`
	Phase     string     `yaml:"phase"`
	Direction Direction  `yaml:"direction"`
	Eating    bool       `yaml:"eating"`
	Score     int        `yaml:"score"`
	Food      Position   `yaml:"food,flow"`
	Body      []Position `yaml:"body,flow"`
	Cause     string     `yaml:"cause,omitempty"`
}

// Snapshot returns a copy of the current state. It allocates and is meant
// for tests and tooling, not the tick loop.
func (e *Engine) Snapshot() Snapshot {
	body := make([]Position, e.body.Len())
	copy(body, e.body.View())

	snap := Snapshot{
		Tick:      e.tick,
		Phase:     e.Phase().String(),
		Direction: e.state.Direction,
		Eating:    e.state.Eating,
		Score:     e.Score(),
		Food:      e.current,
		Body:      body,
	}
	if e.cause != CauseNone {
		snap.Cause = e.cause.String()
	}
	return snap
}
