package config

import "fmt"

// DifficultyPreset represents a named game speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// TickMillisForPreset returns the game tick length for a preset.
func TickMillisForPreset(preset DifficultyPreset) (int, error) {
	switch preset {
	case DifficultyEasy:
		return 220, nil
	case DifficultyNormal:
		return 150, nil
	case DifficultyHard:
		return 90, nil
	default:
		return 0, fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", preset)
	}
}

// ApplyPreset sets the tick quantum for preset at the configured timer
// resolution. An empty preset leaves cfg unchanged.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	ms, err := TickMillisForPreset(preset)
	if err != nil {
		return err
	}
	if cfg.Timing.TimerHz <= 0 {
		return fmt.Errorf("config: cannot apply %q without a timer frequency", preset)
	}
	cfg.Timing.TickQuantum = uint64(ms) * uint64(cfg.Timing.TimerHz) / 1000
	return nil
}
