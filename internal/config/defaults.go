package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:       snake.DefaultWidth,
			Height:      snake.DefaultHeight,
			StartLength: snake.DefaultStartLength,
		},
		Capacity: CapacityConfig{
			Body:       snake.DefaultWidth * snake.DefaultHeight,
			Food:       snake.DefaultFoodCapacity,
			Input:      snake.DefaultInputCapacity,
			InputDepth: snake.DefaultInputDepth,
		},
		Timing: TimingConfig{
			TimerHz:     1000,
			TickQuantum: 150,
			Pacer:       PacerPoll,
		},
		Seed: snake.DefaultSeed,
		Theme: ThemeConfig{
			Background: GlyphConfig{Char: ".", Attr: 8},
			Body:       GlyphConfig{Char: "@", Attr: 10},
			Head:       GlyphConfig{Char: "&", Attr: 14},
			Food:       GlyphConfig{Char: "$", Attr: 12},
			Border:     GlyphConfig{Char: "-", Attr: 7},
			Text:       GlyphConfig{Char: " ", Attr: 15},
		},
	}
}
