// Package config provides YAML-based configuration loading and difficulty
// presets for the snake game.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/render"
)

// Pacer names accepted in timing.pacer.
const (
	PacerPoll  = "poll"
	PacerSleep = "sleep"
)

// SnakeConfig contains all configuration for a game session.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Capacity CapacityConfig `yaml:"capacity"`
	Timing   TimingConfig   `yaml:"timing"`
	Seed     uint64         `yaml:"seed"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// GridConfig defines the board.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	StartLength int `yaml:"start_length"`
}

// CapacityConfig defines the static container budget.
type CapacityConfig struct {
	Body       int `yaml:"body"` // 0 = width * height
	Food       int `yaml:"food"`
	Input      int `yaml:"input"`
	InputDepth int `yaml:"input_depth"`
}

// TimingConfig defines the timer producer and tick pacing.
type TimingConfig struct {
	TimerHz     int    `yaml:"timer_hz"`
	TickQuantum uint64 `yaml:"tick_quantum"` // Timer ticks per game tick
	Pacer       string `yaml:"pacer"`
}

// ThemeConfig defines the glyph of each cell kind.
type ThemeConfig struct {
	Background GlyphConfig `yaml:"background"`
	Body       GlyphConfig `yaml:"body"`
	Head       GlyphConfig `yaml:"head"`
	Food       GlyphConfig `yaml:"food"`
	Border     GlyphConfig `yaml:"border"`
	Text       GlyphConfig `yaml:"text"`
}

// GlyphConfig is one marker: a single character and an attribute byte.
type GlyphConfig struct {
	Char string `yaml:"char"`
	Attr uint8  `yaml:"attr"`
}

// Engine returns the engine configuration.
func (c SnakeConfig) Engine() snake.Config {
	body := c.Capacity.Body
	if body == 0 {
		body = c.Grid.Width * c.Grid.Height
	}
	return snake.Config{
		Width:         c.Grid.Width,
		Height:        c.Grid.Height,
		StartLength:   c.Grid.StartLength,
		BodyCapacity:  body,
		FoodCapacity:  c.Capacity.Food,
		InputCapacity: c.Capacity.Input,
		InputDepth:    c.Capacity.InputDepth,
		Seed:          c.Seed,
	}
}

// RenderTheme returns the renderer theme. Call Validate first.
func (c SnakeConfig) RenderTheme() render.Theme {
	return render.Theme{
		Background: c.Theme.Background.glyph(),
		Body:       c.Theme.Body.glyph(),
		Head:       c.Theme.Head.glyph(),
		Food:       c.Theme.Food.glyph(),
		Border:     c.Theme.Border.glyph(),
		Text:       c.Theme.Text.glyph(),
	}
}

func (g GlyphConfig) glyph() render.Glyph {
	r, _ := utf8.DecodeRuneInString(g.Char)
	return render.Glyph{Rune: r, Attr: core.Attr(g.Attr)}
}

// Validate checks the whole configuration.
func (c SnakeConfig) Validate() error {
	if err := c.Engine().Validate(); err != nil {
		return err
	}
	if c.Timing.TimerHz <= 0 {
		return fmt.Errorf("config: timing.timer_hz must be positive, got %d", c.Timing.TimerHz)
	}
	if c.Timing.TickQuantum == 0 {
		return fmt.Errorf("config: timing.tick_quantum must be at least 1")
	}
	switch c.Timing.Pacer {
	case PacerPoll, PacerSleep:
	default:
		return fmt.Errorf("config: timing.pacer must be %q or %q, got %q", PacerPoll, PacerSleep, c.Timing.Pacer)
	}

	glyphs := map[string]GlyphConfig{
		"background": c.Theme.Background,
		"body":       c.Theme.Body,
		"head":       c.Theme.Head,
		"food":       c.Theme.Food,
		"border":     c.Theme.Border,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g.Char) != 1 {
			return fmt.Errorf("config: theme.%s.char must be a single character, got %q", name, g.Char)
		}
	}
	return nil
}
