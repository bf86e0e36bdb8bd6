// Package render turns engine state into character-grid frames and forwards
// them line by line to a core.Surface.
package render

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Glyph is a marker character with its display attribute.
type Glyph struct {
	Rune rune
	Attr core.Attr
}

// Theme selects the glyph for each kind of cell.
type Theme struct {
	Background Glyph
	Body       Glyph
	Head       Glyph
	Food       Glyph
	Border     Glyph
	Text       Glyph // Attr used for status lines; Rune unused
}

// DefaultTheme returns the classic markers: '.' ground, '@' body, '&' head,
// '$' food and '-' borders.
func DefaultTheme() Theme {
	return Theme{
		Background: Glyph{'.', core.MakeAttr(core.DarkGray, core.Black)},
		Body:       Glyph{'@', core.MakeAttr(core.LightGreen, core.Black)},
		Head:       Glyph{'&', core.MakeAttr(core.Yellow, core.Black)},
		Food:       Glyph{'$', core.MakeAttr(core.LightRed, core.Black)},
		Border:     Glyph{'-', core.MakeAttr(core.LightGray, core.Black)},
		Text:       Glyph{' ', core.MakeAttr(core.White, core.Black)},
	}
}

// Compose draws body and food onto dst, which must be sized to the grid.
// Grid position (x, y) maps to screen cell (x-1, y-1).
func Compose(dst *core.Screen, theme Theme, body []snake.Position, food snake.Position) {
	dst.Fill(theme.Background.Rune, theme.Background.Attr)

	for i := len(body) - 1; i >= 1; i-- {
		p := body[i]
		dst.Set(int(p.X)-1, int(p.Y)-1, theme.Body.Rune, theme.Body.Attr)
	}
	if len(body) > 0 {
		head := body[0]
		dst.Set(int(head.X)-1, int(head.Y)-1, theme.Head.Rune, theme.Head.Attr)
	}
	dst.Set(int(food.X)-1, int(food.Y)-1, theme.Food.Rune, theme.Food.Attr)
}

// Renderer owns the scratch buffers for one grid size, allocated once.
type Renderer struct {
	theme  Theme
	screen *core.Screen
	border []core.Cell
	text   []core.Cell
}

// New creates a renderer for a width×height grid.
func New(width, height int, theme Theme) *Renderer {
	rule := core.NewScreen(width, 1)
	rule.DrawHLine(0, 0, width, theme.Border.Rune, theme.Border.Attr)
	return &Renderer{
		theme:  theme,
		screen: core.NewScreen(width, height),
		border: rule.Row(0),
		text:   make([]core.Cell, 0, core.Max(width, 32)),
	}
}

// Screen returns the last composed grid.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Present writes the composed grid to s between two border lines.
func (r *Renderer) Present(s core.Surface) error {
	if err := s.WriteLine(r.border); err != nil {
		return err
	}
	for y := range r.screen.Height() {
		if err := s.WriteLine(r.screen.Row(y)); err != nil {
			return err
		}
	}
	return s.WriteLine(r.border)
}

// Frame clears s and writes a full frame: the score line, then the grid.
func (r *Renderer) Frame(s core.Surface, score int, body []snake.Position, food snake.Position) error {
	if err := s.Clear(); err != nil {
		return fmt.Errorf("render: clear: %w", err)
	}
	if err := r.Line(s, "Score: "+strconv.Itoa(score)); err != nil {
		return fmt.Errorf("render: score: %w", err)
	}

	Compose(r.screen, r.theme, body, food)
	if err := r.Present(s); err != nil {
		return fmt.Errorf("render: grid: %w", err)
	}
	return s.Flush()
}

// Line writes one status line in the theme's text attribute.
func (r *Renderer) Line(s core.Surface, text string) error {
	r.text = core.TextLine(r.text, text, r.theme.Text.Attr)
	return s.WriteLine(r.text)
}

// GameOver appends the death message under the last frame.
func (r *Renderer) GameOver(s core.Surface) error {
	if err := r.Line(s, "You Died"); err != nil {
		return fmt.Errorf("render: game over: %w", err)
	}
	return s.Flush()
}
