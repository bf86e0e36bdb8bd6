package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings shown in the help line.
// Steering keys are not matched here: every key is forwarded to the game as
// a raw event and the engine decides what it means.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Quit  key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Left, k.Down, k.Right, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("w", "up"),
			key.WithHelp("w/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("s/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ToKey decodes a Bubble Tea key message into the game's key event.
// Printable characters pass through as-is; keys the game has no code for
// are dropped.
func ToKey(msg tea.KeyMsg) (core.Key, bool) {
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.Key{}, false
		}
		return core.Unicode(msg.Runes[0]), true
	case tea.KeySpace:
		return core.Unicode(' '), true
	case tea.KeyUp:
		return core.Raw(core.CodeArrowUp), true
	case tea.KeyDown:
		return core.Raw(core.CodeArrowDown), true
	case tea.KeyLeft:
		return core.Raw(core.CodeArrowLeft), true
	case tea.KeyRight:
		return core.Raw(core.CodeArrowRight), true
	case tea.KeyEsc:
		return core.Raw(core.CodeEscape), true
	case tea.KeyEnter:
		return core.Raw(core.CodeEnter), true
	}
	return core.Key{}, false
}
