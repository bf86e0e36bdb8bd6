package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/irq"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

// DoneMsg reports that the session has ended.
type DoneMsg struct {
	Result runner.Result
	Err    error
}

// Model is the Bubble Tea model wrapping one session. It never steps the
// game itself: the session loop runs on its own goroutine and sends frames.
type Model struct {
	latch    *irq.KeyLatch
	stop     func()
	keys     KeyMap
	help     help.Model
	frame    string
	done     bool
	quitting bool
	result   runner.Result
	err      error
}

// NewModel creates a model publishing keys to latch. stop ends the session.
func NewModel(latch *irq.KeyLatch, stop func()) Model {
	return Model{
		latch: latch,
		stop:  stop,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.frame = string(msg)
		return m, nil

	case FlushMsg:
		if !m.latch.Flush() {
			return m, flushCmd()
		}
		return m, nil

	case DoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		// A death waits for a key so the last frame stays readable
		if m.quitting || msg.Result.Quit || msg.Err != nil {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		m.stop()
		return m, nil
	}

	k, ok := ToKey(msg)
	if !ok {
		return m, nil
	}
	if !m.latch.Press(k) {
		return m, flushCmd()
	}
	return m, nil
}

// Result returns the session outcome once DoneMsg has arrived.
func (m Model) Result() (runner.Result, error) {
	return m.result, m.err
}

// View renders the last frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m.frame, m.help.View(m.keys), m.done)
}
