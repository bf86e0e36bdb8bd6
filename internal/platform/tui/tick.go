// Package tui provides the Bubble Tea frontend. Key messages are the keyboard
// interrupt: they are decoded and published to the session's key latch.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// flushRetry is how long to wait before republishing a key the game loop
// was holding.
const flushRetry = time.Millisecond

// FlushMsg asks the model to retry publishing a pending key.
type FlushMsg time.Time

// flushCmd returns a Bubble Tea command that sends a FlushMsg after flushRetry.
func flushCmd() tea.Cmd {
	return tea.Tick(flushRetry, func(t time.Time) tea.Msg {
		return FlushMsg(t)
	})
}
