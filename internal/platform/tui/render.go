package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).MarginTop(1)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7")).MarginTop(1)
)

// renderView stacks the game frame above the help or exit hint.
func renderView(frame, helpLine string, done bool) string {
	var sb strings.Builder
	sb.WriteString(frame)
	sb.WriteByte('\n')
	if done {
		sb.WriteString(hintStyle.Render("press any key to exit"))
	} else {
		sb.WriteString(helpStyle.Render(helpLine))
	}
	return sb.String()
}
