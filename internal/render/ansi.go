package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// attrStyles caches one lipgloss style per attribute byte.
var attrStyles = func() [256]lipgloss.Style {
	var styles [256]lipgloss.Style
	for i := range styles {
		a := core.Attr(i)
		styles[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(strconv.Itoa(int(a.Foreground().ANSI())))).
			Background(lipgloss.Color(strconv.Itoa(int(a.Background().ANSI()))))
	}
	return styles
}()

// WriteStyled appends cells to sb as styled text.
// Groups adjacent cells with the same attribute to minimize ANSI escape sequences.
func WriteStyled(sb *strings.Builder, cells []core.Cell) {
	var run strings.Builder
	x := 0
	for x < len(cells) {
		attr := cells[x].Attr

		run.Reset()
		for x < len(cells) && cells[x].Attr == attr {
			run.WriteRune(cells[x].Rune)
			x++
		}
		sb.WriteString(attrStyles[attr].Render(run.String()))
	}
}
