package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestWriteStyledPlainProfile(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	cells := []core.Cell{
		{Rune: '.', Attr: 8},
		{Rune: '.', Attr: 8},
		{Rune: '@', Attr: 10},
		{Rune: '&', Attr: 14},
	}
	var sb strings.Builder
	WriteStyled(&sb, cells)

	if got := sb.String(); got != "..@&" {
		t.Errorf("WriteStyled() = %q, expected %q", got, "..@&")
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    core.Color
		ansi uint8
	}{
		{core.Black, 0},
		{core.Blue, 4},
		{core.Red, 1},
		{core.Brown, 3},
		{core.LightGreen, 10},
		{core.LightRed, 9},
		{core.Yellow, 11},
		{core.White, 15},
	}
	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.ansi {
			t.Errorf("Color(%d).ANSI() = %d, expected %d", tc.c, got, tc.ansi)
		}
	}
}
