package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/memory"
)

func TestComposeMarkers(t *testing.T) {
	theme := DefaultTheme()
	dst := core.NewScreen(6, 3)
	body := []snake.Position{{X: 3, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 2}}

	Compose(dst, theme, body, snake.Position{X: 6, Y: 3})

	expected := "......\n@@&...\n.....$"
	if dst.String() != expected {
		t.Errorf("Compose() =\n%s\nexpected\n%s", dst.String(), expected)
	}
	if dst.Row(1)[2].Attr != theme.Head.Attr {
		t.Error("head cell should carry the head attribute")
	}
	if dst.Row(1)[0].Attr != theme.Body.Attr {
		t.Error("body cell should carry the body attribute")
	}
	if dst.Row(2)[5].Attr != theme.Food.Attr {
		t.Error("food cell should carry the food attribute")
	}
}

func TestComposeIsPure(t *testing.T) {
	theme := DefaultTheme()
	dst := core.NewScreen(4, 2)
	food := snake.Position{X: 1, Y: 1}

	Compose(dst, theme, []snake.Position{{X: 4, Y: 2}, {X: 3, Y: 2}}, food)
	Compose(dst, theme, []snake.Position{{X: 2, Y: 1}}, food)

	// Nothing from the first frame survives
	if dst.String() != "$&..\n...." {
		t.Errorf("second Compose() = %q", dst.String())
	}
}

func TestFrameLayout(t *testing.T) {
	r := New(5, 2, DefaultTheme())
	s := memory.NewSurface()
	body := []snake.Position{{X: 2, Y: 1}, {X: 1, Y: 1}}

	if err := r.Frame(s, 3, body, snake.Position{X: 4, Y: 2}); err != nil {
		t.Fatalf("Frame() failed: %v", err)
	}

	expected := []string{
		"Score: 3",
		"-----",
		"@&...",
		"...$.",
		"-----",
	}
	if got := s.Lines(); strings.Join(got, "\n") != strings.Join(expected, "\n") {
		t.Errorf("Frame() lines =\n%s\nexpected\n%s", strings.Join(got, "\n"), strings.Join(expected, "\n"))
	}
	if s.Clears() != 1 || s.Flushes() != 1 {
		t.Errorf("clears=%d flushes=%d, expected 1 each", s.Clears(), s.Flushes())
	}

	if err := r.GameOver(s); err != nil {
		t.Fatalf("GameOver() failed: %v", err)
	}
	lines := s.Lines()
	if lines[len(lines)-1] != "You Died" {
		t.Errorf("last line = %q, expected \"You Died\"", lines[len(lines)-1])
	}
}

func TestBorderUsesThemeGlyph(t *testing.T) {
	theme := DefaultTheme()
	theme.Border = Glyph{Rune: '=', Attr: core.MakeAttr(core.LightCyan, core.Blue)}
	r := New(4, 1, theme)
	s := memory.NewSurface()

	if err := r.Present(s); err != nil {
		t.Fatalf("Present() failed: %v", err)
	}

	lines := s.Lines()
	if len(lines) != 3 || lines[0] != "====" || lines[2] != "====" {
		t.Fatalf("Present() lines = %q, expected grid between \"====\" borders", lines)
	}
	for i, c := range s.Line(0) {
		if c.Attr != theme.Border.Attr {
			t.Errorf("border cell %d attr = %#x, expected %#x", i, uint8(c.Attr), uint8(theme.Border.Attr))
		}
	}
}

type failingSurface struct {
	memory.Surface
}

var errBroken = errors.New("broken surface")

func (f *failingSurface) WriteLine([]core.Cell) error {
	return errBroken
}

func TestFramePropagatesSurfaceErrors(t *testing.T) {
	r := New(3, 1, DefaultTheme())

	err := r.Frame(&failingSurface{}, 0, nil, snake.Position{X: 1, Y: 1})
	if !errors.Is(err, errBroken) {
		t.Errorf("Frame() = %v, expected wrapped surface error", err)
	}
}
