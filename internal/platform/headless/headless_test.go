package headless

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

func TestHeadlessFrontend(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Timing.TickQuantum = 1

	session, err := runner.NewSession(cfg, nil)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	var out bytes.Buffer
	f := &Frontend{Out: &out}
	res, err := f.Run(context.Background(), session)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if res.Ticks != 17 {
		t.Errorf("Ticks = %d, expected 17", res.Ticks)
	}

	text := out.String()
	if !strings.HasPrefix(text, "Score: 1\n") {
		t.Errorf("output should start with the score line:\n%s", text)
	}
	if !strings.HasSuffix(text, "You Died\n") {
		t.Errorf("output should end with the death line:\n%s", text)
	}
	// Head pressed against the right wall on the middle row
	if !strings.Contains(text, "@@@@&") {
		t.Errorf("expected the body at the wall:\n%s", text)
	}
}
