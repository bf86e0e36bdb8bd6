package main

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestParseScript(t *testing.T) {
	script, err := parseScript("3:w, 7:D,9:up")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}

	want := map[uint64]core.Key{
		3: core.Unicode('w'),
		7: core.Unicode('D'),
		9: core.Raw(core.CodeArrowUp),
	}
	if len(script) != len(want) {
		t.Fatalf("script has %d entries, expected %d", len(script), len(want))
	}
	for tick, k := range want {
		if script[tick] != k {
			t.Errorf("tick %d: key %v, expected %v", tick, script[tick], k)
		}
	}
}

func TestParseScriptEmpty(t *testing.T) {
	script, err := parseScript("  ")
	if err != nil || len(script) != 0 {
		t.Errorf("parseScript(blank) = %v, %v", script, err)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"3w",
		"x:w",
		"0:w",
		"3:wasd",
		"3:w,3:d",
	}
	for _, timeline := range tests {
		if _, err := parseScript(timeline); err == nil {
			t.Errorf("parseScript(%q) should fail", timeline)
		}
	}
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := map[string]string{
		"~/.snake/snake.log": "/home/tester/.snake/snake.log",
		"/tmp/x.log":         "/tmp/x.log",
		"rel.log":            "rel.log",
	}
	for in, want := range tests {
		got, err := expandHome(in)
		if err != nil || got != want {
			t.Errorf("expandHome(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}
}
