package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/runner"
)

var namedKeys = map[string]core.Key{
	"up":    core.Raw(core.CodeArrowUp),
	"down":  core.Raw(core.CodeArrowDown),
	"left":  core.Raw(core.CodeArrowLeft),
	"right": core.Raw(core.CodeArrowRight),
	"esc":   core.Raw(core.CodeEscape),
	"enter": core.Raw(core.CodeEnter),
}

// parseScript parses a key timeline like "3:w,7:d,9:up".
func parseScript(timeline string) (runner.Script, error) {
	script := runner.Script{}
	if strings.TrimSpace(timeline) == "" {
		return script, nil
	}

	for _, entry := range strings.Split(timeline, ",") {
		tickStr, keyStr, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			return nil, fmt.Errorf("key entry %q: want <tick>:<key>", entry)
		}
		tick, err := strconv.ParseUint(tickStr, 10, 64)
		if err != nil || tick == 0 {
			return nil, fmt.Errorf("key entry %q: tick must be a positive integer", entry)
		}
		k, err := parseKey(keyStr)
		if err != nil {
			return nil, fmt.Errorf("key entry %q: %w", entry, err)
		}
		if _, dup := script[tick]; dup {
			return nil, fmt.Errorf("key entry %q: tick %d already has a key", entry, tick)
		}
		script[tick] = k
	}
	return script, nil
}

func parseKey(s string) (core.Key, error) {
	if k, ok := namedKeys[strings.ToLower(s)]; ok {
		return k, nil
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return core.Unicode(r), nil
	}
	return core.Key{}, fmt.Errorf("unknown key %q", s)
}
