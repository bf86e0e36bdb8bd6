// Package registry provides a global registry of frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/runner"
)

// Frontend owns a text surface and a keyboard producer and plays one
// session on them.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g. "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Fullscreen reports whether the frontend takes over the terminal.
	// Logs must then go to a file instead of stderr.
	Fullscreen() bool

	// Run plays s until it ends. It returns when the game is over and the
	// frontend has released the terminal.
	Run(ctx context.Context, s *runner.Session) (runner.Result, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID         string
	Title      string
	Fullscreen bool
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]FrontendInfo)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	fe := f()
	infos[id] = FrontendInfo{ID: id, Title: fe.Title(), Fullscreen: fe.Fullscreen()}
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
