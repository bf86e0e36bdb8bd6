// Package core provides the character-grid primitives shared by the engine
// and the frontends. It has no external dependencies so game logic stays pure
// and testable.
package core

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
