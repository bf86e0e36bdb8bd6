package core

// Surface is a write-only text surface addressed top to bottom. Lines are
// written in order after a Clear; the surface owns its cursor. Flush marks
// the end of a frame.
type Surface interface {
	Clear() error
	WriteLine(cells []Cell) error
	Flush() error
}
