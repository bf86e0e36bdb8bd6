// Package bounded provides fixed-capacity containers backed by caller-owned
// storage. Containers never grow and never reallocate: once the backing slice
// is full, further pushes fail with ErrCapacityExhausted.
package bounded

import (
	"errors"
	"fmt"
	"iter"
)

// Sentinel errors returned by Vec operations.
var (
	ErrCapacityExhausted = errors.New("bounded: capacity exhausted")
	ErrIndexOutOfRange   = errors.New("bounded: index out of range")
	ErrEmpty             = errors.New("bounded: container is empty")
)

// Vec is a growable-within-capacity sequence over a fixed backing slice.
// Only the first Len() slots are ever read.
type Vec[T any] struct {
	buf []T
	n   int
}

// New creates a Vec over storage. The capacity is len(storage) and the
// initial length is zero. The Vec takes ownership of storage.
func New[T any](storage []T) *Vec[T] {
	return &Vec[T]{buf: storage}
}

// Len returns the number of initialized elements.
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the fixed capacity.
func (v *Vec[T]) Cap() int {
	return len(v.buf)
}

// IsEmpty reports whether the Vec holds no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.n == 0
}

// IsFull reports whether another push would fail.
func (v *Vec[T]) IsFull() bool {
	return v.n == len(v.buf)
}

// Push appends x at the back.
func (v *Vec[T]) Push(x T) error {
	if v.IsFull() {
		return fmt.Errorf("%w (cap %d)", ErrCapacityExhausted, len(v.buf))
	}
	v.buf[v.n] = x
	v.n++
	return nil
}

// Insert places x at index i, shifting later elements towards the back.
// i may equal Len(), which is the same as Push.
func (v *Vec[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		return fmt.Errorf("%w: insert at %d, len %d", ErrIndexOutOfRange, i, v.n)
	}
	if v.IsFull() {
		return fmt.Errorf("%w (cap %d)", ErrCapacityExhausted, len(v.buf))
	}
	copy(v.buf[i+1:v.n+1], v.buf[i:v.n])
	v.buf[i] = x
	v.n++
	return nil
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, error) {
	var zero T
	if v.n == 0 {
		return zero, ErrEmpty
	}
	v.n--
	x := v.buf[v.n]
	v.buf[v.n] = zero
	return x, nil
}

// PopFront removes and returns the first element.
func (v *Vec[T]) PopFront() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.Remove(0)
}

// Remove deletes the element at index i and returns it, shifting later
// elements towards the front.
func (v *Vec[T]) Remove(i int) (T, error) {
	var zero T
	if i < 0 || i >= v.n {
		return zero, fmt.Errorf("%w: remove at %d, len %d", ErrIndexOutOfRange, i, v.n)
	}
	x := v.buf[i]
	copy(v.buf[i:v.n-1], v.buf[i+1:v.n])
	v.n--
	v.buf[v.n] = zero
	return x, nil
}

// At returns the element at index i.
func (v *Vec[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, fmt.Errorf("%w: at %d, len %d", ErrIndexOutOfRange, i, v.n)
	}
	return v.buf[i], nil
}

// Set overwrites the element at index i.
func (v *Vec[T]) Set(i int, x T) error {
	if i < 0 || i >= v.n {
		return fmt.Errorf("%w: set %d, len %d", ErrIndexOutOfRange, i, v.n)
	}
	v.buf[i] = x
	return nil
}

// Front returns the first element.
func (v *Vec[T]) Front() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[0], nil
}

// Back returns the last element.
func (v *Vec[T]) Back() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return v.buf[v.n-1], nil
}

// Clear drops all elements. Capacity is unchanged.
func (v *Vec[T]) Clear() {
	var zero T
	for i := range v.n {
		v.buf[i] = zero
	}
	v.n = 0
}

// All iterates over the initialized elements front to back.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range v.n {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// View returns the initialized prefix of the backing storage. The slice
// aliases the Vec and is only valid until the next mutation.
func (v *Vec[T]) View() []T {
	return v.buf[:v.n:v.n]
}

// Index returns the position of the first element equal to x, or -1.
func Index[T comparable](v *Vec[T], x T) int {
	for i := range v.n {
		if v.buf[i] == x {
			return i
		}
	}
	return -1
}

// Contains reports whether x is present in v.
func Contains[T comparable](v *Vec[T], x T) bool {
	return Index(v, x) >= 0
}
