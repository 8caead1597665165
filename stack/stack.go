// Package stack implements a bounded, reallocatable Last-In-First-Out container with a Forth-style manipulation vocabulary.
package stack

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/mo"
)

var (
	// ErrOverflow is returned when pushing onto a stack whose size has reached its capacity.
	ErrOverflow = errors.New("stack overflow")

	// ErrUnderflow is returned when an operation references a depth that is not populated.
	ErrUnderflow = errors.New("stack underflow")
)

// Stack is a bounded LIFO sequence that owns its backing storage.
// Depth arguments count from the top: depth 0 is the top element.
// The zero value is an empty stack with capacity 0.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
	size  int
}

// New allocates a stack able to hold exactly capacity elements.
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("stack: negative capacity %d", capacity))
	}
	return &Stack[T]{items: make([]T, capacity)}
}

// FromSlice builds a stack of the given capacity holding items, bottom first.
func FromSlice[T any](capacity int, items []T) (*Stack[T], error) {
	if len(items) > capacity {
		return nil, fmt.Errorf("%d items exceed capacity %d: %w", len(items), capacity, ErrOverflow)
	}
	s := New[T](capacity)
	s.size = copy(s.items, items)
	return s, nil
}

// Copy returns an independent stack with the same capacity and live elements.
func (s *Stack[T]) Copy() *Stack[T] {
	c := New[T](s.Cap())
	c.size = copy(c.items, s.items[:s.size])
	return c
}

// Assign replaces the receiver's capacity and contents with a copy of other.
func (s *Stack[T]) Assign(other *Stack[T]) {
	if s == other {
		return
	}
	c := other.Copy()
	s.items, s.size = c.items, c.size
}

// Reallocate replaces the backing storage with newCapacity slots.
// The bottom min(Len, newCapacity) elements survive in order; anything above is discarded.
func (s *Stack[T]) Reallocate(newCapacity int) {
	if newCapacity < 0 {
		panic(fmt.Sprintf("stack: negative capacity %d", newCapacity))
	}
	items := make([]T, newCapacity)
	s.size = copy(items, s.items[:s.size])
	s.items = items
}

// Clear empties the stack without touching its storage or capacity.
func (s *Stack[T]) Clear() {
	s.size = 0
}

// Len returns the number of live elements.
func (s *Stack[T]) Len() int {
	return s.size
}

// Cap returns the number of elements the current storage can hold.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// Push places x on top of the stack.
func (s *Stack[T]) Push(x T) error {
	if s.size >= len(s.items) {
		return ErrOverflow
	}
	s.items[s.size] = x
	s.size++
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (x T, err error) {
	if s.size == 0 {
		return x, ErrUnderflow
	}
	s.size--
	return s.items[s.size], nil
}

// Peek returns the top element. It behaves as a Pop immediately followed by a Push of the same value.
func (s *Stack[T]) Peek() (x T, err error) {
	x, err = s.Pop()
	if err != nil {
		return x, err
	}
	return x, s.Push(x)
}

// index maps a depth to its slot, reporting false when the depth is not populated.
func (s *Stack[T]) index(n int) (int, bool) {
	if n < 0 || n >= s.size {
		return 0, false
	}
	return s.size - 1 - n, true
}

// Pick pushes a copy of the element at depth n.
func (s *Stack[T]) Pick(n int) error {
	i, ok := s.index(n)
	if !ok {
		return ErrUnderflow
	}
	return s.Push(s.items[i])
}

// Roll moves the element at depth n to the top.
// The n elements above it shift down one slot and keep their relative order.
func (s *Stack[T]) Roll(n int) error {
	i, ok := s.index(n)
	if !ok {
		return ErrUnderflow
	}
	x := s.items[i]
	copy(s.items[i:s.size-1], s.items[i+1:s.size])
	s.items[s.size-1] = x
	return nil
}

// Top returns the top element without modifying the stack.
func (s *Stack[T]) Top() mo.Option[T] {
	return s.At(0)
}

// At returns the element at depth n without modifying the stack.
func (s *Stack[T]) At(n int) mo.Option[T] {
	i, ok := s.index(n)
	if !ok {
		return mo.None[T]()
	}
	return mo.Some(s.items[i])
}

// Items returns a copy of the live elements, bottom first.
func (s *Stack[T]) Items() []T {
	items := make([]T, s.size)
	copy(items, s.items[:s.size])
	return items
}

// String renders the stack as "<size/capacity>" followed by its elements, bottom first.
func (s *Stack[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%d/%d>", s.size, len(s.items))
	for _, x := range s.items[:s.size] {
		fmt.Fprintf(&b, " %v", x)
	}
	return b.String()
}
