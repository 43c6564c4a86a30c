package stack

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyStack is returned by Pop and Peek when the stack holds no elements.
var ErrEmptyStack = errors.New("stack: empty container")

// Stack is a last-in-first-out sequence of T. The zero value is an empty,
// ready-to-use stack. items[0] is the bottom, items[len-1] the top.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Clear removes all elements. The backing array is kept for reuse, with every
// slot zeroed so no element stays reachable.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// PushAll pushes vs in order, so the last value becomes the new top.
// It is equivalent to calling Push for each value.
func (s *Stack[T]) PushAll(vs ...T) {
	s.items = append(s.items, vs...)
}

// Pop removes and returns the top element.
// Returns the zero value and ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	n := len(s.items)
	if n == 0 {
		return zero, ErrEmptyStack
	}
	top := s.items[n-1]
	s.items[n-1] = zero // drop the reference held by the backing array
	s.items = s.items[:n-1]

	return top, nil
}

// Peek returns the top element without removing it.
// Returns the zero value and ErrEmptyStack if the stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.items[len(s.items)-1], nil
}

// Size returns the number of elements.
func (s *Stack[T]) Size() int {
	return len(s.items)
}

// Duplicate returns a new stack holding the same elements in the same
// bottom-to-top order. Later mutations of either stack do not affect the other.
func (s *Stack[T]) Duplicate() *Stack[T] {
	dup := &Stack[T]{items: make([]T, 0, len(s.items))}
	dup.PushAll(s.items...)

	return dup
}

// Items returns a bottom-to-top copy of the contents.
func (s *Stack[T]) Items() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)

	return out
}

// String renders the size followed by each element, bottom-up and 1-indexed:
//
//	Stack of 2 items, bottom-up:
//	  1: (1,1)
//	  2: (1,2)
func (s *Stack[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stack of %d items, bottom-up:", len(s.items))
	if len(s.items) == 0 {
		b.WriteString("\n  (empty)")

		return b.String()
	}
	for i, item := range s.items {
		fmt.Fprintf(&b, "\n  %d: %v", i+1, item)
	}

	return b.String()
}
