// File: internal/stack/stack.go
// Brief: Internal stack package implementation for 'stack'.

// Package stack holds the slice-backed LIFO and FIFO containers the stack
// operations work on.
package stack

import "iter"

// Stack is a last-in-first-out container. The zero value is an empty stack.
type Stack[T any] struct {
	items []T
}

// New returns a stack with items pushed in order, so the last item is the top.
func New[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	s.items = append(s.items, items...)
	return s
}

// FromTop returns a stack whose first item is the top.
func FromTop[T any](items ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(items))}
	for i := len(items) - 1; i >= 0; i-- {
		s.items = append(s.items, items[i])
	}
	return s
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	v = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return v, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return v, false
	}
	return s.items[n-1], true
}

func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// All yields the elements from top to bottom without modifying the stack.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s == nil {
			return
		}
		for i := len(s.items) - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements from top to bottom.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}

// PushOrder returns a copy of the elements from bottom to top, the order they were pushed in.
func (s *Stack[T]) PushOrder() []T {
	if s == nil {
		return []T{}
	}
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
