package stack

import "iter"

// Queue is a first-in-first-out container. The zero value is an empty queue.
type Queue[T any] struct {
	items []T
	head  int
}

// NewQueue returns a queue with items enqueued in order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{items: make([]T, 0, len(items))}
	q.items = append(q.items, items...)
	return q
}

// Enqueue appends v at the tail.
func (q *Queue[T]) Enqueue(v T) {
	q.items = append(q.items, v)
}

// Dequeue removes and returns the head element. ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (v T, ok bool) {
	if q.Len() == 0 {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}

// Peek returns the head element without removing it.
func (q *Queue[T]) Peek() (v T, ok bool) {
	if q.Len() == 0 {
		return v, false
	}
	return q.items[q.head], true
}

func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items) - q.head
}

func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// All yields the elements from head to tail without modifying the queue.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if q == nil {
			return
		}
		for _, v := range q.items[q.head:] {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements from head to tail.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.Len())
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}
