package stack

import (
	"slices"
	"testing"
)

func TestStackPushPop(t *testing.T) {
	s := New[int]()
	if _, ok := s.Pop(); ok {
		t.Fatalf("expected pop on empty stack to report false")
	}
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if got := s.Len(); got != 3 {
		t.Fatalf("expected len 3, got %d", got)
	}
	if top, ok := s.Peek(); !ok || top != 3 {
		t.Fatalf("expected peek 3, got %d (ok=%v)", top, ok)
	}
	var popped []int
	for !s.IsEmpty() {
		v, _ := s.Pop()
		popped = append(popped, v)
	}
	if !slices.Equal(popped, []int{3, 2, 1}) {
		t.Fatalf("unexpected pop order %v", popped)
	}
}

func TestStackConstructorsOrder(t *testing.T) {
	pushed := New('a', 'b', 'c')
	if got := pushed.Values(); !slices.Equal(got, []rune{'c', 'b', 'a'}) {
		t.Fatalf("New: unexpected top-to-bottom order %q", string(got))
	}
	if got := pushed.PushOrder(); !slices.Equal(got, []rune{'a', 'b', 'c'}) {
		t.Fatalf("New: unexpected push order %q", string(got))
	}

	fromTop := FromTop(5, 3, 8, 1)
	if top, _ := fromTop.Peek(); top != 5 {
		t.Fatalf("FromTop: expected top 5, got %d", top)
	}
	if got := fromTop.Values(); !slices.Equal(got, []int{5, 3, 8, 1}) {
		t.Fatalf("FromTop: unexpected order %v", got)
	}
}

func TestStackAllDoesNotMutate(t *testing.T) {
	s := New(1, 2, 3)
	var seen []int
	for v := range s.All() {
		seen = append(seen, v)
		if v == 2 {
			break
		}
	}
	if !slices.Equal(seen, []int{3, 2}) {
		t.Fatalf("unexpected iteration %v", seen)
	}
	if s.Len() != 3 {
		t.Fatalf("iteration should not drain the stack, len=%d", s.Len())
	}
}

func TestNilStackIsEmpty(t *testing.T) {
	var s *Stack[int]
	if !s.IsEmpty() || s.Len() != 0 {
		t.Fatalf("nil stack should report empty")
	}
	if got := s.Values(); len(got) != 0 {
		t.Fatalf("nil stack values should be empty, got %v", got)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue('x')
	q.Enqueue('y')
	q.Enqueue('z')
	if head, ok := q.Peek(); !ok || head != 'x' {
		t.Fatalf("expected head x, got %q", head)
	}
	var out []rune
	for {
		v, ok := q.Dequeue()
		if !ok {
			break
		}
		out = append(out, v)
	}
	if string(out) != "xyz" {
		t.Fatalf("unexpected dequeue order %q", string(out))
	}
	if !q.IsEmpty() {
		t.Fatalf("queue should be empty")
	}
	q.Enqueue('a')
	if got := q.Values(); !slices.Equal(got, []rune{'a'}) {
		t.Fatalf("queue should be reusable after draining, got %q", string(got))
	}
}
