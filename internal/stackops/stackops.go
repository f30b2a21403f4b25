// File: internal/stackops/stackops.go
// Brief: Internal stackops package implementation for 'stackops'.

// Package stackops implements the conversions and queries the stackops CLI
// exposes over character and integer stacks: queue conversion, reversal,
// positional sums and loading digits out of text files.
package stackops

import (
	"github.com/example/stackops/internal/stack"
	"github.com/pkg/errors"
)

// Element constrains the operations to the character and integer stacks they are defined for.
type Element interface {
	rune | int
}

// InvalidRangeSentinel is what SumRangeOrSentinel returns for a rejected range.
const InvalidRangeSentinel = -1

// ErrInvalidRange is returned by SumRange when the requested positions do not fit the stack.
var ErrInvalidRange = errors.New("invalid sum range")

// ToQueue returns a queue holding the elements of s in top-to-bottom order.
// The source stack is only iterated, never drained.
func ToQueue[T Element](s *stack.Stack[T]) *stack.Queue[T] {
	q := stack.NewQueue[T]()
	for v := range s.All() {
		q.Enqueue(v)
	}
	return q
}

// ReverseOrder moves every element of s onto a new stack, inverting the pop
// order. s is left empty: ownership of the elements passes to the result.
func ReverseOrder[T Element](s *stack.Stack[T]) *stack.Stack[T] {
	reversed := stack.New[T]()
	for {
		v, ok := s.Pop()
		if !ok {
			return reversed
		}
		reversed.Push(v)
	}
}

// SumRange sums elements of s counted from the top. The range is accepted
// only when 0 <= start < end < s.Len(). Within an accepted range the first
// start-1 elements are skipped (none when start is 0) and the following
// end-start elements are summed, so SumRange(s, 1, 3) adds the top two.
func SumRange(s *stack.Stack[int], start, end int) (int, error) {
	size := s.Len()
	if start >= end || start < 0 || end >= size {
		return 0, errors.Wrapf(ErrInvalidRange, "start=%d end=%d size=%d", start, end, size)
	}
	skip := max(start-1, 0)
	limit := end - start
	sum := 0
	pos := 0
	for v := range s.All() {
		if pos >= skip+limit {
			break
		}
		if pos >= skip {
			sum += v
		}
		pos++
	}
	return sum, nil
}

// SumRangeOrSentinel is SumRange with InvalidRangeSentinel in place of the error.
// A real sum of -1 is indistinguishable from a rejected range.
func SumRangeOrSentinel(s *stack.Stack[int], start, end int) int {
	sum, err := SumRange(s, start, end)
	if err != nil {
		return InvalidRangeSentinel
	}
	return sum
}

// DigitValues converts a stack of digit characters into their integer
// values, keeping the order. Non-digit characters are skipped.
func DigitValues(s *stack.Stack[rune]) *stack.Stack[int] {
	out := stack.New[int]()
	for _, r := range s.PushOrder() {
		if isDigit(r) {
			out.Push(int(r - '0'))
		}
	}
	return out
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
