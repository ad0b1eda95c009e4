// Package sequence provides a fixed, ordered, immutable list of integers.
package sequence

import (
	"fmt"
	"strings"
)

// Sequence is an ordered, fixed-length list of integers. It is built once
// and never mutated afterwards; Map returns a new Sequence.
type Sequence struct {
	values []int
}

// Of builds a Sequence from the given values, in order.
func Of(values ...int) Sequence {
	owned := make([]int, len(values))
	copy(owned, values)

	return Sequence{values: owned}
}

// Len returns the number of elements.
func (s Sequence) Len() int {
	return len(s.values)
}

// Values returns a copy of the elements in order.
func (s Sequence) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)

	return out
}

// Map applies fn to every element in order and returns the resulting
// Sequence, which has the same length. The first element error aborts the
// mapping.
func (s Sequence) Map(fn func(int) (int, error)) (Sequence, error) {
	mapped := make([]int, len(s.values))

	for i, v := range s.values {
		result, err := fn(v)
		if err != nil {
			return Sequence{}, fmt.Errorf("map element %d: %w", i, err)
		}
		mapped[i] = result
	}

	return Sequence{values: mapped}, nil
}

// String renders the sequence as a bracketed, comma-separated list,
// e.g. "[1, 2, 3, 4, 5]".
func (s Sequence) String() string {
	parts := make([]string, len(s.values))
	for i, v := range s.values {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
