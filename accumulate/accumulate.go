// Package accumulate computes running totals over bounded integer ranges.
package accumulate

import (
	"errors"
	"fmt"
)

// ErrNegativeBound is returned when a running total is requested for a
// negative bound.
var ErrNegativeBound = errors.New("negative bound")

// RunningTotal adds each integer from 1 up to and including n to an initial
// value of 1. A bound of 0 leaves the initial value untouched; a negative
// bound is rejected rather than silently treated as an empty range.
func RunningTotal(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("running total of %d: %w", n, ErrNegativeBound)
	}

	total := 1
	for i := 1; i <= n; i++ {
		total += i
	}

	return total, nil
}
