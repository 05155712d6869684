package tour

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// ValidateOrder checks that order holds distinct indices in [0, n).
//
// Complexity: O(len(order)) time, O(n) bits.
func ValidateOrder(order []int, n int) error {
	if len(order) > n {
		return fmt.Errorf("%w: %d entries for %d points", ErrInvalidOrder, len(order), n)
	}
	seen := bitset.New(uint(n))
	for k, v := range order {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: entry %d = %d out of range", ErrInvalidOrder, k, v)
		}
		if seen.Test(uint(v)) {
			return fmt.Errorf("%w: entry %d repeats %d", ErrInvalidOrder, k, v)
		}
		seen.Set(uint(v))
	}

	return nil
}
