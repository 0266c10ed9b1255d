// SPDX-License-Identifier: MIT

package editdist

import "fmt"

// equalComparable is the default equality for comparable element types.
func equalComparable[T comparable](a, b T) bool { return a == b }

// comparer wraps an EqualFunc and remembers whether a panic escaped from it,
// so that only comparison failures are turned into ErrElementComparison.
type comparer[T any] struct {
	eq   EqualFunc[T]
	inEq bool
}

// equal calls the wrapped function. A nil function means "never equal".
func (c *comparer[T]) equal(a, b T) bool {
	if c.eq == nil {
		return false
	}
	c.inEq = true
	r := c.eq(a, b)
	c.inEq = false

	return r
}

// recover converts a panic raised inside eq into ErrElementComparison.
// Any other panic is a defect and is re-raised. Must be deferred directly.
func (c *comparer[T]) recover(op string, err *error) {
	if !c.inEq {
		return
	}
	if r := recover(); r != nil {
		*err = fmt.Errorf("%s: %v: %w", op, r, ErrElementComparison)
	}
}

// checkSelfEqual rejects elements for which == panics (interface values that
// hold slices, maps or funcs) or that are not equal to themselves (NaN).
//
// Complexity: O(N+M).
func checkSelfEqual[T comparable](source, target []T) (err error) {
	var idx int
	var side string
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s[%d]: %v: %w", side, idx, r, ErrElementComparison)
		}
	}()

	side = "source"
	for idx = range source {
		if source[idx] != source[idx] {
			return fmt.Errorf("%s[%d] is not equal to itself: %w", side, idx, ErrElementComparison)
		}
	}
	side = "target"
	for idx = range target {
		if target[idx] != target[idx] {
			return fmt.Errorf("%s[%d] is not equal to itself: %w", side, idx, ErrElementComparison)
		}
	}

	return nil
}
