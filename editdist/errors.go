// SPDX-License-Identifier: MIT
// Package editdist: sentinel error set.
//
// Every exported operation returns one of these sentinels, possibly wrapped
// with call-site context via fmt.Errorf("<Op>: %w", ErrX). Callers branch with
// errors.Is. No operation panics on user-triggered conditions.

package editdist

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned by NewCostModel when a transformation weight or a
	// selection weight is negative, NaN or ±Inf.
	ErrConfiguration = errors.New("editdist: invalid cost model configuration")

	// ErrDegenerateChoice signals that several cost-optimal moves tie at a
	// reconstruction step but all of their selection weights are zero.
	ErrDegenerateChoice = errors.New("editdist: all tied candidates have zero selection weight")

	// ErrElementComparison signals that two elements could not be compared for
	// equality (== panicked, or an element is not equal to itself, e.g. NaN).
	ErrElementComparison = errors.New("editdist: elements cannot be compared for equality")

	// ErrInternalConsistency signals that a reconstruction step found no legal
	// move. It never happens for a matrix produced by Build with the same inputs.
	ErrInternalConsistency = errors.New("editdist: matrix and path are inconsistent")

	// ErrDimensionMismatch indicates that a matrix does not have the
	// (len(source)+1)×(len(target)+1) shape the inputs require.
	ErrDimensionMismatch = errors.New("editdist: dimension mismatch")

	// ErrPathMismatch indicates that a manipulation sequence does not consume
	// exactly len(source) source elements and len(target) target elements.
	ErrPathMismatch = errors.New("editdist: manipulation sequence does not fit the inputs")

	// ErrUnknownOp indicates an Op value or text form outside the four transformations.
	ErrUnknownOp = errors.New("editdist: unknown transformation")

	// ErrOutOfRange indicates a matrix index outside valid bounds.
	ErrOutOfRange = errors.New("editdist: index out of range")
)

// editErrorf wraps err with the public operation name.
func editErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
