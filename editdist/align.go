// SPDX-License-Identifier: MIT

package editdist

import "fmt"

// Align expands a manipulation sequence into two equal-length sequences.
//
//	MATCH / SUBSTITUTE → (source[s], target[t]); s++, t++
//	DELETE             → (source[s], pad);       s++
//	INSERT             → (pad,       target[t]); t++
//
// The returned Aligned shares no memory with the inputs except ops, which
// is copied as well.
//
// Errors:
//   - ErrPathMismatch if ops runs past either input or leaves elements unconsumed.
//   - ErrUnknownOp    if ops holds an invalid value.
//
// Complexity: O(len(ops)).
func Align[T any](source, target []T, ops []Op, pad T) (Aligned[T], error) {
	if err := ValidatePath(len(source), len(target), ops); err != nil {
		return Aligned[T]{}, editErrorf("Align", err)
	}

	out := Aligned[T]{
		Source: make([]T, len(ops)),
		Target: make([]T, len(ops)),
		Ops:    append([]Op(nil), ops...),
	}
	var s, t int
	for k, op := range ops {
		switch op {
		case Match, Substitute:
			out.Source[k], out.Target[k] = source[s], target[t]
			s, t = s+1, t+1
		case Delete:
			out.Source[k], out.Target[k] = source[s], pad
			s++
		case Insert:
			out.Source[k], out.Target[k] = pad, target[t]
			t++
		}
	}

	return out, nil
}

// ValidatePath checks that ops is a well-formed manipulation sequence for a
// source of length n and a target of length m: every op is valid and the
// sequence consumes exactly n source and m target elements.
//
// Element equality (MATCH on unequal elements) is not checked here.
func ValidatePath(n, m int, ops []Op) error {
	var s, t int
	for k, op := range ops {
		switch op {
		case Match, Substitute:
			s, t = s+1, t+1
		case Delete:
			s++
		case Insert:
			t++
		default:
			return fmt.Errorf("ops[%d]=%d: %w", k, uint8(op), ErrUnknownOp)
		}
		if s > n || t > m {
			return fmt.Errorf("ops[%d] %s overruns (%d,%d): %w", k, op, n, m, ErrPathMismatch)
		}
	}
	if s != n || t != m {
		return fmt.Errorf("consumed (%d,%d) of (%d,%d): %w", s, t, n, m, ErrPathMismatch)
	}

	return nil
}
