// SPDX-License-Identifier: MIT

package editdist

import "fmt"

// Reconstruct walks m from (len(source), len(target)) back to (0,0) and returns
// one cost-optimal manipulation sequence in source-to-target order.
//
// At every position (x,y) the legal candidates are the moves whose accounting
// reproduces the stored cell exactly:
//
//	MATCH      x>0, y>0, source[x-1]==target[y-1], D[x][y] == D[x-1][y-1]
//	SUBSTITUTE x>0, y>0, not MATCH,                D[x][y] == D[x-1][y-1] + sub
//	DELETE     x>0,                                D[x][y] == D[x-1][y]   + del
//	INSERT     y>0,                                D[x][y] == D[x][y-1]   + ins
//
// A single candidate is taken as is. Ties are broken by sampling with the
// candidates' selection weights normalized over the tied subset only; rng
// supplies the draw (nil ⇒ NewRand(DefaultSeed)). A nil cm means DefaultCostModel().
//
// Errors:
//   - ErrDimensionMismatch   if m is not (N+1)×(M+1).
//   - ErrDegenerateChoice    if tied candidates all have selection weight 0.
//   - ErrInternalConsistency if a position has no legal candidate.
//   - ErrElementComparison   if elements cannot be compared.
//
// Complexity: O(N+M) steps; one rng draw per tied step.
func Reconstruct[T comparable](source, target []T, m *Matrix, cm *CostModel, rng Rand) ([]Op, error) {
	if err := checkSelfEqual(source, target); err != nil {
		return nil, editErrorf("Reconstruct", err)
	}

	return ReconstructFunc(source, target, m, cm, rng, equalComparable[T])
}

// ReconstructFunc is Reconstruct with a caller-supplied equality function.
func ReconstructFunc[T any](source, target []T, m *Matrix, cm *CostModel, rng Rand, eq EqualFunc[T]) (ops []Op, err error) {
	if m == nil || m.r != len(source)+1 || m.c != len(target)+1 {
		return nil, editErrorf("ReconstructFunc", ErrDimensionMismatch)
	}
	if rng == nil {
		rng = NewRand(0)
	}
	cmp := &comparer[T]{eq: eq}
	defer cmp.recover("ReconstructFunc", &err)

	return reconstruct(source, target, m, orDefault(cm), rng, cmp)
}

// candidateSet is the fixed-size buffer of legal moves at one step.
type candidateSet struct {
	ops [numOps]Op
	n   int
}

func (s *candidateSet) add(o Op) {
	s.ops[s.n] = o
	s.n++
}

// reconstruct is the backward walk.
func reconstruct[T any](source, target []T, m *Matrix, cm *CostModel, rng Rand, cmp *comparer[T]) ([]Op, error) {
	var (
		x, y = len(source), len(target)
		del  = cm.weight[Delete]
		ins  = cm.weight[Insert]
		sub  = cm.weight[Substitute]
		ops  = make([]Op, 0, max(x, y))
		cell float64
		cand candidateSet
	)

	for x > 0 || y > 0 {
		cell = m.at(x, y)
		cand.n = 0

		// Stage 1: collect candidates.
		if x > 0 && y > 0 {
			diag := m.at(x-1, y-1)
			if cmp.equal(source[x-1], target[y-1]) && cell == diag {
				cand.add(Match)
			} else if cell == diag+sub {
				cand.add(Substitute)
			}
		}
		if x > 0 && cell == m.at(x-1, y)+del {
			cand.add(Delete)
		}
		if y > 0 && cell == m.at(x, y-1)+ins {
			cand.add(Insert)
		}

		// Stage 2: choose.
		op, err := choose(&cand, cm, rng)
		if err != nil {
			return nil, fmt.Errorf("reconstruct at (%d,%d): %w", x, y, err)
		}

		// Stage 3: step.
		ops = append(ops, op)
		switch op {
		case Match, Substitute:
			x, y = x-1, y-1
		case Delete:
			x--
		case Insert:
			y--
		}
	}

	// Collected backwards; flip to source-to-target order.
	for l, r := 0, len(ops)-1; l < r; l, r = l+1, r-1 {
		ops[l], ops[r] = ops[r], ops[l]
	}

	return ops, nil
}

// choose samples one candidate proportionally to its selection weight.
func choose(cand *candidateSet, cm *CostModel, rng Rand) (Op, error) {
	switch cand.n {
	case 0:
		return 0, ErrInternalConsistency
	case 1:
		return cand.ops[0], nil
	}

	var total float64
	var k int
	for k = 0; k < cand.n; k++ {
		total += cm.selection[cand.ops[k]]
	}
	if total <= 0 {
		return 0, ErrDegenerateChoice
	}

	r := rng.Float64() * total
	var acc float64
	last := -1
	for k = 0; k < cand.n; k++ {
		w := cm.selection[cand.ops[k]]
		if w <= 0 {
			continue
		}
		acc += w
		last = k
		if r < acc {
			return cand.ops[k], nil
		}
	}

	// Rounding left r ≥ acc; the last weighted candidate owns the upper edge.
	return cand.ops[last], nil
}
