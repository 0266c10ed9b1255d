// SPDX-License-Identifier: MIT

package editdist

import (
	"fmt"
	"strings"
)

// Matrix is the dynamic-programming cost table of an edit-distance run.
// Cell (i,j) holds the minimum weighted cost of turning the first i source
// elements into the first j target elements. Storage is a flat row-major slice.
type Matrix struct {
	r, c int       // len(source)+1, len(target)+1
	data []float64 // length r*c
}

// newMatrix allocates an r×c zero table. r and c are always ≥ 1 here.
func newMatrix(r, c int) *Matrix {
	return &Matrix{r: r, c: c, data: make([]float64, r*c)}
}

// Rows returns len(source)+1.
func (m *Matrix) Rows() int { return m.r }

// Cols returns len(target)+1.
func (m *Matrix) Cols() int { return m.c }

// At returns cell (i,j) or ErrOutOfRange.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("Matrix.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Distance returns the bottom-right cell: the total edit distance.
func (m *Matrix) Distance() float64 { return m.data[len(m.data)-1] }

// at is the unchecked accessor used by the hot loops.
func (m *Matrix) at(i, j int) float64 { return m.data[i*m.c+j] }

// set is the unchecked writer used by the hot loops.
func (m *Matrix) set(i, j int, v float64) { m.data[i*m.c+j] = v }

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.at(i, j))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Build computes the full (len(source)+1)×(len(target)+1) cost table.
//
// Recurrence, for 1 ≤ i ≤ N, 1 ≤ j ≤ M:
//
//	source[i-1] == target[j-1]: D[i][j] = D[i-1][j-1]
//	otherwise:                  D[i][j] = min(D[i-1][j]   + del,
//	                                          D[i][j-1]   + ins,
//	                                          D[i-1][j-1] + sub)
//
// Borders are weight-scaled and accumulated: D[i][0] = D[i-1][0] + del and
// D[0][j] = D[0][j-1] + ins, so every cell is a sum Reconstruct can reproduce
// bit for bit. A nil cm means DefaultCostModel().
//
// Errors:
//   - ErrElementComparison if elements cannot be compared.
//
// Complexity: O(N·M) time and memory.
func Build[T comparable](source, target []T, cm *CostModel) (*Matrix, error) {
	if err := checkSelfEqual(source, target); err != nil {
		return nil, editErrorf("Build", err)
	}

	return BuildFunc(source, target, cm, equalComparable[T])
}

// BuildFunc is Build with a caller-supplied equality function.
func BuildFunc[T any](source, target []T, cm *CostModel, eq EqualFunc[T]) (m *Matrix, err error) {
	cmp := &comparer[T]{eq: eq}
	defer cmp.recover("BuildFunc", &err)

	return build(source, target, orDefault(cm), cmp), nil
}

// build fills the full table.
func build[T any](source, target []T, cm *CostModel, cmp *comparer[T]) *Matrix {
	var (
		n, m = len(source), len(target)
		del  = cm.weight[Delete]
		ins  = cm.weight[Insert]
		sub  = cm.weight[Substitute]
		d    = newMatrix(n+1, m+1)
		i, j int
	)

	// Stage 1: borders (prefix to/from empty).
	for i = 1; i <= n; i++ {
		d.set(i, 0, d.at(i-1, 0)+del)
	}
	for j = 1; j <= m; j++ {
		d.set(0, j, d.at(0, j-1)+ins)
	}

	// Stage 2: interior.
	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if cmp.equal(source[i-1], target[j-1]) {
				d.set(i, j, d.at(i-1, j-1))
				continue
			}
			d.set(i, j, min(
				d.at(i-1, j)+del,
				d.at(i, j-1)+ins,
				d.at(i-1, j-1)+sub,
			))
		}
	}

	return d
}

// Distance returns the minimum weighted cost of turning source into target.
// It equals Build(source, target, cm).Distance() but keeps only two rows over
// the shorter sequence.
//
// Complexity: O(N·M) time, O(min(N,M)) memory.
func Distance[T comparable](source, target []T, cm *CostModel) (float64, error) {
	if err := checkSelfEqual(source, target); err != nil {
		return 0, editErrorf("Distance", err)
	}

	return DistanceFunc(source, target, cm, equalComparable[T])
}

// DistanceFunc is Distance with a caller-supplied equality function.
func DistanceFunc[T any](source, target []T, cm *CostModel, eq EqualFunc[T]) (dist float64, err error) {
	cmp := &comparer[T]{eq: eq}
	defer cmp.recover("DistanceFunc", &err)

	return rollingDistance(source, target, orDefault(cm), cmp), nil
}

// rollingDistance runs the recurrence with the longer sequence on the outer
// loop. Transposing the table swaps the roles of deletion and insertion; the
// cell values are the same sums, so the result matches build exactly.
func rollingDistance[T any](source, target []T, cm *CostModel, cmp *comparer[T]) float64 {
	var (
		outerLen, innerLen = len(source), len(target)
		dOuter             = cm.weight[Delete]
		dInner             = cm.weight[Insert]
		sub                = cm.weight[Substitute]
		eqAt               = func(i, j int) bool { return cmp.equal(source[i], target[j]) }
	)
	if innerLen > outerLen {
		outerLen, innerLen = innerLen, outerLen
		dOuter, dInner = dInner, dOuter
		eqAt = func(i, j int) bool { return cmp.equal(source[j], target[i]) }
	}

	prev := make([]float64, innerLen+1)
	curr := make([]float64, innerLen+1)
	var i, j int
	for j = 1; j <= innerLen; j++ {
		prev[j] = prev[j-1] + dInner
	}
	for i = 1; i <= outerLen; i++ {
		curr[0] = prev[0] + dOuter
		for j = 1; j <= innerLen; j++ {
			if eqAt(i-1, j-1) {
				curr[j] = prev[j-1]
				continue
			}
			curr[j] = min(prev[j]+dOuter, curr[j-1]+dInner, prev[j-1]+sub)
		}
		prev, curr = curr, prev
	}

	return prev[innerLen]
}
