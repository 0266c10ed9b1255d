// SPDX-License-Identifier: MIT

package editdist

// ManipulationSequence builds the cost table and reconstructs one cost-optimal
// manipulation sequence. rng breaks ties (nil ⇒ DefaultSeed stream).
//
// Complexity: O(N·M) time and memory.
func ManipulationSequence[T comparable](source, target []T, cm *CostModel, rng Rand) ([]Op, error) {
	m, err := Build(source, target, cm)
	if err != nil {
		return nil, err
	}

	return Reconstruct(source, target, m, cm, rng)
}

// Alignment runs the whole pipeline: Build → Reconstruct → Align.
// pad is written where one side has no element (see Padding for strings).
func Alignment[T comparable](source, target []T, cm *CostModel, rng Rand, pad T) (Aligned[T], error) {
	ops, err := ManipulationSequence(source, target, cm, rng)
	if err != nil {
		return Aligned[T]{}, err
	}

	return Align(source, target, ops, pad)
}

// AlignmentFunc is Alignment with a caller-supplied equality function.
func AlignmentFunc[T any](source, target []T, cm *CostModel, rng Rand, pad T, eq EqualFunc[T]) (Aligned[T], error) {
	m, err := BuildFunc(source, target, cm, eq)
	if err != nil {
		return Aligned[T]{}, err
	}
	ops, err := ReconstructFunc(source, target, m, cm, rng, eq)
	if err != nil {
		return Aligned[T]{}, err
	}

	return Align(source, target, ops, pad)
}

// PathCost sums the weight of every op. For a sequence returned by
// ManipulationSequence it equals Distance exactly when the weights are
// dyadic (integers, halves, quarters, ...); otherwise up to float rounding.
// A nil cm means DefaultCostModel().
func PathCost(ops []Op, cm *CostModel) float64 {
	cm = orDefault(cm)
	var total float64
	for _, op := range ops {
		total += cm.Weight(op)
	}

	return total
}

// Counts tallies a manipulation sequence.
type Counts struct {
	Matches       int `json:"matches"`
	Substitutions int `json:"substitutions"`
	Deletions     int `json:"deletions"`
	Insertions    int `json:"insertions"`
}

// Summarize counts each transformation kind in ops. Invalid ops are ignored.
func Summarize(ops []Op) Counts {
	var c Counts
	for _, op := range ops {
		switch op {
		case Match:
			c.Matches++
		case Substitute:
			c.Substitutions++
		case Delete:
			c.Deletions++
		case Insert:
			c.Insertions++
		}
	}

	return c
}

// Edits returns the number of non-match steps.
func (c Counts) Edits() int { return c.Substitutions + c.Deletions + c.Insertions }

// SourceLen returns the number of source elements the sequence consumed.
func (c Counts) SourceLen() int { return c.Matches + c.Substitutions + c.Deletions }

// ErrorRate is (S+D+I)/N with N the source (reference) length, the usual
// word/character error rate. An empty source reports the insertion count.
func (c Counts) ErrorRate() float64 {
	n := c.SourceLen()
	if n == 0 {
		return float64(c.Insertions)
	}

	return float64(c.Edits()) / float64(n)
}
