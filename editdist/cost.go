// SPDX-License-Identifier: MIT

// Package editdist: the Cost Model.
//
// A CostModel carries two sets of numbers:
//   - transformation weights: what each step costs (Match is always 0);
//   - selection weights: how tied cost-optimal steps are preferred during
//     reconstruction. They are normalized over the tied candidates only, so
//     they do not need to sum to 1.
//
// A CostModel is immutable after NewCostModel returns and may be shared across
// goroutines.
package editdist

import (
	"fmt"
	"math"
)

// Defaults used by NewCostModel when no option overrides them.
const (
	// DefaultWeight is the unit cost of a deletion, insertion or substitution.
	DefaultWeight = 1.0

	// DefaultSelectionWeight gives every transformation the same tie-break preference.
	DefaultSelectionWeight = 0.25
)

// CostModel holds transformation and tie-break selection weights, indexed by Op.
type CostModel struct {
	weight    [numOps]float64
	selection [numOps]float64
}

// Option configures a CostModel under construction.
// Options never fail on their own; NewCostModel validates the resolved values.
type Option func(*CostModel)

// WithDeletionWeight sets the cost of one deletion.
func WithDeletionWeight(w float64) Option {
	return func(c *CostModel) { c.weight[Delete] = w }
}

// WithInsertionWeight sets the cost of one insertion.
func WithInsertionWeight(w float64) Option {
	return func(c *CostModel) { c.weight[Insert] = w }
}

// WithSubstitutionWeight sets the cost of one substitution.
func WithSubstitutionWeight(w float64) Option {
	return func(c *CostModel) { c.weight[Substitute] = w }
}

// WithWeights sets deletion, insertion and substitution costs at once.
func WithWeights(deletion, insertion, substitution float64) Option {
	return func(c *CostModel) {
		c.weight[Delete] = deletion
		c.weight[Insert] = insertion
		c.weight[Substitute] = substitution
	}
}

// WithSelectionWeight sets the tie-break preference of a single transformation.
// An invalid op is ignored here and reported by NewCostModel.
func WithSelectionWeight(op Op, w float64) Option {
	return func(c *CostModel) {
		if !op.Valid() {
			c.selection[Match] = math.NaN()
			return
		}
		c.selection[op] = w
	}
}

// WithSelectionWeights sets all four tie-break preferences at once.
func WithSelectionWeights(match, substitute, deletion, insertion float64) Option {
	return func(c *CostModel) {
		c.selection = [numOps]float64{match, substitute, deletion, insertion}
	}
}

// NewCostModel resolves opts over the defaults (unit costs, equal preferences)
// and validates the result.
//
// Errors:
//   - ErrConfiguration if any weight is negative, NaN or ±Inf.
//
// Complexity: O(1).
func NewCostModel(opts ...Option) (*CostModel, error) {
	c := &CostModel{
		weight: [numOps]float64{0, DefaultWeight, DefaultWeight, DefaultWeight},
		selection: [numOps]float64{
			DefaultSelectionWeight, DefaultSelectionWeight,
			DefaultSelectionWeight, DefaultSelectionWeight,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	// Match never costs anything, whatever an option wrote.
	c.weight[Match] = 0

	var op Op
	for op = 0; op < numOps; op++ {
		if err := checkWeight(c.weight[op]); err != nil {
			return nil, fmt.Errorf("NewCostModel: %s weight %v: %w", op, c.weight[op], err)
		}
		if err := checkWeight(c.selection[op]); err != nil {
			return nil, fmt.Errorf("NewCostModel: %s selection weight %v: %w", op, c.selection[op], err)
		}
	}

	return c, nil
}

// DefaultCostModel returns the unit-cost model with equal tie-break preferences.
func DefaultCostModel() *CostModel {
	c, _ := NewCostModel()

	return c
}

// checkWeight enforces the finite, non-negative policy.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return ErrConfiguration
	}

	return nil
}

// Weight returns the cost of op. Match is always 0; an invalid op yields +Inf.
func (c *CostModel) Weight(op Op) float64 {
	if !op.Valid() {
		return math.Inf(1)
	}

	return c.weight[op]
}

// SelectionWeight returns the tie-break preference of op (0 for an invalid op).
func (c *CostModel) SelectionWeight(op Op) float64 {
	if !op.Valid() {
		return 0
	}

	return c.selection[op]
}

// DeletionWeight is shorthand for Weight(Delete).
func (c *CostModel) DeletionWeight() float64 { return c.weight[Delete] }

// InsertionWeight is shorthand for Weight(Insert).
func (c *CostModel) InsertionWeight() float64 { return c.weight[Insert] }

// SubstitutionWeight is shorthand for Weight(Substitute).
func (c *CostModel) SubstitutionWeight() float64 { return c.weight[Substitute] }

// String renders the model for logs.
func (c *CostModel) String() string {
	return fmt.Sprintf("CostModel{del=%g ins=%g sub=%g select[mat=%g sub=%g del=%g ins=%g]}",
		c.weight[Delete], c.weight[Insert], c.weight[Substitute],
		c.selection[Match], c.selection[Substitute], c.selection[Delete], c.selection[Insert])
}

// orDefault lets public entry points accept a nil model.
func orDefault(c *CostModel) *CostModel {
	if c == nil {
		return DefaultCostModel()
	}

	return c
}
