package encode

import (
	"fmt"

	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

// xVar returns the internal index of x_v (0-based, values are 1-based).
func xVar(v int) int { return v - 1 }

// yVar returns the internal index of y_v given family size n.
func yVar(n, v int) int { return n + v - 1 }

// VariableNames returns the 2n labels x_1..x_n, y_1..y_n in index order.
func VariableNames(n int) []string {
	names := make([]string, 2*n)
	for i := 0; i < n; i++ {
		names[i] = fmt.Sprintf("x_%d", i+1)
		names[n+i] = fmt.Sprintf("y_%d", i+1)
	}
	return names
}

// Encode converts the permutation pair and objective expression into a
// complete LP document: monotonicity rows first, then spacing, then
// combined, with bounds [0, +inf) and an empty equality system.
//
// Any validation failure (invalid permutation, length mismatch, objective
// index out of range) aborts the encoding; no partial document is returned.
func Encode(p1, p2 perm.Permutation, objective string) (*lp.Document, error) {
	if err := p1.Validate(); err != nil {
		return nil, fmt.Errorf("first permutation: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return nil, fmt.Errorf("second permutation: %w", err)
	}
	if err := perm.SameLength(p1, p2); err != nil {
		return nil, err
	}

	n := len(p1)
	obj, err := ParseObjective(objective, n)
	if err != nil {
		return nil, err
	}

	q1, q2 := p1.Inverse(), p2.Inverse()

	sys := lp.NewSystem(2 * n)
	appendMonotonicity(sys, p1, p2)
	appendSpacing(sys, p1, p2, q1, q2)
	appendCombined(sys, p1, p2, q1, q2)

	bounds := make([]lp.Bound, 2*n)
	for i := range bounds {
		bounds[i] = lp.NonNegative()
	}

	return &lp.Document{
		Objective:     obj,
		Inequalities:  sys.Rows(),
		InequalityRHS: sys.RHS(),
		Equalities:    [][]float64{},
		EqualityRHS:   []float64{},
		Bounds:        bounds,
		VariableNames: VariableNames(n),
	}, nil
}
