package solve

import (
	"math"
	"testing"

	"github.com/wjlenhart/minLPsolver/pkg/encode"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

func assignmentDoc() *lp.Document {
	// min x_1 + x_2  s.t.  x_1 >= 1, x_2 >= 2. Optimum (1, 2), value 3.
	return &lp.Document{
		Objective:     []float64{1, 1},
		Inequalities:  [][]float64{{-1, 0}, {0, -1}},
		InequalityRHS: []float64{-1, -2},
		Equalities:    [][]float64{},
		EqualityRHS:   []float64{},
		Bounds:        []lp.Bound{lp.NonNegative(), lp.NonNegative()},
		VariableNames: []string{"x_1", "x_2"},
	}
}

func TestMinimizeOptimal(t *testing.T) {
	result, err := Minimize(assignmentDoc())
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if !result.Success || result.Status != StatusOptimal {
		t.Fatalf("success/status = %v/%d: %s", result.Success, result.Status, result.Message)
	}
	if result.ObjectiveValue == nil || math.Abs(*result.ObjectiveValue-3) > 1e-6 {
		t.Errorf("objective = %v, want 3", result.ObjectiveValue)
	}
	if math.Abs(result.VariableValues["x_1"]-1) > 1e-6 || math.Abs(result.VariableValues["x_2"]-2) > 1e-6 {
		t.Errorf("solution = %v, want x_1=1 x_2=2", result.VariableValues)
	}
}

func TestMinimizeInfeasible(t *testing.T) {
	// x_1 <= -1 contradicts the non-negativity bound.
	doc := &lp.Document{
		Objective:     []float64{1},
		Inequalities:  [][]float64{{1}},
		InequalityRHS: []float64{-1},
		Equalities:    [][]float64{},
		EqualityRHS:   []float64{},
		Bounds:        []lp.Bound{lp.NonNegative()},
		VariableNames: []string{"x_1"},
	}
	result, err := Minimize(doc)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if result.Success {
		t.Fatal("infeasible model reported success")
	}
	if result.Status != StatusInfeasible {
		t.Errorf("status = %d, want %d (%s)", result.Status, StatusInfeasible, result.Message)
	}
	if result.ObjectiveValue != nil || result.VariableValues != nil {
		t.Error("infeasible result should carry no values")
	}
}

func TestMinimizeEncodedSystem(t *testing.T) {
	doc, err := encode.Encode(perm.Permutation{1, 3, 2}, perm.Permutation{2, 1, 3}, "x_3 + y_3")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	result, err := Minimize(doc)
	if err != nil {
		t.Fatalf("Minimize: %v", err)
	}
	if !result.Success {
		t.Fatalf("encoded system unsolved: %s", result.Message)
	}
	// Every variable is a drawing coordinate at or above 1.
	for name, v := range result.VariableValues {
		if v < 1-1e-6 {
			t.Errorf("%s = %v, want >= 1", name, v)
		}
	}
}

func TestMinimizeInvalidDocument(t *testing.T) {
	doc := assignmentDoc()
	doc.InequalityRHS = doc.InequalityRHS[:1]
	if _, err := Minimize(doc); err == nil {
		t.Fatal("expected validation error")
	}
}
