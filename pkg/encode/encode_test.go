package encode

import (
	"reflect"
	"testing"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

func TestEncodeEndToEnd(t *testing.T) {
	doc, err := Encode(perm.Permutation{1, 2}, perm.Permutation{2, 1}, "x_1 + y_1")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Fatalf("document invalid: %v", err)
	}

	if got := doc.Objective; !reflect.DeepEqual(got, []float64{1, 0, 1, 0}) {
		t.Errorf("objective = %v", got)
	}

	// 4 monotonicity rows, 0 spacing (no interior), 2 combined.
	wantRows := [][]float64{
		{-1, 0, 0, 0},  // x_1 >= 1
		{0, 0, 0, -1},  // y_2 >= 1
		{1, -1, 0, 0},  // x_1 <= x_2
		{0, 0, -1, 1},  // y_2 <= y_1 (chain follows P2's sequence)
		{1, -1, -1, 1}, // combined, P1 pair (1,2), y direction flipped by Q2
		{1, -1, -1, 1}, // combined, P2 pair (2,1), x direction flipped by Q1
	}
	wantRHS := []float64{-1, -1, 0, 0, -1, -1}

	if !reflect.DeepEqual(doc.Inequalities, wantRows) {
		t.Errorf("inequality matrix:\n got %v\nwant %v", doc.Inequalities, wantRows)
	}
	if !reflect.DeepEqual(doc.InequalityRHS, wantRHS) {
		t.Errorf("rhs = %v, want %v", doc.InequalityRHS, wantRHS)
	}

	if len(doc.Equalities) != 0 || len(doc.EqualityRHS) != 0 {
		t.Error("equality system should be empty")
	}
	if !reflect.DeepEqual(doc.VariableNames, []string{"x_1", "x_2", "y_1", "y_2"}) {
		t.Errorf("variable names = %v", doc.VariableNames)
	}
	for i, b := range doc.Bounds {
		if b.Lower() == nil || *b.Lower() != 0 || b.Upper() != nil {
			t.Errorf("bound %d = %v, want [0, +inf)", i, b)
		}
	}
}

func TestEncodeDegenerate(t *testing.T) {
	// n=1: no interior positions, no adjacent pairs — only the two anchors.
	doc, err := Encode(perm.Permutation{1}, perm.Permutation{1}, "x_1")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(doc.Inequalities) != 2 {
		t.Fatalf("%d rows for n=1, want 2", len(doc.Inequalities))
	}
	if doc.Inequalities[0][0] != -1 || doc.Inequalities[1][1] != -1 {
		t.Errorf("anchor rows = %v", doc.Inequalities)
	}
}

func TestEncodeRowOrder(t *testing.T) {
	// Generator order is monotonicity → spacing → combined; spacing rows
	// for P1 = [1 3 2] / P2 = [1 2 3] must land between the chain rows and
	// the combined block.
	doc, err := Encode(perm.Permutation{1, 3, 2}, perm.Permutation{1, 2, 3}, "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	monoRows := 2 + 2*2 // 6
	spacingRows := 2
	combinedRows := 2 * 2

	if got := len(doc.Inequalities); got != monoRows+spacingRows+combinedRows {
		t.Fatalf("%d rows, want %d", got, monoRows+spacingRows+combinedRows)
	}

	// The first spacing row is x_1 - x_2 <= -1.
	sp := doc.Inequalities[monoRows]
	if sp[0] != 1 || sp[1] != -1 || doc.InequalityRHS[monoRows] != -1 {
		t.Errorf("first spacing row = %v rhs %v", sp, doc.InequalityRHS[monoRows])
	}
	// Every combined row has four non-zeros.
	for i := monoRows + spacingRows; i < len(doc.Inequalities); i++ {
		if nonZeros(doc.Inequalities[i]) != 4 {
			t.Errorf("combined row %d has %d non-zeros, want 4", i, nonZeros(doc.Inequalities[i]))
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		p1   perm.Permutation
		p2   perm.Permutation
		expr string
		code errors.Code
	}{
		{"invalid first", perm.Permutation{1, 1}, perm.Permutation{1, 2}, "", errors.ErrCodeInvalidPermutation},
		{"invalid second", perm.Permutation{1, 2}, perm.Permutation{0, 1}, "", errors.ErrCodeInvalidPermutation},
		{"length mismatch", perm.Permutation{1, 2}, perm.Permutation{1, 2, 3}, "", errors.ErrCodeInvalidPermutation},
		{"objective out of range", perm.Permutation{1, 2}, perm.Permutation{2, 1}, "x_3", errors.ErrCodeIndexOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Encode(tt.p1, tt.p2, tt.expr)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestVariableNames(t *testing.T) {
	got := VariableNames(2)
	want := []string{"x_1", "x_2", "y_1", "y_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("VariableNames(2) = %v, want %v", got, want)
	}
}
