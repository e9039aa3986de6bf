package encode

import (
	"testing"

	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

func nonZeros(row []float64) int {
	count := 0
	for _, c := range row {
		if c != 0 {
			count++
		}
	}
	return count
}

func TestMonotonicityRowCount(t *testing.T) {
	// 2 anchors plus 2(n-1) chain rows for every n >= 1.
	perms := [][2]perm.Permutation{
		{{1}, {1}},
		{{1, 2}, {2, 1}},
		{{3, 1, 4, 2}, {2, 4, 1, 3}},
	}

	for _, pair := range perms {
		p1, p2 := pair[0], pair[1]
		n := len(p1)
		sys := lp.NewSystem(2 * n)
		appendMonotonicity(sys, p1, p2)

		want := 2 + 2*(n-1)
		if sys.Len() != want {
			t.Errorf("n=%d: %d rows, want %d", n, sys.Len(), want)
		}

		// Anchors carry a single -1; chain rows a (+1, -1) pair.
		for i, row := range sys.Rows() {
			wantNZ := 2
			if i < 2 {
				wantNZ = 1
			}
			if nonZeros(row) != wantNZ {
				t.Errorf("n=%d row %d: %d non-zeros, want %d", n, i, nonZeros(row), wantNZ)
			}
		}
	}
}

func TestMonotonicityAnchors(t *testing.T) {
	p1 := perm.Permutation{2, 1, 3}
	p2 := perm.Permutation{3, 2, 1}
	sys := lp.NewSystem(6)
	appendMonotonicity(sys, p1, p2)

	// First anchor: -x_2 <= -1. Second: -y_3 <= -1.
	if sys.Rows()[0][1] != -1 || sys.RHS()[0] != -1 {
		t.Errorf("x anchor row = %v rhs %v", sys.Rows()[0], sys.RHS()[0])
	}
	if sys.Rows()[1][5] != -1 || sys.RHS()[1] != -1 {
		t.Errorf("y anchor row = %v rhs %v", sys.Rows()[1], sys.RHS()[1])
	}
}

func TestIsStrictExtremum(t *testing.T) {
	tests := []struct {
		a, b, c int
		want    bool
	}{
		{1, 3, 2, true},  // peak
		{3, 1, 2, true},  // valley
		{1, 2, 3, false}, // ascending
		{3, 2, 1, false}, // descending
		{2, 2, 3, false}, // tie with predecessor
		{1, 2, 2, false}, // tie with successor
	}
	for _, tt := range tests {
		if got := isStrictExtremum(tt.a, tt.b, tt.c); got != tt.want {
			t.Errorf("isStrictExtremum(%d, %d, %d) = %v, want %v", tt.a, tt.b, tt.c, got, tt.want)
		}
	}
}

func TestSpacingEmitsOnExtremum(t *testing.T) {
	// P1 = [1 3 2] ranked through Q2 (identity) gives 1, 3, 2: element 3 is
	// a strict peak, so x_1 - x_2 <= -1. The y side mirrors it.
	p1 := perm.Permutation{1, 3, 2}
	p2 := perm.Permutation{1, 2, 3}
	q1, q2 := p1.Inverse(), p2.Inverse()

	sys := lp.NewSystem(6)
	appendSpacing(sys, p1, p2, q1, q2)

	if sys.Len() != 2 {
		t.Fatalf("%d spacing rows, want 2", sys.Len())
	}
	xRow := sys.Rows()[0]
	if xRow[0] != 1 || xRow[1] != -1 || sys.RHS()[0] != -1 {
		t.Errorf("x spacing row = %v rhs %v, want x_1 - x_2 <= -1", xRow, sys.RHS()[0])
	}
	yRow := sys.Rows()[1]
	if yRow[3] != 1 || yRow[5] != -1 || sys.RHS()[1] != -1 {
		t.Errorf("y spacing row = %v rhs %v, want y_1 - y_3 <= -1", yRow, sys.RHS()[1])
	}
}

func TestSpacingSilentOnMonotonicRanks(t *testing.T) {
	// Identical permutations rank monotonically through each other's
	// inverse, so no interior element is an extremum.
	p := perm.Permutation{2, 4, 1, 3}
	q := p.Inverse()

	sys := lp.NewSystem(8)
	appendSpacing(sys, p, p, q, q)
	if sys.Len() != 0 {
		t.Errorf("%d spacing rows for identical permutations, want 0", sys.Len())
	}
}

func TestCombinedRowShape(t *testing.T) {
	p1 := perm.Permutation{3, 1, 4, 2}
	p2 := perm.Permutation{2, 4, 1, 3}
	q1, q2 := p1.Inverse(), p2.Inverse()
	n := len(p1)

	sys := lp.NewSystem(2 * n)
	appendCombined(sys, p1, p2, q1, q2)

	if want := 2 * (n - 1); sys.Len() != want {
		t.Fatalf("%d combined rows, want %d", sys.Len(), want)
	}

	for i, row := range sys.Rows() {
		if sys.RHS()[i] != -1 {
			t.Errorf("row %d rhs = %v, want -1", i, sys.RHS()[i])
		}
		xNZ, yNZ := 0, 0
		for j, c := range row {
			if c == 0 {
				continue
			}
			if c != 1 && c != -1 {
				t.Errorf("row %d has coefficient %v, want only ±1", i, c)
			}
			if j < n {
				xNZ++
			} else {
				yNZ++
			}
		}
		if xNZ != 2 || yNZ != 2 {
			t.Errorf("row %d has %d x and %d y non-zeros, want 2 and 2", i, xNZ, yNZ)
		}
	}
}

func TestCombinedDirection(t *testing.T) {
	// P1 = [1 2], P2 = [2 1]: the adjacent x pair (1, 2) ranks reversed
	// under Q2, so the companion y row flips direction.
	p1 := perm.Permutation{1, 2}
	p2 := perm.Permutation{2, 1}
	q1, q2 := p1.Inverse(), p2.Inverse()

	sys := lp.NewSystem(4)
	appendCombined(sys, p1, p2, q1, q2)

	if sys.Len() != 2 {
		t.Fatalf("%d combined rows, want 2", sys.Len())
	}
	// x_1 - x_2 + y_2 - y_1 <= -1
	want := []float64{1, -1, -1, 1}
	for i, row := range sys.Rows() {
		for j := range want {
			if row[j] != want[j] {
				t.Errorf("row %d = %v, want %v", i, row, want)
				break
			}
		}
	}
}
