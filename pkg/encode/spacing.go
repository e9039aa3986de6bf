package encode

import (
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

// isStrictExtremum reports whether the middle rank b is a strict local peak
// or valley between its neighbor ranks a and c. A tie on either side is not
// an extremum: the product is <= 0.
func isStrictExtremum(a, b, c int) bool {
	return (a-b)*(c-b) > 0
}

// appendSpacing emits a unit-gap row for every interior element of one
// permutation that is a strict local extremum of its rank sequence under the
// other permutation's inverse map. The row forces the element's two
// neighbors (in the first permutation's order) apart:
//
//	pred - succ <= -1
//
// evaluated independently for the x side (P1 ranked through Q2) and the
// y side (P2 ranked through Q1). Up to 2(n-2) rows.
func appendSpacing(sys *lp.System, p1, p2, q1, q2 perm.Permutation) {
	n := len(p1)

	for i := 1; i < n-1; i++ {
		a, b, c := q2.Rank(p1[i-1]), q2.Rank(p1[i]), q2.Rank(p1[i+1])
		if isStrictExtremum(a, b, c) {
			row := sys.NewRow()
			row[xVar(p1[i-1])] = 1
			row[xVar(p1[i+1])] = -1
			sys.Append(row, -1)
		}
	}

	for i := 1; i < n-1; i++ {
		a, b, c := q1.Rank(p2[i-1]), q1.Rank(p2[i]), q1.Rank(p2[i+1])
		if isStrictExtremum(a, b, c) {
			row := sys.NewRow()
			row[yVar(n, p2[i-1])] = 1
			row[yVar(n, p2[i+1])] = -1
			sys.Append(row, -1)
		}
	}
}
