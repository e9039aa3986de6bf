package encode

import (
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

// sameDirection reports whether the companion constraint for an adjacent
// pair (v, u) runs in the same direction as the always-emitted one: it does
// when v ranks before u under the other permutation's inverse map.
func sameDirection(qv, qu int) bool {
	return qv < qu
}

// appendCombined emits the cross-linked rows for permutation-adjacent
// pairs. For each pair (v, u) with u immediately after v in P1:
//
//	x_v - x_u <= -1                          (always)
//	y_v - y_u <= -1  or  y_u - y_v <= -1     (direction from Q2[v] vs Q2[u])
//
// both folded into a single row with four non-zero coefficients. Pairs
// adjacent in P2 get the symmetric treatment with the y row fixed and the
// x direction decided by Q1. Exactly 2(n-1) rows.
func appendCombined(sys *lp.System, p1, p2, q1, q2 perm.Permutation) {
	n := len(p1)

	for i := 0; i < n-1; i++ {
		v, u := p1[i], p1[i+1]
		row := sys.NewRow()
		row[xVar(v)] = 1
		row[xVar(u)] = -1
		if sameDirection(q2.Rank(v), q2.Rank(u)) {
			row[yVar(n, v)] = 1
			row[yVar(n, u)] = -1
		} else {
			row[yVar(n, u)] = 1
			row[yVar(n, v)] = -1
		}
		sys.Append(row, -1)
	}

	for i := 0; i < n-1; i++ {
		v, u := p2[i], p2[i+1]
		row := sys.NewRow()
		row[yVar(n, v)] = 1
		row[yVar(n, u)] = -1
		if sameDirection(q1.Rank(v), q1.Rank(u)) {
			row[xVar(v)] = 1
			row[xVar(u)] = -1
		} else {
			row[xVar(u)] = 1
			row[xVar(v)] = -1
		}
		sys.Append(row, -1)
	}
}
