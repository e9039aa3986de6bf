package encode

import (
	"github.com/wjlenhart/minLPsolver/pkg/lp"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

// appendMonotonicity emits the order constraints: the x family follows P1's
// sequence and the y family follows P2's, each anchored above 1.
//
// Anchors first (x_{P1[0]} >= 1 and y_{P2[0]} >= 1, emitted in <= form),
// then the chains x_{P1[i]} <= x_{P1[i+1]} and the y analogue. Exactly
// 2 + 2(n-1) rows, all coefficients ±1.
func appendMonotonicity(sys *lp.System, p1, p2 perm.Permutation) {
	n := len(p1)

	row := sys.NewRow()
	row[xVar(p1[0])] = -1
	sys.Append(row, -1)

	row = sys.NewRow()
	row[yVar(n, p2[0])] = -1
	sys.Append(row, -1)

	for i := 0; i < n-1; i++ {
		row = sys.NewRow()
		row[xVar(p1[i])] = 1
		row[xVar(p1[i+1])] = -1
		sys.Append(row, 0)
	}
	for i := 0; i < n-1; i++ {
		row = sys.NewRow()
		row[yVar(n, p2[i])] = 1
		row[yVar(n, p2[i+1])] = -1
		sys.Append(row, 0)
	}
}
