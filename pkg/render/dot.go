// Package render draws the precedence structure of an encoded LP document
// as a Graphviz graph.
//
// Every two-variable inequality row of the form v - u <= rhs is an edge
// v -> u: a rhs of 0 is a plain ordering edge, a rhs of -1 a minimum-gap
// edge. Anchor rows mark their variable as a source node, and wider rows
// (the four-variable coupling rows) are drawn as dashed edges between the
// two positively signed variables.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/wjlenhart/minLPsolver/pkg/lp"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes the right-hand side on edge labels and the row
	// index in edge tooltips.
	Detailed bool
}

// ToDOT converts an LP document to Graphviz DOT format. The resulting DOT
// string can be rendered with [SVG] or [PNG].
func ToDOT(doc *lp.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph constraints {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	anchors := map[string]bool{}
	for i, row := range doc.Inequalities {
		if name, ok := anchorVariable(row, doc.VariableNames); ok && doc.InequalityRHS[i] < 0 {
			anchors[name] = true
		}
	}

	for _, name := range doc.VariableNames {
		attrs := []string{fmt.Sprintf("label=%q", name)}
		if anchors[name] {
			attrs = append(attrs, "fillcolor=lightblue")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", name, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, row := range doc.Inequalities {
		writeEdge(&buf, i, row, doc.InequalityRHS[i], doc.VariableNames, opts)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// anchorVariable reports the variable of a single-entry row with
// coefficient -1, the shape of an anchor constraint.
func anchorVariable(row []float64, names []string) (string, bool) {
	idx := -1
	for j, c := range row {
		if c == 0 {
			continue
		}
		if c != -1 || idx >= 0 {
			return "", false
		}
		idx = j
	}
	if idx < 0 {
		return "", false
	}
	return names[idx], true
}

func writeEdge(buf *bytes.Buffer, index int, row []float64, rhs float64, names []string, opts Options) {
	var pos, neg []int
	for j, c := range row {
		switch {
		case c > 0:
			pos = append(pos, j)
		case c < 0:
			neg = append(neg, j)
		}
	}

	switch {
	case len(pos) == 1 && len(neg) == 1:
		// v - u <= rhs: v precedes u.
		attrs := edgeAttrs(index, rhs, opts)
		if rhs < 0 {
			attrs = append(attrs, "penwidth=1.5")
		} else {
			attrs = append(attrs, "style=dotted")
		}
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", names[pos[0]], names[neg[0]], strings.Join(attrs, ", "))

	case len(pos) == 2 && len(neg) == 2:
		// Coupled four-variable row: one dashed edge per family pair.
		attrs := append(edgeAttrs(index, rhs, opts), "style=dashed", "color=grey40")
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", names[pos[0]], names[neg[0]], strings.Join(attrs, ", "))
		fmt.Fprintf(buf, "  %q -> %q [%s];\n", names[pos[1]], names[neg[1]], strings.Join(attrs, ", "))
	}
	// Anchor rows already colored their node.
}

func edgeAttrs(index int, rhs float64, opts Options) []string {
	if !opts.Detailed {
		return nil
	}
	return []string{
		fmt.Sprintf("label=%q", strconv.FormatFloat(rhs, 'g', -1, 64)),
		fmt.Sprintf("tooltip=%q", fmt.Sprintf("row %d", index)),
	}
}
