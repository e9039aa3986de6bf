package render

import (
	"strings"
	"testing"

	"github.com/wjlenhart/minLPsolver/pkg/encode"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

func TestToDOT(t *testing.T) {
	doc, err := encode.Encode(perm.Permutation{1, 2}, perm.Permutation{2, 1}, "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dot := ToDOT(doc, Options{})

	if !strings.HasPrefix(dot, "digraph constraints {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	// Every variable appears as a node.
	for _, name := range doc.VariableNames {
		if !strings.Contains(dot, `"`+name+`"`) {
			t.Errorf("node %s missing from DOT", name)
		}
	}
	// Anchored variables are highlighted.
	if !strings.Contains(dot, "fillcolor=lightblue") {
		t.Error("anchor nodes not highlighted")
	}
	// Chain rows produce ordering edges.
	if !strings.Contains(dot, `"x_1" -> "x_2"`) {
		t.Errorf("chain edge x_1 -> x_2 missing:\n%s", dot)
	}
	// Coupled rows are dashed.
	if !strings.Contains(dot, "style=dashed") {
		t.Error("coupled rows should render dashed")
	}
}

func TestToDOTDetailed(t *testing.T) {
	doc, err := encode.Encode(perm.Permutation{1, 3, 2}, perm.Permutation{1, 2, 3}, "")
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	dot := ToDOT(doc, Options{Detailed: true})
	if !strings.Contains(dot, `label="-1"`) {
		t.Error("detailed mode should label gap edges with the right-hand side")
	}
	if !strings.Contains(dot, "tooltip=") {
		t.Error("detailed mode should attach row tooltips")
	}
}
