package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wjlenhart/minLPsolver/internal/config"
	"github.com/wjlenhart/minLPsolver/pkg/errors"
)

func TestParseProblem(t *testing.T) {
	p1, p2, objective, err := parseProblem(strings.NewReader("1 3 2\n2 1 3\nx_3 + y_3\n"))
	if err != nil {
		t.Fatalf("parseProblem: %v", err)
	}
	if len(p1) != 3 || p1[1] != 3 {
		t.Errorf("p1 = %v", p1)
	}
	if len(p2) != 3 || p2[0] != 2 {
		t.Errorf("p2 = %v", p2)
	}
	if objective != "x_3 + y_3" {
		t.Errorf("objective = %q", objective)
	}
}

func TestParseProblemNoObjective(t *testing.T) {
	_, _, objective, err := parseProblem(strings.NewReader("1 2\n2 1\n"))
	if err != nil {
		t.Fatalf("parseProblem: %v", err)
	}
	if objective != "" {
		t.Errorf("objective = %q, want empty", objective)
	}
}

func TestParseProblemSkipsBlankLines(t *testing.T) {
	p1, _, objective, err := parseProblem(strings.NewReader("\n1 2\n\n2 1\n\nx_1\n"))
	if err != nil {
		t.Fatalf("parseProblem: %v", err)
	}
	if len(p1) != 2 {
		t.Errorf("p1 = %v", p1)
	}
	if objective != "x_1" {
		t.Errorf("objective = %q", objective)
	}
}

func TestParseProblemErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"empty input", "", errors.ErrCodeMalformedInput},
		{"one line", "1 2\n", errors.ErrCodeMalformedInput},
		{"non-integer token", "1 two\n2 1\n", errors.ErrCodeMalformedInput},
		{"not a permutation", "1 1\n1 2\n", errors.ErrCodeInvalidPermutation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := parseProblem(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %s, want %s (%v)", errors.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestNewKeyer(t *testing.T) {
	if k := newKeyer(config.Default()); k != nil {
		t.Errorf("no namespace should use the default keyer, got %T", k)
	}

	cfg := config.Default()
	cfg.Cache.Namespace = "staging"
	k := newKeyer(cfg)
	if k == nil {
		t.Fatal("namespace set, want a scoped keyer")
	}
	if key := k.SolutionKey("abc"); !strings.HasPrefix(key, "staging:") {
		t.Errorf("key = %q, want staging: prefix", key)
	}
}

func TestRootCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()

	want := []string{"encode", "solve", "check", "run", "visualize", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
