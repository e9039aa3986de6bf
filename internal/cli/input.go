package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/perm"
)

// readProblem reads a problem description: the first line is P1, the second
// is P2, and an optional third line is the objective expression. Blank lines
// are skipped. The path "-" reads from stdin.
func readProblem(path string) (perm.Permutation, perm.Permutation, string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, "", errors.Wrap(errors.ErrCodeMalformedInput, err, "open %s", path)
		}
		defer f.Close()
		r = f
	}
	return parseProblem(r)
}

func parseProblem(r io.Reader) (perm.Permutation, perm.Permutation, string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, "", errors.Wrap(errors.ErrCodeMalformedInput, err, "read problem input")
	}

	if len(lines) < 2 {
		return nil, nil, "", errors.New(errors.ErrCodeMalformedInput,
			"problem input needs two permutation lines, got %d line(s)", len(lines))
	}

	p1, err := perm.Parse(lines[0])
	if err != nil {
		return nil, nil, "", errors.Wrap(errors.GetCode(err), err, "first permutation")
	}
	p2, err := perm.Parse(lines[1])
	if err != nil {
		return nil, nil, "", errors.Wrap(errors.GetCode(err), err, "second permutation")
	}

	// Everything after the permutations is the objective expression.
	objective := strings.Join(lines[2:], " ")

	return p1, p2, objective, nil
}
