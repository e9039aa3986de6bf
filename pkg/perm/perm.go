// Package perm provides the permutation type consumed by the LP encoder.
//
// A Permutation is an ordered sequence of n distinct integers drawn from
// {1..n}, representing a total order over n labeled positions. The package
// validates candidate sequences and computes inverse (rank) maps, which the
// constraint generators use to look up the position of a value in the other
// permutation.
package perm

import (
	"strconv"
	"strings"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
)

// Permutation is a bijection from {1..n} to itself, stored as the ordered
// sequence of values. It is immutable once parsed: no function in this
// package or in pkg/encode modifies a Permutation after Parse returns.
type Permutation []int

// Parse converts a whitespace-separated line of integers into a validated
// Permutation. It returns a MALFORMED_INPUT error for non-numeric fields and
// an INVALID_PERMUTATION error if the values are not a permutation of {1..n}.
func Parse(line string) (Permutation, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeMalformedInput, "empty permutation line")
	}

	p := make(Permutation, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.New(errors.ErrCodeMalformedInput, "non-integer permutation entry %q", f)
		}
		p[i] = v
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks that p is a permutation of {1..n}: every value in range,
// no duplicates, n > 0.
func (p Permutation) Validate() error {
	n := len(p)
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidPermutation, "permutation is empty")
	}

	seen := make([]bool, n)
	for _, v := range p {
		if v < 1 || v > n {
			return errors.New(errors.ErrCodeInvalidPermutation, "value %d outside [1, %d]", v, n)
		}
		if seen[v-1] {
			return errors.New(errors.ErrCodeInvalidPermutation, "duplicate value %d", v)
		}
		seen[v-1] = true
	}
	return nil
}

// Inverse returns the rank map Q of p: Q[v-1] is the 1-based position at
// which value v appears, so Q[p[i]-1] == i+1 for all i. The receiver must be
// a valid permutation; Inverse does not re-validate.
func (p Permutation) Inverse() Permutation {
	q := make(Permutation, len(p))
	for i, v := range p {
		q[v-1] = i + 1
	}
	return q
}

// Rank returns the 1-based position of value v in p, assuming the receiver
// is the inverse map of some permutation. It is a readability helper for the
// constraint generators, which index inverse maps by value.
func (p Permutation) Rank(v int) int {
	return p[v-1]
}

// String renders the permutation as space-separated values, the same shape
// Parse accepts.
func (p Permutation) String() string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// SameLength reports whether two permutations have identical length, the
// precondition for encoding a pair.
func SameLength(p1, p2 Permutation) error {
	if len(p1) != len(p2) {
		return errors.New(errors.ErrCodeInvalidPermutation,
			"permutation lengths differ: %d vs %d", len(p1), len(p2))
	}
	return nil
}
