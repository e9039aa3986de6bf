package lp

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
)

// Bound is a [lower, upper] pair for one variable. A nil entry means
// unbounded on that side, and marshals as JSON null.
type Bound [2]*float64

// NonNegative returns the bound [0, +inf), the only bound the encoder emits.
func NonNegative() Bound {
	zero := 0.0
	return Bound{&zero, nil}
}

// Lower returns the lower bound, or nil if unbounded below.
func (b Bound) Lower() *float64 { return b[0] }

// Upper returns the upper bound, or nil if unbounded above.
func (b Bound) Upper() *float64 { return b[1] }

// Document is the assembled LP artifact handed to the solver: objective,
// inequality system, (empty) equality system, bounds, and variable names.
// The JSON tags match the wire format consumed by external tooling.
type Document struct {
	Objective     []float64   `json:"c"`
	Inequalities  [][]float64 `json:"A_ub"`
	InequalityRHS []float64   `json:"b_ub"`
	Equalities    [][]float64 `json:"A_eq"`
	EqualityRHS   []float64   `json:"b_eq"`
	Bounds        []Bound     `json:"bounds"`
	VariableNames []string    `json:"variable_names"`
}

// NumVariables returns the number of decision variables, taken from the
// objective vector length.
func (d *Document) NumVariables() int {
	return len(d.Objective)
}

// Validate checks the structural invariants of the document: every matrix
// row has one coefficient per variable, right-hand sides pair positionally
// with their matrices, and bounds/names cover every variable. A violation
// is a MALFORMED_INPUT error.
func (d *Document) Validate() error {
	n := d.NumVariables()
	if n == 0 {
		return errors.New(errors.ErrCodeMalformedInput, "document has no variables")
	}
	if len(d.Inequalities) != len(d.InequalityRHS) {
		return errors.New(errors.ErrCodeMalformedInput,
			"inequality matrix has %d rows but %d right-hand sides", len(d.Inequalities), len(d.InequalityRHS))
	}
	if len(d.Equalities) != len(d.EqualityRHS) {
		return errors.New(errors.ErrCodeMalformedInput,
			"equality matrix has %d rows but %d right-hand sides", len(d.Equalities), len(d.EqualityRHS))
	}
	for i, row := range d.Inequalities {
		if len(row) != n {
			return errors.New(errors.ErrCodeMalformedInput,
				"inequality row %d has length %d, want %d", i, len(row), n)
		}
	}
	for i, row := range d.Equalities {
		if len(row) != n {
			return errors.New(errors.ErrCodeMalformedInput,
				"equality row %d has length %d, want %d", i, len(row), n)
		}
	}
	if len(d.Bounds) != n {
		return errors.New(errors.ErrCodeMalformedInput,
			"%d bounds for %d variables", len(d.Bounds), n)
	}
	if len(d.VariableNames) != n {
		return errors.New(errors.ErrCodeMalformedInput,
			"%d variable names for %d variables", len(d.VariableNames), n)
	}
	return nil
}

// Marshal encodes the document as indented JSON. The byte output is
// deterministic for a given document, which makes it usable as cache-key
// material.
func (d *Document) Marshal() ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// WriteJSON encodes the document as indented JSON and writes it to w,
// followed by a newline.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a document from r and validates its shape.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode LP document")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadFile reads a JSON document from path using [ReadJSON].
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
