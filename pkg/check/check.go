// Package check verifies a candidate variable assignment against an LP
// document.
//
// The checker walks every inequality row, equality row, and bound, compares
// the left-hand value against the right-hand side with an absolute tolerance
// of 1e-8, and reports each violated constraint with its rendered expression
// and the offending values. It is a pure numeric pass over the document; it
// never modifies either input.
package check

import (
	"encoding/json"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
)

// Tolerance is the absolute numeric tolerance for all comparisons.
const Tolerance = 1e-8

// Violation kinds reported by [Check].
const (
	KindInequality = "inequality"
	KindEquality   = "equality"
	KindBound      = "bound"
)

// Violation describes one failed constraint or bound.
type Violation struct {
	Type  string `json:"type"`
	Index int    `json:"index"`

	// Constraint violations carry the rendered row and both sides.
	Expression string   `json:"expression,omitempty"`
	LHS        *float64 `json:"lhs,omitempty"`
	RHS        *float64 `json:"rhs,omitempty"`
	Violation  string   `json:"violation,omitempty"`

	// Bound violations carry the variable and a description instead.
	Variable    string `json:"variable,omitempty"`
	Description string `json:"description,omitempty"`
}

// Report is the checker's output: a global satisfied flag plus one entry
// per violated row or bound, in document order.
type Report struct {
	AllSatisfied bool        `json:"all_constraints_satisfied"`
	Violations   []Violation `json:"violations"`
}

// Check evaluates the assignment against every constraint and bound in doc.
// Variable values are keyed by name; a missing variable is a
// MALFORMED_INPUT error.
func Check(doc *lp.Document, values map[string]float64) (*Report, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	x := make([]float64, doc.NumVariables())
	for i, name := range doc.VariableNames {
		v, ok := values[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeMalformedInput, "assignment missing variable %s", name)
		}
		x[i] = v
	}

	report := &Report{
		AllSatisfied: true,
		Violations:   []Violation{},
	}

	for i, row := range doc.Inequalities {
		lhs := dot(row, x)
		rhs := doc.InequalityRHS[i]
		if lhs > rhs+Tolerance {
			report.add(constraintViolation(KindInequality, i, row, doc.VariableNames, "<=", lhs, rhs))
		}
	}

	for i, row := range doc.Equalities {
		lhs := dot(row, x)
		rhs := doc.EqualityRHS[i]
		if math.Abs(lhs-rhs) > Tolerance {
			report.add(constraintViolation(KindEquality, i, row, doc.VariableNames, "=", lhs, rhs))
		}
	}

	for i, b := range doc.Bounds {
		name, val := doc.VariableNames[i], x[i]
		if lo := b.Lower(); lo != nil && val < *lo-Tolerance {
			report.add(Violation{
				Type:        KindBound,
				Index:       i,
				Variable:    name,
				Description: name + " = " + compact(val) + " is below lower bound " + compact(*lo),
			})
		}
		if hi := b.Upper(); hi != nil && val > *hi+Tolerance {
			report.add(Violation{
				Type:        KindBound,
				Index:       i,
				Variable:    name,
				Description: name + " = " + compact(val) + " is above upper bound " + compact(*hi),
			})
		}
	}

	return report, nil
}

func (r *Report) add(v Violation) {
	r.AllSatisfied = false
	r.Violations = append(r.Violations, v)
}

func dot(row, x []float64) float64 {
	sum := 0.0
	for i, c := range row {
		sum += c * x[i]
	}
	return sum
}

// constraintViolation renders a violated row: coefficients below the
// tolerance are suppressed, unit magnitudes print bare ("x_1" rather than
// "1x_1"), and the leading plus sign is dropped.
func constraintViolation(kind string, index int, row []float64, names []string, relation string, lhs, rhs float64) Violation {
	var terms []string
	for i, c := range row {
		if math.Abs(c) <= Tolerance {
			continue
		}
		sign := "+"
		if c < 0 {
			sign = "-"
		}
		mag := math.Abs(c)
		if mag == 1 {
			terms = append(terms, sign+" "+names[i])
		} else {
			terms = append(terms, sign+" "+compact(mag)+names[i])
		}
	}
	expr := strings.TrimLeft(strings.Join(terms, " "), "+ ")

	l, r := lhs, rhs
	return Violation{
		Type:       kind,
		Index:      index,
		Expression: expr + " " + relation + " " + compact(rhs),
		LHS:        &l,
		RHS:        &r,
		Violation:  compact(lhs) + " " + relation + " " + compact(rhs) + " is False",
	}
}

// compact formats a float the way %g does, 6 significant digits. Both the
// rendered expressions and the violation sentences use it.
func compact(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// input is the two-element wire shape [document, assignment].
type assignment struct {
	VariableValues map[string]float64 `json:"variable_values"`
}

// ReadInput decodes the checker's wire input: a JSON array whose first
// element is an LP document and whose second element carries
// "variable_values". Any other shape is a MALFORMED_INPUT error.
func ReadInput(r io.Reader) (*lp.Document, map[string]float64, error) {
	var parts []json.RawMessage
	if err := json.NewDecoder(r).Decode(&parts); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode check input")
	}
	if len(parts) != 2 {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput,
			"check input must be a JSON array of two objects, got %d", len(parts))
	}

	var doc lp.Document
	if err := json.Unmarshal(parts[0], &doc); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode LP document")
	}
	if err := doc.Validate(); err != nil {
		return nil, nil, err
	}

	var a assignment
	if err := json.Unmarshal(parts[1], &a); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode assignment")
	}
	if a.VariableValues == nil {
		return nil, nil, errors.New(errors.ErrCodeMalformedInput, "assignment has no variable_values")
	}

	return &doc, a.VariableValues, nil
}

// ReadInputFile reads the checker input from path using [ReadInput].
func ReadInputFile(path string) (*lp.Document, map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "open %s", path)
	}
	defer f.Close()
	return ReadInput(f)
}

// WriteJSON encodes the report as indented JSON followed by a newline.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
