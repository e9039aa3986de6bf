// Package solve runs an LP document through the COIN-OR CLP simplex solver
// and reports the outcome in a stable wire shape.
package solve

import (
	"encoding/json"
	"io"
	"math"

	"github.com/lanl/clp"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
	"github.com/wjlenhart/minLPsolver/pkg/lp"
)

// Status codes in the result, matching the conventional linprog numbering.
const (
	StatusOptimal    = 0
	StatusIterLimit  = 1
	StatusInfeasible = 2
	StatusUnbounded  = 3
	StatusNumerical  = 4
)

// Result is the solver outcome. VariableValues is keyed by the document's
// variable names and populated only on success.
type Result struct {
	Success        bool               `json:"success"`
	Status         int                `json:"status"`
	Message        string             `json:"message"`
	ObjectiveValue *float64           `json:"objective_value"`
	VariableValues map[string]float64 `json:"variable_values"`
}

// Minimize solves the document as a minimization problem. An infeasible or
// unbounded model is not an error: it comes back as a Result with Success
// false and the corresponding status. Only a structurally invalid document
// is an error.
func Minimize(doc *lp.Document) (*Result, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	n := doc.NumVariables()

	varBounds := make([][2]float64, n)
	for i, b := range doc.Bounds {
		lo, hi := math.Inf(-1), math.Inf(1)
		if b.Lower() != nil {
			lo = *b.Lower()
		}
		if b.Upper() != nil {
			hi = *b.Upper()
		}
		varBounds[i] = [2]float64{lo, hi}
	}

	// Dense rows in CLP's [lb, coeffs..., ub] layout. Inequalities are
	// one-sided, equalities pin both ends to the right-hand side.
	rows := make([][]float64, 0, len(doc.Inequalities)+len(doc.Equalities))
	for i, row := range doc.Inequalities {
		rows = append(rows, denseRow(math.Inf(-1), row, doc.InequalityRHS[i]))
	}
	for i, row := range doc.Equalities {
		rows = append(rows, denseRow(doc.EqualityRHS[i], row, doc.EqualityRHS[i]))
	}

	simp := clp.NewSimplex()
	simp.EasyLoadDenseProblem(doc.Objective, varBounds, rows)
	simp.SetOptimizationDirection(clp.Minimize)

	status := simp.Primal(clp.NoValuesPass, clp.NoStartFinishOptions)

	result := &Result{
		Status:  mapStatus(status),
		Message: statusMessage(status),
	}
	if status != clp.Optimal {
		return result, nil
	}

	soln := simp.PrimalColumnSolution()
	if len(soln) != n {
		return nil, errors.New(errors.ErrCodeSolver,
			"solver returned %d values for %d variables", len(soln), n)
	}

	values := make(map[string]float64, n)
	objective := 0.0
	for i, name := range doc.VariableNames {
		values[name] = soln[i]
		objective += doc.Objective[i] * soln[i]
	}

	result.Success = true
	result.ObjectiveValue = &objective
	result.VariableValues = values
	return result, nil
}

func denseRow(lb float64, coeffs []float64, ub float64) []float64 {
	row := make([]float64, 0, len(coeffs)+2)
	row = append(row, lb)
	row = append(row, coeffs...)
	row = append(row, ub)
	return row
}

func mapStatus(s clp.SimplexStatus) int {
	switch s {
	case clp.Optimal:
		return StatusOptimal
	case clp.PrimalInfeasible:
		return StatusInfeasible
	case clp.DualInfeasible:
		return StatusUnbounded
	case clp.Stopped:
		return StatusIterLimit
	default:
		return StatusNumerical
	}
}

func statusMessage(s clp.SimplexStatus) string {
	switch s {
	case clp.Optimal:
		return "Optimization terminated successfully."
	case clp.PrimalInfeasible:
		return "The problem is infeasible."
	case clp.DualInfeasible:
		return "The problem is unbounded."
	case clp.Stopped:
		return "Iteration or time limit reached."
	default:
		return "The solver encountered numerical difficulties."
	}
}

// WriteJSON encodes the result as indented JSON followed by a newline.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON decodes a previously written result.
func ReadJSON(rd io.Reader) (*Result, error) {
	var r Result
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeMalformedInput, err, "decode solver result")
	}
	return &r, nil
}
