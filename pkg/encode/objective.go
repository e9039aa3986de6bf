package encode

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/wjlenhart/minLPsolver/pkg/errors"
)

// Term tokens look like "3 x_1", "- x_2", "y_4". Anything the pattern does
// not match is skipped; the parser is deliberately tolerant of surrounding
// text.
var (
	termPattern  = regexp.MustCompile(`[+-]?\s*\d*\s*[xy]_\d+`)
	termCapture  = regexp.MustCompile(`([+-]?)(\d*)([xy])_(\d+)`)
	familyOffset = map[string]int{"x": 0, "y": 1}
)

// ParseObjective parses a linear expression over the families x_1..x_n and
// y_1..y_n into a dense coefficient vector of length 2n (x_i at index i-1,
// y_i at index n+i-1).
//
// A missing coefficient magnitude defaults to 1 and a leading '-' negates
// the term. If the same variable is mentioned more than once, the later
// occurrence overwrites the earlier one. A parsed index outside [1, n]
// returns an INDEX_OUT_OF_RANGE error and aborts the run.
func ParseObjective(expr string, n int) ([]float64, error) {
	coeffs := make([]float64, 2*n)

	for _, token := range termPattern.FindAllString(expr, -1) {
		token = strings.ReplaceAll(token, " ", "")
		m := termCapture.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		sign, num, family, idxStr := m[1], m[2], m[3], m[4]

		// An index too large for int is still a matched term; it is out of
		// range by definition, not skippable text.
		idx, err := strconv.Atoi(idxStr)
		if err != nil || idx < 1 || idx > n {
			return nil, errors.New(errors.ErrCodeIndexOutOfRange,
				"objective index %s outside [1, %d] in term %q", idxStr, n, token)
		}

		coeff := 1.0
		if num != "" {
			// The magnitude is a digit string, so ParseFloat only errors on
			// overflow; the saturated value is still the right coefficient.
			coeff, _ = strconv.ParseFloat(num, 64)
		}
		if sign == "-" {
			coeff = -coeff
		}

		coeffs[familyOffset[family]*n+idx-1] = coeff
	}

	return coeffs, nil
}
