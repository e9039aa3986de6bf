package lp

import "fmt"

// System is an append-only accumulator of inequality rows. Rows keep the
// order in which they were appended; nothing mutates a row after Append.
// The assembly step owns the System and drains it into a [Document].
type System struct {
	width int
	rows  [][]float64
	rhs   []float64
}

// NewSystem creates a system whose rows all have the given width.
func NewSystem(width int) *System {
	return &System{width: width}
}

// Width returns the required row length.
func (s *System) Width() int { return s.width }

// Len returns the number of accumulated rows.
func (s *System) Len() int { return len(s.rows) }

// Append adds one inequality row `row · vars <= rhs`. It panics if the row
// width is wrong: generators construct rows from NewRow, so a mismatch is a
// programming error, not an input error.
func (s *System) Append(row []float64, rhs float64) {
	if len(row) != s.width {
		panic(fmt.Sprintf("lp: row length %d, system width %d", len(row), s.width))
	}
	s.rows = append(s.rows, row)
	s.rhs = append(s.rhs, rhs)
}

// NewRow returns a zeroed coefficient vector of the system's width.
func (s *System) NewRow() []float64 {
	return make([]float64, s.width)
}

// Rows returns the accumulated coefficient rows in append order.
// The returned slice is the system's backing storage; callers must not
// modify it.
func (s *System) Rows() [][]float64 { return s.rows }

// RHS returns the right-hand sides paired positionally with Rows.
func (s *System) RHS() []float64 { return s.rhs }
