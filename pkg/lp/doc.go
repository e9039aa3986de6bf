// Package lp defines the LP document exchanged between the encoder, the
// solver, and the feasibility checker.
//
// A [Document] bundles an objective vector, an inequality system (rows of
// `coeffs · vars <= rhs`), an always-empty equality system, per-variable
// bounds, and variable name labels. The [System] accumulator preserves row
// order across the constraint generators, which matters because downstream
// violation reports reference rows by index.
//
// The JSON field names (c, A_ub, b_ub, A_eq, b_eq, bounds, variable_names)
// form the wire contract with external tooling and are kept stable.
package lp
