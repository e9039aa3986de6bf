// Package encode converts a pair of equal-length permutations and a textual
// linear objective into an LP document.
//
// The encoder is a pure, single-threaded, deterministic transformation. Data
// flows strictly forward: permutations → inverse (rank) maps → constraint
// rows → assembled document. Three generator families contribute rows, in a
// fixed order that is part of the observable contract (violation reports
// reference rows by index):
//
//  1. Monotonicity: x follows P1's order and y follows P2's order, each
//     family anchored above 1.
//  2. Spacing: when an element is a strict local extremum with respect to
//     its rank in the other permutation, its two neighbors must differ by
//     at least one unit.
//  3. Combined: permutation-adjacent pairs are separated by one unit in
//     their own family, with a companion row in the other family whose
//     direction depends on the pair's relative rank there.
//
// Variables are indexed x_1..x_n at 0..n-1 and y_1..y_n at n..2n-1. All
// errors abort the whole encoding; no partial document is ever produced.
package encode
