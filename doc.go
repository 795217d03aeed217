// Package symlu is a small symbolic algebra engine and an LU solver built on
// top of it.
//
// What is symlu?
//
//	A pure-Go library that brings together:
//		• Numeric fields: float64 with an epsilon zero test, or exact decimals
//		• Polynomials: terms, monomials and canonical sums with automatic cancellation
//		• Calculus: differentiation and integration in any variable
//		• Dense matrices over a field, with formatting for the terminal
//		• LU decomposition by symbolic constraint propagation
//
// Everything is organized under four subpackages:
//
//	field/  the Value/Field capability and its float and decimal backends
//	poly/   Term, Monomial, Polynomial, Env (substitution environment)
//	matrix/ Dense, validators, Mul / EqualApprox, Format
//	lu/     Solver (seed, symbolic product, row-major resolution), Doolittle
//
// The cmd/symlu binary exposes the solver from the command line.
//
// Quick example:
//
//	f := field.MustNew(field.KindDecimal)
//	a, _ := matrix.NewDenseFrom(f, [][]float64{{4, 3}, {6, 3}})
//	l, u, err := lu.Decompose(a)
//	// l = [[1 0] [1.5 1]], u = [[4 3] [0 -1.5]]
//
// See the examples/ directory for a step-by-step walkthrough.
package symlu
