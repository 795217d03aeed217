// Package poly implements multivariate polynomials over a field.Field.
//
// The algebra is built in three layers:
//
//	Term        one symbol raised to an integer power (x^3).
//	Monomial    a coefficient times a name-unique, key-sorted set of Terms (4x^3y).
//	Polynomial  a canonical sum of Monomials, merged by Monomial.Hash (4x^3y-2z+1).
//
// Every operation returns a new value; nothing is mutated in place. Addition,
// multiplication, differentiation, integration and evaluation all funnel
// through one canonicalization step, so cancellation is automatic:
//
//	p := poly.Symbol(f, "x").Add(poly.Const(f.One()))
//	p.Sub(p).String() // "0"
//
// Evaluation substitutes symbols from an Env. A symbol bound with Env.Bind is
// replaced by its value; a symbol that is absent or only Declare'd stays
// symbolic. Polynomial.Resolve and Polynomial.Value report whether the result
// collapsed to a scalar.
package poly
