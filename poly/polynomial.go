// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/symlu/field"
)

// Polynomial is a canonical sum of monomials over one field.
//
// Invariants (enforced by every constructor and operation):
//   - no two monomials share a Hash;
//   - no monomial has a zero coefficient;
//   - monomials keep the order in which their hash was first seen.
//
// The zero value has no field; build polynomials with New, Zero or Const.
type Polynomial struct {
	f     field.Field
	terms []Monomial
}

// Resolution is the outcome of asking a polynomial for its scalar value:
// either Value is set and Remaining is empty, or Remaining lists the
// monomials that still carry symbols.
type Resolution struct {
	Value     field.Value
	Remaining []Monomial
}

// Resolved reports whether the polynomial reduced to a scalar.
func (r Resolution) Resolved() bool { return len(r.Remaining) == 0 && r.Value != nil }

// New builds the canonical sum of ms in field f.
// Equal-hash monomials are merged by summing coefficients; zeros are dropped.
func New(f field.Field, ms ...Monomial) Polynomial { return combine(f, ms) }

// Zero returns the additive identity of f.
func Zero(f field.Field) Polynomial { return Polynomial{f: f} }

// Const returns the constant polynomial v.
func Const(v field.Value) Polynomial { return New(v.Field(), Constant(v)) }

// Symbol returns the polynomial 1·name.
func Symbol(f field.Field, name string) Polynomial { return New(f, Unknown(f, name)) }

// combine is the single canonicalization path shared by all operations.
// Time O(k) for k input monomials, plus hashing.
func combine(f field.Field, groups ...[]Monomial) Polynomial {
	idx := make(map[string]int)
	var acc []Monomial
	for _, g := range groups {
		for _, m := range g {
			if m.IsZero() {
				continue
			}
			if f == nil {
				f = m.coeff.Field()
			}
			h := m.Hash()
			if i, ok := idx[h]; ok {
				acc[i] = Monomial{coeff: acc[i].coeff.Add(m.coeff), terms: acc[i].terms}
				continue
			}
			idx[h] = len(acc)
			acc = append(acc, m)
		}
	}

	out := Polynomial{f: f}
	for _, m := range acc {
		if !m.coeff.IsZero() {
			out.terms = append(out.terms, m)
		}
	}

	return out
}

func (p Polynomial) fieldOr(q Polynomial) field.Field {
	if p.f != nil {
		return p.f
	}

	return q.f
}

// Field returns the polynomial's field (nil for the zero value).
func (p Polynomial) Field() field.Field { return p.f }

// Terms returns a copy of the monomials in canonical order.
func (p Polynomial) Terms() []Monomial { return append([]Monomial(nil), p.terms...) }

// Len returns the number of monomials.
func (p Polynomial) Len() int { return len(p.terms) }

// IsZero reports whether no monomial remains.
func (p Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Add returns p + q. Commutative and associative up to monomial order.
func (p Polynomial) Add(q Polynomial) Polynomial {
	return combine(p.fieldOr(q), p.terms, q.terms)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	out := Polynomial{f: p.f, terms: make([]Monomial, len(p.terms))}
	for i, m := range p.terms {
		out.terms[i] = m.Neg()
	}

	return out
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial { return p.Add(q.Neg()) }

// Mul distributes every pair of monomials and sums the products, so
// equal-hash products cancel.
// Time O(|p|·|q|).
func (p Polynomial) Mul(q Polynomial) Polynomial {
	products := make([]Monomial, 0, len(p.terms)*len(q.terms))
	for _, a := range p.terms {
		for _, b := range q.terms {
			products = append(products, a.Mul(b))
		}
	}

	return combine(p.fieldOr(q), products)
}

// Scale multiplies every coefficient by v.
func (p Polynomial) Scale(v field.Value) Polynomial { return p.Mul(Const(v)) }

// Diff differentiates every monomial with respect to name.
func (p Polynomial) Diff(name string) Polynomial {
	out := make([]Monomial, len(p.terms))
	for i, m := range p.terms {
		out[i] = m.Diff(name)
	}

	return combine(p.f, out)
}

// Integrate integrates every monomial with respect to name.
// No constant of integration is added.
//
// Errors:
//   - ErrNonIntegrable if any monomial carries name^-1.
func (p Polynomial) Integrate(name string) (Polynomial, error) {
	out := make([]Monomial, len(p.terms))
	for i, m := range p.terms {
		im, err := m.Integrate(name)
		if err != nil {
			return Polynomial{}, err
		}
		out[i] = im
	}

	return combine(p.f, out), nil
}

// Eval substitutes the resolved symbols of env into every monomial and sums
// the results (cancellation possible).
func (p Polynomial) Eval(env Env) Polynomial {
	out := make([]Monomial, len(p.terms))
	for i, m := range p.terms {
		out[i] = m.Eval(env)
	}

	return combine(p.f, out)
}

// Unresolved returns the monomials with exactly one free symbol.
func (p Polynomial) Unresolved() []Monomial {
	var out []Monomial
	for _, m := range p.terms {
		if m.Degree() == 1 {
			out = append(out, m)
		}
	}

	return out
}

// Vars returns the distinct symbol names still present, sorted.
func (p Polynomial) Vars() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range p.terms {
		for _, t := range m.terms {
			if _, ok := seen[t.Name]; !ok {
				seen[t.Name] = struct{}{}
				out = append(out, t.Name)
			}
		}
	}
	sort.Strings(out)

	return out
}

// Resolve reports the scalar value of p, or the monomials preventing it.
// An empty polynomial resolves to the field zero.
func (p Polynomial) Resolve() Resolution {
	var remaining []Monomial
	var value field.Value
	for _, m := range p.terms {
		if m.Degree() > 0 {
			remaining = append(remaining, m)
			continue
		}
		value = m.coeff // at most one constant after combine
	}
	if len(remaining) > 0 {
		return Resolution{Remaining: remaining}
	}
	if value == nil && p.f != nil {
		value = p.f.Zero()
	}

	return Resolution{Value: value}
}

// Value returns the scalar value of p.
//
// Errors:
//   - ErrUnresolved while any monomial carries a symbol;
//   - ErrNoField for a zero-value Polynomial.
func (p Polynomial) Value() (field.Value, error) {
	r := p.Resolve()
	if len(r.Remaining) > 0 {
		return nil, fmt.Errorf("Polynomial.Value(%s): %w", p, ErrUnresolved)
	}
	if r.Value == nil {
		return nil, ErrNoField
	}

	return r.Value, nil
}

// Equal reports whether p and q hold the same monomials, in any order.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	byHash := make(map[string]Monomial, len(q.terms))
	for _, m := range q.terms {
		byHash[m.Hash()] = m
	}
	for _, m := range p.terms {
		o, ok := byHash[m.Hash()]
		if !ok || !m.coeff.Equal(o.coeff) {
			return false
		}
	}

	return true
}

// String renders the canonical form: the leading monomial as is, every later
// monomial with a non-negative coefficient prefixed by "+", and "0" for the
// empty polynomial.
func (p Polynomial) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, m := range p.terms {
		if i > 0 && m.coeff.Sign() >= 0 {
			b.WriteByte('+')
		}
		b.WriteString(m.String())
	}

	return b.String()
}
