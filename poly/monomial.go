// SPDX-License-Identifier: MIT

package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/symlu/field"
)

// Monomial is a coefficient times a canonical set of terms.
//
// Invariants (enforced by NewMonomial):
//   - term names are unique; duplicates are merged by summing exponents;
//   - terms are sorted ascending by Term.Key;
//   - a zero coefficient carries no terms.
//
// Monomials are values: every operation returns a new Monomial. The zero
// value Monomial{} has a nil coefficient, carries no field and behaves as
// zero in every operation.
type Monomial struct {
	coeff field.Value
	terms []Term
}

// NewMonomial builds a canonical monomial. coeff must be non-nil.
// Terms with an empty name carry no symbol and are skipped. A merged
// exponent of zero is kept as a placeholder term.
func NewMonomial(coeff field.Value, terms ...Term) Monomial {
	if coeff.IsZero() {
		return Monomial{coeff: coeff.Field().Zero()}
	}
	if len(terms) == 0 {
		return Monomial{coeff: coeff}
	}

	pos := make(map[string]int, len(terms))
	set := make([]Term, 0, len(terms))
	for _, t := range terms {
		if t.Name == "" {
			continue
		}
		if i, ok := pos[t.Name]; ok {
			set[i].Exp += t.Exp
			continue
		}
		pos[t.Name] = len(set)
		set = append(set, t)
	}
	sort.SliceStable(set, func(i, j int) bool { return set[i].Less(set[j]) })

	return Monomial{coeff: coeff, terms: set}
}

// Constant returns the term-free monomial v.
func Constant(v field.Value) Monomial { return Monomial{coeff: v}.canonical() }

// Unknown returns 1·name in field f.
func Unknown(f field.Field, name string) Monomial { return NewMonomial(f.One(), Var(name)) }

func (m Monomial) canonical() Monomial {
	if m.coeff == nil {
		return Monomial{}
	}
	if m.coeff.IsZero() {
		return Monomial{coeff: m.coeff.Field().Zero()}
	}

	return m
}

// Coeff returns the coefficient, nil for the zero value Monomial{}.
func (m Monomial) Coeff() field.Value { return m.coeff }

// Terms returns a copy of the canonical term set.
func (m Monomial) Terms() []Term { return append([]Term(nil), m.terms...) }

// Degree returns the number of distinct terms.
// Degree 1 marks a monomial with exactly one free symbol.
func (m Monomial) Degree() int { return len(m.terms) }

// IsZero reports whether the coefficient is zero.
func (m Monomial) IsZero() bool { return m.coeff == nil || m.coeff.IsZero() }

// Term returns the term named name, if present.
func (m Monomial) Term(name string) (Term, bool) {
	for _, t := range m.terms {
		if t.Name == name {
			return t, true
		}
	}

	return Term{}, false
}

// Hash concatenates the canonical keys of the terms in set order.
// Monomials with equal hashes are merged by Polynomial construction.
func (m Monomial) Hash() string {
	var b strings.Builder
	for _, t := range m.terms {
		b.WriteString(t.Key())
	}

	return b.String()
}

// Neg flips the coefficient sign.
func (m Monomial) Neg() Monomial {
	if m.coeff == nil {
		return m
	}

	return Monomial{coeff: m.coeff.Neg(), terms: m.terms}
}

// zeroOf returns the zero monomial in the field of the first operand that
// has one, or Monomial{} when neither does.
func zeroOf(ms ...Monomial) Monomial {
	for _, m := range ms {
		if m.coeff != nil {
			return Monomial{coeff: m.coeff.Field().Zero()}
		}
	}

	return Monomial{}
}

func (m Monomial) withCoeff(c field.Value) Monomial {
	return Monomial{coeff: c, terms: m.terms}.canonical()
}

// without returns the terms other than name, in order.
func (m Monomial) without(name string) []Term {
	out := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		if t.Name != name {
			out = append(out, t)
		}
	}

	return out
}

// Mul multiplies coefficients and sums exponents per distinct name.
// A zero product short-circuits to the zero monomial.
func (m Monomial) Mul(o Monomial) Monomial {
	if m.coeff == nil || o.coeff == nil {
		return zeroOf(m, o)
	}
	c := m.coeff.Mul(o.coeff)
	if c.IsZero() {
		return Monomial{coeff: c.Field().Zero()}
	}
	terms := make([]Term, 0, len(m.terms)+len(o.terms))
	terms = append(terms, m.terms...)
	terms = append(terms, o.terms...)

	return NewMonomial(c, terms...)
}

// Diff differentiates with respect to name.
//
// Behavior highlights:
//   - name absent (including constants) ⇒ zero monomial;
//   - otherwise coeff·exp, exponent decremented, and the term dropped only
//     when the new exponent is exactly 0.
func (m Monomial) Diff(name string) Monomial {
	t, ok := m.Term(name)
	if !ok {
		return zeroOf(m)
	}
	c := m.coeff.Mul(m.coeff.Field().FromInt(int64(t.Exp)))
	rest := m.without(name)
	if t.Exp-1 != 0 {
		rest = append(rest, Pow(name, t.Exp-1))
	}

	return NewMonomial(c, rest...)
}

// Integrate integrates with respect to name.
//
// Behavior highlights:
//   - name absent ⇒ the monomial is constant in name and gains the term name^1;
//   - otherwise the exponent is incremented and the coefficient divided by
//     the new exponent.
//
// Errors:
//   - ErrNonIntegrable when the new exponent would be 0 (name^-1).
func (m Monomial) Integrate(name string) (Monomial, error) {
	if m.IsZero() {
		return m, nil
	}
	t, ok := m.Term(name)
	if !ok {
		return NewMonomial(m.coeff, append(m.Terms(), Var(name))...), nil
	}
	exp := t.Exp + 1
	if exp == 0 {
		return Monomial{}, fmt.Errorf("Integrate(%s, %s): %w", m, name, ErrNonIntegrable)
	}
	c, err := m.coeff.Quo(m.coeff.Field().FromInt(int64(exp)))
	if err != nil {
		return Monomial{}, fmt.Errorf("Integrate(%s, %s): %w", m, name, err)
	}

	return NewMonomial(c, append(m.without(name), Pow(name, exp))...), nil
}

// Eval substitutes every resolved symbol of env.
// Absent or unresolved symbols stay symbolic.
func (m Monomial) Eval(env Env) Monomial {
	if m.coeff == nil {
		return m
	}
	c := m.coeff
	kept := make([]Term, 0, len(m.terms))
	for _, t := range m.terms {
		v, ok := env.Lookup(t.Name)
		if !ok {
			kept = append(kept, t)
			continue
		}
		c = c.Mul(t.Eval(v))
	}

	return NewMonomial(c, kept...)
}

// Equal reports structural equality: same hash and equal coefficients.
func (m Monomial) Equal(o Monomial) bool {
	if m.IsZero() || o.IsZero() {
		return m.IsZero() && o.IsZero()
	}

	return m.Hash() == o.Hash() && m.coeff.Equal(o.coeff)
}

// String renders the coefficient followed by the hash. A unit coefficient is
// omitted ("x"), -1 renders as a bare sign ("-x"), and a term-free monomial
// renders its numeral alone.
func (m Monomial) String() string {
	if m.coeff == nil {
		return "0"
	}
	h := m.Hash()
	one := m.coeff.Field().One()
	switch {
	case h == "":
		return m.coeff.String()
	case m.coeff.Equal(one):
		return h
	case m.coeff.Equal(one.Neg()):
		return "-" + h
	default:
		return m.coeff.String() + h
	}
}
