// SPDX-License-Identifier: MIT

package poly

import (
	"strconv"

	"github.com/katalvlaran/symlu/field"
)

// Term is one symbol raised to an integer power.
// Equality and ordering are defined by Key alone.
type Term struct {
	Name string // symbol; empty means "no symbol"
	Exp  int    // integer exponent, may be zero or negative
}

// Var returns the first-power term of name.
func Var(name string) Term { return Term{Name: name, Exp: 1} }

// Pow returns name raised to exp.
func Pow(name string, exp int) Term { return Term{Name: name, Exp: exp} }

// Key returns the canonical key of the term:
//   - "" when Name is empty;
//   - Name when Exp is 1 or 0;
//   - Name + "^" + Exp otherwise.
//
// A zero exponent still renders the bare name; it is a placeholder left by
// multiplication (x * x^-1) and is not folded into the coefficient.
func (t Term) Key() string {
	if t.Name == "" {
		return ""
	}
	if t.Exp == 0 || t.Exp == 1 {
		return t.Name
	}

	return t.Name + "^" + strconv.Itoa(t.Exp)
}

// Eval returns v raised to the term's exponent.
func (t Term) Eval(v field.Value) field.Value { return v.Pow(t.Exp) }

// Equal reports whether both terms share a canonical key.
func (t Term) Equal(o Term) bool { return t.Key() == o.Key() }

// Less orders terms by canonical key, ascending.
func (t Term) Less(o Term) bool { return t.Key() < o.Key() }

func (t Term) String() string { return t.Key() }
