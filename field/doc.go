// Package field provides the numeric fields that polynomial coefficients and
// matrix entries are drawn from.
//
// Two backends implement the same Value interface:
//
//   - Float:   float64 arithmetic; IsZero/Equal within an absolute epsilon
//     (DefaultEpsilon unless WithEpsilon is given).
//   - Decimal: exact rational arithmetic with decimal input and output
//     (github.com/govalues/decimal); IsZero/Equal are exact. Quotients that
//     do not terminate in base 10 print as fractions, e.g. "1/3".
//
// The rest of the module depends only on Value and Field, so the backend is a
// runtime choice:
//
//	f, err := field.New(field.KindDecimal)
//	x := f.FromInt(3)
//	y, err := x.Quo(f.FromInt(4)) // 0.75
package field
