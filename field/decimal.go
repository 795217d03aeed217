// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"math/big"

	"github.com/govalues/decimal"
)

// Decimal is the exact backend. Values are unbounded rationals, so every
// Add, Sub, Mul, Quo and Pow result is exact and nothing overflows.
// Conversion from float64 goes through the shortest decimal representation
// (github.com/govalues/decimal), and values with a terminating decimal
// expansion print as decimals ("0.75"); the rest print as fractions ("1/3").
type Decimal struct{}

// NewDecimal returns the decimal backend.
func NewDecimal() Decimal { return Decimal{} }

func (Decimal) Kind() Kind { return KindDecimal }

func (Decimal) Zero() Value { return decValue{r: new(big.Rat)} }

func (Decimal) One() Value { return decValue{r: big.NewRat(1, 1)} }

func (Decimal) FromInt(n int64) Value { return decValue{r: big.NewRat(n, 1)} }

// FromFloat converts x through its shortest decimal representation, so 0.1
// becomes exactly 1/10. Magnitudes beyond 19 significant digits fall back to
// the exact binary value of x.
func (Decimal) FromFloat(x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("Decimal.FromFloat(%v): %w", x, ErrNonFinite)
	}
	if d, err := decimal.NewFromFloat64(x); err == nil {
		if r, ok := new(big.Rat).SetString(d.String()); ok {
			return decValue{r: r}, nil
		}
	}

	return decValue{r: new(big.Rat).SetFloat64(x)}, nil
}

// Parse accepts decimal literals with an optional exponent ("0.1", "-2.5e3")
// and fractions ("1/3").
func (Decimal) Parse(s string) (Value, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Decimal.Parse(%q): %w", s, ErrParse)
	}

	return decValue{r: r}, nil
}

// decValue never mutates r after construction; every operation allocates.
type decValue struct {
	r *big.Rat
}

func asRat(w Value) *big.Rat {
	dv, ok := w.(decValue)
	if !ok {
		panic(ErrMixedFields)
	}

	return dv.r
}

func (decValue) Field() Field { return Decimal{} }

func (a decValue) Add(b Value) Value { return decValue{r: new(big.Rat).Add(a.r, asRat(b))} }

func (a decValue) Sub(b Value) Value { return decValue{r: new(big.Rat).Sub(a.r, asRat(b))} }

func (a decValue) Mul(b Value) Value { return decValue{r: new(big.Rat).Mul(a.r, asRat(b))} }

func (a decValue) Quo(b Value) (Value, error) {
	d := asRat(b)
	if d.Sign() == 0 {
		return nil, fmt.Errorf("Decimal.Quo(%v/%v): %w", a, decValue{r: d}, ErrDivisionByZero)
	}

	return decValue{r: new(big.Rat).Quo(a.r, d)}, nil
}

// Pow panics with ErrDivisionByZero for zero raised to a negative power.
func (a decValue) Pow(n int) Value {
	if n < 0 && a.r.Sign() == 0 {
		panic(fmt.Errorf("Decimal.Pow(0^%d): %w", n, ErrDivisionByZero))
	}
	num, den := a.r.Num(), a.r.Denom()
	if n < 0 {
		num, den, n = den, num, -n
	}
	e := big.NewInt(int64(n))

	return decValue{r: new(big.Rat).SetFrac(
		new(big.Int).Exp(num, e, nil),
		new(big.Int).Exp(den, e, nil),
	)}
}

func (a decValue) Neg() Value { return decValue{r: new(big.Rat).Neg(a.r)} }

func (a decValue) IsZero() bool { return a.r.Sign() == 0 }

func (a decValue) Equal(b Value) bool { return a.r.Cmp(asRat(b)) == 0 }

func (a decValue) Sign() int { return a.r.Sign() }

func (a decValue) Float64() float64 {
	f, _ := a.r.Float64()

	return f
}

// String prints integers and terminating fractions in decimal form without
// trailing zeros, and everything else as a reduced fraction "p/q".
func (a decValue) String() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	scale, ok := terminating(a.r.Denom())
	if !ok {
		return a.r.RatString()
	}
	s := a.r.FloatString(scale)
	if d, err := decimal.Parse(s); err == nil {
		return d.Trim(0).String()
	}

	return s
}

// terminating reports whether 1/q has a finite decimal expansion, and if so
// how many fractional digits it needs. q must be positive.
func terminating(q *big.Int) (int, bool) {
	rest := new(big.Int).Set(q)
	twos := int(rest.TrailingZeroBits())
	rest.Rsh(rest, uint(twos))

	five, mod := big.NewInt(5), new(big.Int)
	fives := 0
	for {
		quo, _ := new(big.Int).QuoRem(rest, five, mod)
		if mod.Sign() != 0 {
			break
		}
		rest = quo
		fives++
	}
	if rest.Cmp(big.NewInt(1)) != 0 {
		return 0, false
	}

	return max(twos, fives), true
}
