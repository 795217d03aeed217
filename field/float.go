// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"strconv"
)

// Float is the fixed-precision backend: float64 arithmetic where zero and
// equality are decided within an absolute tolerance eps.
type Float struct {
	eps float64
}

// NewFloat returns a float backend with tolerance eps.
// A negative or non-finite eps panics (see WithEpsilon).
func NewFloat(eps float64) Float {
	WithEpsilon(eps) // validates

	return Float{eps: eps}
}

// Epsilon returns the configured tolerance.
func (f Float) Epsilon() float64 { return f.eps }

func (Float) Kind() Kind { return KindFloat }

func (f Float) Zero() Value { return floatValue{f: f, v: 0} }

func (f Float) One() Value { return floatValue{f: f, v: 1} }

func (f Float) FromInt(n int64) Value { return floatValue{f: f, v: float64(n)} }

// FromFloat wraps x; NaN and ±Inf are rejected with ErrNonFinite.
func (f Float) FromFloat(x float64) (Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("Float.FromFloat(%v): %w", x, ErrNonFinite)
	}

	return floatValue{f: f, v: x}, nil
}

// Parse accepts any literal understood by strconv.ParseFloat.
func (f Float) Parse(s string) (Value, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("Float.Parse(%q): %w", s, ErrParse)
	}

	return f.FromFloat(x)
}

type floatValue struct {
	f Float
	v float64
}

func asFloat(w Value) float64 {
	fv, ok := w.(floatValue)
	if !ok {
		panic(ErrMixedFields)
	}

	return fv.v
}

func (a floatValue) with(v float64) Value { return floatValue{f: a.f, v: v} }

func (a floatValue) Field() Field { return a.f }

func (a floatValue) Add(b Value) Value { return a.with(a.v + asFloat(b)) }

func (a floatValue) Sub(b Value) Value { return a.with(a.v - asFloat(b)) }

func (a floatValue) Mul(b Value) Value { return a.with(a.v * asFloat(b)) }

func (a floatValue) Quo(b Value) (Value, error) {
	d := asFloat(b)
	if math.Abs(d) <= a.f.eps || d == 0 {
		return nil, fmt.Errorf("Float.Quo(%v/%v): %w", a.v, d, ErrDivisionByZero)
	}

	return a.with(a.v / d), nil
}

func (a floatValue) Pow(n int) Value { return a.with(math.Pow(a.v, float64(n))) }

func (a floatValue) Neg() Value { return a.with(-a.v) }

func (a floatValue) IsZero() bool { return math.Abs(a.v) <= a.f.eps }

func (a floatValue) Equal(b Value) bool { return math.Abs(a.v-asFloat(b)) <= a.f.eps }

func (a floatValue) Sign() int {
	switch {
	case a.IsZero():
		return 0
	case a.v < 0:
		return -1
	default:
		return 1
	}
}

func (a floatValue) Float64() float64 { return a.v }

func (a floatValue) String() string {
	if a.v == 0 {
		return "0" // no "-0"
	}

	return strconv.FormatFloat(a.v, 'g', -1, 64)
}
