// SPDX-License-Identifier: MIT

// Package field: the numeric-field capability consumed by poly, matrix and lu.
// This file declares the Value/Field interfaces, the backend Kind selector and
// the New factory. Concrete backends live in float.go and decimal.go.
package field

import (
	"fmt"
	"strings"
)

// Kind selects a numeric backend.
type Kind string

const (
	// KindFloat is float64 arithmetic with an epsilon-based zero/equality test.
	KindFloat Kind = "float"

	// KindDecimal is exact rational arithmetic printed in decimal form.
	KindDecimal Kind = "decimal"
)

// Value is a single element of a numeric field.
//
// Behavior highlights:
//   - Values are immutable; every operation returns a fresh Value.
//   - Operands must come from the same backend; mixing backends panics with
//     ErrMixedFields (programmer error, never user input).
//   - Only Quo can fail on user data (zero divisor).
type Value interface {
	// Field returns the backend that produced this value.
	Field() Field

	Add(Value) Value
	Sub(Value) Value
	Mul(Value) Value

	// Quo returns v / w, or ErrDivisionByZero when w is zero under the
	// backend's zero test.
	Quo(Value) (Value, error)

	// Pow raises the value to an integer power. 0^0 is 1.
	Pow(n int) Value

	Neg() Value

	// IsZero reports whether the value is zero under the backend's tolerance.
	IsZero() bool

	// Equal reports whether two values are equal under the backend's tolerance.
	Equal(Value) bool

	// Sign returns -1, 0 or +1. Values within tolerance of zero report 0.
	Sign() int

	// Float64 returns the nearest float64, used for presentation only.
	Float64() float64

	String() string
}

// Field constructs values of one backend.
type Field interface {
	Kind() Kind
	Zero() Value
	One() Value
	FromInt(n int64) Value
	FromFloat(f float64) (Value, error)
	Parse(s string) (Value, error)
}

// New returns the backend selected by kind, configured with opts.
//
// Errors:
//   - ErrUnknownKind if kind is not one of KindFloat, KindDecimal.
func New(kind Kind, opts ...Option) (Field, error) {
	o := gatherOptions(opts...)
	switch Kind(strings.ToLower(string(kind))) {
	case KindFloat:
		return NewFloat(o.eps), nil
	case KindDecimal:
		return NewDecimal(), nil
	default:
		return nil, fmt.Errorf("New(%q): %w", kind, ErrUnknownKind)
	}
}

// MustNew is like New but panics on error. Intended for tests and examples.
func MustNew(kind Kind, opts ...Option) Field {
	f, err := New(kind, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// Ints converts a row of integers into values of f.
func Ints(f Field, xs ...int64) []Value {
	out := make([]Value, len(xs))
	for i, x := range xs {
		out[i] = f.FromInt(x)
	}

	return out
}
