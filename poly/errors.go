// SPDX-License-Identifier: MIT

package poly

import "errors"

var (
	// ErrUnresolved is returned by Polynomial.Value while a monomial still
	// carries a symbolic term.
	ErrUnresolved = errors.New("poly: value not yet determined")

	// ErrNonIntegrable is returned when integrating name^-1, whose
	// antiderivative is logarithmic and outside the polynomial domain.
	ErrNonIntegrable = errors.New("poly: term is not integrable as a polynomial")

	// ErrNoField is returned when a zero-value Polynomial, which carries no
	// numeric field, is asked for a scalar.
	ErrNoField = errors.New("poly: polynomial has no field")
)
