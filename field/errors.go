// SPDX-License-Identifier: MIT

package field

import "errors"

// Every message is prefixed with "field: ..." for consistency with the other
// packages. Callers match with errors.Is.
var (
	// ErrUnknownKind is returned by New for an unsupported backend name.
	ErrUnknownKind = errors.New("field: unknown field kind")

	// ErrDivisionByZero is returned by Value.Quo when the divisor is zero
	// under the backend's zero test.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrParse is returned when a literal cannot be converted into a value.
	ErrParse = errors.New("field: cannot parse value")

	// ErrNonFinite is returned when NaN or ±Inf is converted into a value.
	ErrNonFinite = errors.New("field: NaN or Inf encountered")

	// ErrMixedFields is the panic value when operands come from different backends.
	ErrMixedFields = errors.New("field: operands belong to different fields")
)
