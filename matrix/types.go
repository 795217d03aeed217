// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file holds ONLY the public Matrix
// interface; errors and options live in dedicated files (errors.go, options.go).
package matrix

import "github.com/katalvlaran/symlu/field"

// Matrix represents a two-dimensional mutable array of field values.
// Every entry belongs to the matrix's Field.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Field returns the numeric field of the entries.
	Field() field.Field

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (field.Value, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices, ErrNilValue for nil v and
	// ErrMixedFields when v belongs to another field kind.
	Set(i, j int, v field.Value) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}
