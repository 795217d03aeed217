// SPDX-License-Identifier: MIT

// Package matrix provides core linear algebra primitives over a field.Field.
// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/symlu/field"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of field values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	f    field.Field
	r, c int           // number of rows and columns
	data []field.Value // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix over f initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice filled with f.Zero().
// Complexity: O(r*c) time and memory.
func NewDense(f field.Field, rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]field.Value, rows*cols)
	zero := f.Zero()
	for i := range data {
		data[i] = zero
	}

	return &Dense{f: f, r: rows, c: cols, data: data}, nil
}

// NewDenseFrom converts a rectangular float64 grid into a Dense over f.
//
// Errors:
//   - ErrInvalidDimensions for an empty grid or empty first row.
//   - ErrRagged when row lengths differ.
//   - field.ErrNonFinite (wrapped) for NaN/Inf entries.
func NewDenseFrom(f field.Field, rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(f, len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrRagged)
		}
		for j, x := range row {
			v, err := f.FromFloat(x)
			if err != nil {
				return nil, denseErrorf("NewDenseFrom", i, j, err)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// NewDenseValues builds a Dense from a rectangular grid of values that all
// belong to one field kind. The field is taken from the first entry.
func NewDenseValues(rows [][]field.Value) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	if rows[0][0] == nil {
		return nil, denseErrorf("NewDenseValues", 0, 0, ErrNilValue)
	}
	m, err := NewDense(rows[0][0].Field(), len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, fmt.Errorf("NewDenseValues: row %d has %d entries, want %d: %w", i, len(row), m.c, ErrRagged)
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix over f.
func Identity(f field.Field, n int) (*Dense, error) {
	m, err := NewDense(f, n, n)
	if err != nil {
		return nil, err
	}
	one := f.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Field returns the numeric field of the entries.
func (m *Dense) Field() field.Field { return m.f }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (field.Value, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v field.Value) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if v == nil {
		return denseErrorf("Set", row, col, ErrNilValue)
	}
	if v.Field().Kind() != m.f.Kind() {
		return denseErrorf("Set", row, col, ErrMixedFields)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix. Values are immutable and shared.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	copyData := make([]field.Value, len(m.data))
	copy(copyData, m.data)

	return &Dense{f: m.f, r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
