// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation.
// All functions perform strict fail-fast validation and return clear errors
// on nil operands, mixed fields and dimension mismatches.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf.
//   - Comparisons use the field's own zero/equality test (epsilon for the
//     float backend, exact for the decimal backend).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opEqualApprox = "EqualApprox"
	opUnitLower   = "IsUnitLower"
	opUpper       = "IsUpper"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil, same field) and inner dimensions.
//   - Stage 2: If A and B are *Dense, use i→k→j over the flat slices and skip
//     zero A[i,k]; otherwise use i→j→k through At.
//
// Errors:
//   - ErrNilMatrix, ErrMixedFields, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(a.Field(), aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i := 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k := 0; k < aCols; k++ {
					av := da.data[rowA+k]
					if av.IsZero() {
						continue
					}
					rowB = k * bCols
					for j := 0; j < bCols; j++ {
						res.data[rowR+j] = res.data[rowR+j].Add(av.Mul(db.data[rowB+j]))
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			current := res.f.Zero()
			for k := 0; k < aCols; k++ {
				av, err := a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av.IsZero() {
					continue
				}
				bv, err := b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current = current.Add(av.Mul(bv))
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// EqualApprox reports whether a and b have equal entries under the field's
// equality test.
//
// Errors:
//   - ErrNilMatrix, ErrMixedFields, ErrDimensionMismatch.
//
// Complexity: O(r*c).
func EqualApprox(a, b Matrix) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opEqualApprox, err)
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			av, _ := a.At(i, j) // indices validated by shape check
			bv, _ := b.At(i, j)
			if !av.Equal(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUnitLower reports whether m is square, has ones on the diagonal and
// zeros above it.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func IsUnitLower(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opUnitLower, err)
	}
	one := m.Field().One()
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v, _ := m.At(i, j)
			if i == j && !v.Equal(one) {
				return false, nil
			}
			if j > i && !v.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}

// IsUpper reports whether m is square with zeros strictly below the diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
func IsUpper(m Matrix) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf(opUpper, err)
	}
	n := m.Rows()
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			v, _ := m.At(i, j)
			if !v.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}
