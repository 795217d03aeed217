// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateNotNil accepts matrices and rejects nil in both spellings.
func TestValidateNotNil(t *testing.T) {
	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(field.MustNew(field.KindFloat), 1, 1)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateNotNil(m))
}

// TestValidateSquare follows the NotNil → Square priority.
func TestValidateSquare(t *testing.T) {
	f := field.MustNew(field.KindFloat)
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquare(mustDense(t, f, [][]float64{{1, 2}})), matrix.ErrNonSquare)
	require.NoError(t, matrix.ValidateSquare(mustDense(t, f, [][]float64{{1}})))
}

// TestValidateSameShape checks field before shape.
func TestValidateSameShape(t *testing.T) {
	fl := field.MustNew(field.KindFloat)
	dec := field.MustNew(field.KindDecimal)

	a := mustDense(t, fl, [][]float64{{1, 2}})
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustDense(t, dec, [][]float64{{1}})), matrix.ErrMixedFields)
	require.ErrorIs(t, matrix.ValidateSameShape(a, mustDense(t, fl, [][]float64{{1}})), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
}
