// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- 1. Mul ----------

// TestMul_Errors covers nil, mixed-field and inner-dimension failures.
func TestMul_Errors(t *testing.T) {
	f := field.MustNew(field.KindFloat)
	a := mustDense(t, f, [][]float64{{1, 2, 3}})
	b := mustDense(t, f, [][]float64{{1, 2}})

	_, err := matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Mul(a, typedNil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	d := mustDense(t, field.MustNew(field.KindDecimal), [][]float64{{1}, {2}, {3}})
	_, err = matrix.Mul(a, d)
	require.ErrorIs(t, err, matrix.ErrMixedFields)
}

// TestMul_Known2x3x2 checks a hand-computed product on both paths and fields.
func TestMul_Known2x3x2(t *testing.T) {
	for _, f := range fields() {
		a := mustDense(t, f, [][]float64{{1, 0, 2}, {-1, 3, 1}})
		b := mustDense(t, f, [][]float64{{3, 1}, {2, 1}, {1, 0}})
		want := mustDense(t, f, [][]float64{{5, 1}, {4, 2}})

		fast, err := matrix.Mul(a, b)
		require.NoError(t, err)
		ok, err := matrix.EqualApprox(fast, want)
		require.NoError(t, err)
		require.True(t, ok, fast)

		slow, err := matrix.Mul(hide{a}, hide{b})
		require.NoError(t, err)
		ok, err = matrix.EqualApprox(slow, want)
		require.NoError(t, err)
		require.True(t, ok, slow)
	}
}

// ---------- 2. EqualApprox ----------

// TestEqualApprox_Tolerance uses the float field's epsilon.
func TestEqualApprox_Tolerance(t *testing.T) {
	f := field.MustNew(field.KindFloat, field.WithEpsilon(1e-6))
	a := mustDense(t, f, [][]float64{{1, 2}})
	b := mustDense(t, f, [][]float64{{1 + 1e-7, 2}})
	c := mustDense(t, f, [][]float64{{1 + 1e-3, 2}})

	ok, err := matrix.EqualApprox(a, b)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.EqualApprox(a, c)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.EqualApprox(a, mustDense(t, f, [][]float64{{1}, {2}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// ---------- 3. Triangular shape checks ----------

// TestTriangularChecks covers positive and negative shapes.
func TestTriangularChecks(t *testing.T) {
	f := field.MustNew(field.KindDecimal)

	lower := mustDense(t, f, [][]float64{{1, 0}, {5, 1}})
	notUnit := mustDense(t, f, [][]float64{{2, 0}, {5, 1}})
	upper := mustDense(t, f, [][]float64{{4, 3}, {0, 0.5}})

	ok, err := matrix.IsUnitLower(lower)
	require.NoError(t, err)
	require.True(t, ok)

	ok, _ = matrix.IsUnitLower(notUnit)
	require.False(t, ok)

	ok, _ = matrix.IsUnitLower(upper)
	require.False(t, ok)

	ok, _ = matrix.IsUpper(upper)
	require.True(t, ok)

	ok, _ = matrix.IsUpper(lower)
	require.False(t, ok)

	_, err = matrix.IsUpper(mustDense(t, f, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
