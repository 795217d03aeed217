// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and the kernels.
//   • Keep all data finite and integral so both fields compare exactly.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels onto their generic (non-*Dense) path.
type hide struct{ matrix.Matrix }

// fields returns both backends for table-driven loops.
func fields() []field.Field {
	return []field.Field{field.MustNew(field.KindFloat), field.MustNew(field.KindDecimal)}
}

// mustDense builds a Dense from a float grid or fails the test.
func mustDense(t *testing.T, f field.Field, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(f, rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt(t *testing.T, m matrix.Matrix, i, j int) field.Value {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
