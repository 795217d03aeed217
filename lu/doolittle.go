// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
)

// Doolittle factors a square matrix numerically, without symbolic
// bookkeeping. It yields the same L and U as Solver and serves as its
// cross-check (the CLI --verify flag and the tests use it).
//
// For each pivot row i:
//
//	U[i][j] = A[i][j] - Σ_{k<i} L[i][k]·U[k][j]              for j ≥ i
//	L[j][i] = (A[j][i] - Σ_{k<i} L[j][k]·U[k][i]) / U[i][i]  for j > i
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped);
//   - ErrZeroPivot (as *CellError) when U[i][i] is zero and a row below
//     still divides by it.
//
// Complexity: O(n³) time, O(n²) space.
func Doolittle(a matrix.Matrix) (l, u *matrix.Dense, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("lu: Doolittle: %w", err)
	}
	n := a.Rows()
	f := a.Field()

	if l, err = matrix.Identity(f, n); err != nil {
		return nil, nil, fmt.Errorf("lu: Doolittle: %w", err)
	}
	if u, err = matrix.NewDense(f, n, n); err != nil {
		return nil, nil, fmt.Errorf("lu: Doolittle: %w", err)
	}

	// indices below are in range by construction; At/Set errors are ignored
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			av, _ := a.At(i, j)
			_ = u.Set(i, j, av.Sub(partial(f, l, u, i, j, i)))
		}
		pivot, _ := u.At(i, i)
		for j := i + 1; j < n; j++ {
			av, _ := a.At(j, i)
			w, qerr := av.Sub(partial(f, l, u, j, i, i)).Quo(pivot)
			if qerr != nil {
				return nil, nil, &CellError{Row: j, Col: i, Err: ErrZeroPivot}
			}
			_ = l.Set(j, i, w)
		}
	}

	return l, u, nil
}

// partial returns Σ_{k<upto} L[r][k]·U[k][c].
func partial(f field.Field, l, u *matrix.Dense, r, c, upto int) field.Value {
	acc := f.Zero()
	for k := 0; k < upto; k++ {
		lv, _ := l.At(r, k)
		uv, _ := u.At(k, c)
		acc = acc.Add(lv.Mul(uv))
	}

	return acc
}
