// Package lu performs LU decomposition of a square matrix by symbolic
// constraint propagation.
//
// Instead of eliminating rows, the solver treats every entry of the factors as
// an unknown, multiplies the two symbolic factors, and reads each cell of the
// product as one equation in those unknowns:
//
//	Seed       L[i][j] = Lij for j ≤ i (Lii bound to 1), U[i][j] = Uij for j ≥ i
//	Product    P = L·U, every P[i][j] a polynomial in the unknowns
//	Propagate  visit P[i][j] row-major, substitute what is known; exactly one
//	           linear unknown remains, so P[i][j] = A[i][j] pins it
//	Extract    read the bound values back into numeric L and U
//
// For a 3×3 input:
//
//	A = | 1 -1 0 |    L = |  1   0  0 |    U = | 1 -1  0   |
//	    | 2  2 3 |        |  2   1  0 |        | 0  4  3   |
//	    |-1  3 2 |        | -1 0.5  1 |        | 0  0  0.5 |
//
// No pivoting is performed. A zero pivot makes the unknown below it vanish
// from the product and surfaces as ErrZeroPivot; visiting cells out of order
// leaves several unknowns in one cell and surfaces as ErrStructural. Both are
// reported as *CellError carrying the cell and its free unknowns.
//
// Doolittle computes the same factors numerically and is used to cross-check
// the symbolic result.
package lu
