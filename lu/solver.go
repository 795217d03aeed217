// SPDX-License-Identifier: MIT

package lu

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/matrix"
	"github.com/katalvlaran/symlu/poly"
)

// Solver decomposes one square matrix A into unit-lower L and upper U by
// constraint propagation over the symbolic product L·U.
//
// Lifecycle:
//   - New seeds L and U with one fresh unknown per triangular cell;
//   - Product forms the symbolic n³ product once (memoized);
//   - Solve resolves cells in row-major order and assembles numeric factors.
//
// A Solver is single-use and not safe for concurrent use.
type Solver struct {
	a     matrix.Matrix
	f     field.Field
	n     int
	log   *slog.Logger
	lower [][]poly.Polynomial // seeded L, unit diagonal pre-resolved
	upper [][]poly.Polynomial // seeded U
	lname [][]string          // unknown of L[i][j], "" off the triangle
	uname [][]string          // unknown of U[i][j], "" off the triangle

	product [][]poly.Polynomial // nil until Product
	answers poly.Env
	solved  bool
}

// New validates a and runs the seed phase.
//
// Seed:
//   - j ≤ i: L[i][j] = 1·Lij, declared in the environment; diagonal entries
//     are bound to 1 up front, sub-diagonal ones stay unknown.
//   - j ≥ i: U[i][j] = 1·Uij, declared unknown.
//   - every other cell is the zero polynomial.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped);
//   - ErrNameCollision when a custom NameFunc repeats a name.
//
// Complexity: O(n²).
func New(a matrix.Matrix, opts ...Option) (*Solver, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("lu: New: %w", err)
	}
	n := a.Rows()
	o := gatherOptions(n, opts...)
	f := a.Field()

	s := &Solver{
		a:       a.Clone(),
		f:       f,
		n:       n,
		log:     o.logger,
		lower:   grid[poly.Polynomial](n),
		upper:   grid[poly.Polynomial](n),
		lname:   grid[string](n),
		uname:   grid[string](n),
		answers: make(poly.Env, n*(n+1)),
	}
	zero := poly.Zero(f)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s.lower[i][j], s.upper[i][j] = zero, zero
			if j <= i {
				name := o.naming(FactorL, i, j)
				if err := s.declare(name); err != nil {
					return nil, err
				}
				s.lname[i][j] = name
				s.lower[i][j] = poly.Symbol(f, name)
				if i == j {
					s.answers.Bind(name, f.One())
				}
			}
			if j >= i {
				name := o.naming(FactorU, i, j)
				if err := s.declare(name); err != nil {
					return nil, err
				}
				s.uname[i][j] = name
				s.upper[i][j] = poly.Symbol(f, name)
			}
		}
	}
	s.log.Debug("lu: seeded", "n", n, "field", string(f.Kind()), "unknowns", len(s.answers))

	return s, nil
}

// declare registers a fresh unknown, rejecting duplicates and empty names.
func (s *Solver) declare(name string) error {
	if _, dup := s.answers[name]; dup || name == "" {
		return fmt.Errorf("lu: New: %q: %w", name, ErrNameCollision)
	}
	s.answers.Declare(name, s.f.Zero())

	return nil
}

func grid[T any](n int) [][]T {
	g := make([][]T, n)
	for i := range g {
		g[i] = make([]T, n)
	}

	return g
}

// Decompose is New followed by Solve.
func Decompose(a matrix.Matrix, opts ...Option) (l, u *matrix.Dense, err error) {
	s, err := New(a, opts...)
	if err != nil {
		return nil, nil, err
	}

	return s.Solve()
}

// Size returns n.
func (s *Solver) Size() int { return s.n }

// Lower returns a copy of the seeded symbolic L.
func (s *Solver) Lower() [][]poly.Polynomial { return copyGrid(s.lower) }

// Upper returns a copy of the seeded symbolic U.
func (s *Solver) Upper() [][]poly.Polynomial { return copyGrid(s.upper) }

// Env returns a snapshot of the substitution environment.
func (s *Solver) Env() poly.Env { return s.answers.Clone() }

func copyGrid(g [][]poly.Polynomial) [][]poly.Polynomial {
	out := make([][]poly.Polynomial, len(g))
	for i := range g {
		out[i] = append([]poly.Polynomial(nil), g[i]...)
	}

	return out
}

// Product returns the symbolic product L·U, computing it on first use:
// product[i][j] = Σ_k L[i][k]·U[k][j].
//
// Complexity: O(n³) polynomial multiplications.
func (s *Solver) Product() [][]poly.Polynomial {
	if s.product == nil {
		s.product = grid[poly.Polynomial](s.n)
		for i := 0; i < s.n; i++ {
			for j := 0; j < s.n; j++ {
				acc := poly.Zero(s.f)
				for k := 0; k < s.n; k++ {
					acc = acc.Add(s.lower[i][k].Mul(s.upper[k][j]))
				}
				s.product[i][j] = acc
			}
		}
		s.log.Debug("lu: product formed", "n", s.n)
	}

	return copyGrid(s.product)
}

// Residual returns product[i][j] with every resolved unknown substituted.
//
// Errors:
//   - matrix.ErrOutOfRange (wrapped) for an invalid cell.
func (s *Solver) Residual(i, j int) (poly.Polynomial, error) {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return poly.Polynomial{}, fmt.Errorf("lu: Residual(%d,%d): %w", i, j, matrix.ErrOutOfRange)
	}
	s.Product()

	return s.product[i][j].Eval(s.answers), nil
}

// own returns the unknown seeded for cell (i, j): L below the diagonal, U on
// and above it.
func (s *Solver) own(i, j int) string {
	if j < i {
		return s.lname[i][j]
	}

	return s.uname[i][j]
}

// Resolve runs one extract step on cell (i, j):
//
//  1. substitute every resolved unknown into product[i][j];
//  2. if exactly one linear unknown u = c·x remains, bind
//     x = -(residual - u - A[i][j]) / c;
//  3. if none remains, the cell is already determined, provided its own
//     unknown was pinned earlier.
//
// Resolve is exported so callers can drive the pass themselves; cells must
// be visited in row-major order for every step to see a single unknown.
//
// Errors (as *CellError):
//   - ErrStructural: two or more unknowns, or a non-linear one;
//   - ErrZeroPivot: the cell's own unknown vanished under a zero pivot.
func (s *Solver) Resolve(i, j int) error {
	residual, err := s.Residual(i, j)
	if err != nil {
		return err
	}
	vars := residual.Vars()
	if len(vars) >= 2 {
		return &CellError{Row: i, Col: j, Unknowns: vars, Err: ErrStructural}
	}

	aij, err := s.a.At(i, j)
	if err != nil {
		return fmt.Errorf("lu: Resolve(%d,%d): %w", i, j, err)
	}

	free := residual.Unresolved()
	switch len(free) {
	case 0:
		if len(vars) == 0 {
			if name := s.own(i, j); name != "" {
				if _, ok := s.answers.Lookup(name); !ok {
					return &CellError{Row: i, Col: j, Unknowns: []string{name}, Err: ErrZeroPivot}
				}
			}
			return nil
		}
		// a lone symbol inside a higher-degree monomial is unreachable from
		// the seeded structure, but is still not solvable
		return &CellError{Row: i, Col: j, Unknowns: vars, Err: ErrStructural}
	case 1:
		return s.bind(i, j, residual, free[0], aij)
	default:
		return &CellError{Row: i, Col: j, Unknowns: vars, Err: ErrStructural}
	}
}

// bind solves residual = aij for the single linear unknown u.
func (s *Solver) bind(i, j int, residual poly.Polynomial, u poly.Monomial, aij field.Value) error {
	t := u.Terms()[0]
	if t.Exp != 1 {
		return &CellError{Row: i, Col: j, Unknowns: []string{t.Name}, Err: ErrStructural}
	}

	rest, err := residual.Sub(poly.New(s.f, u)).Sub(poly.Const(aij)).Value()
	if err != nil {
		return &CellError{Row: i, Col: j, Unknowns: residual.Vars(), Err: ErrStructural}
	}
	weight, err := rest.Neg().Quo(u.Coeff())
	if err != nil {
		return &CellError{Row: i, Col: j, Unknowns: []string{t.Name}, Err: ErrZeroPivot}
	}
	s.answers.Bind(t.Name, weight)
	s.log.Debug("lu: resolved", "cell", fmt.Sprintf("(%d,%d)", i, j), "unknown", t.Name, "value", weight.String())

	return nil
}

// Solve runs the full pipeline once: Product, then Resolve on every cell in
// row-major order (i ascending, then j ascending), then assembly of numeric
// L and U. The solver is terminal afterwards, whether or not Solve succeeded.
//
// Errors:
//   - ErrAlreadySolved on a second call;
//   - the first *CellError of the resolution pass;
//   - ErrUnresolved if a factor entry was never pinned.
func (s *Solver) Solve() (l, u *matrix.Dense, err error) {
	if s.solved {
		return nil, nil, ErrAlreadySolved
	}
	s.solved = true

	s.Product()
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if err = s.Resolve(i, j); err != nil {
				s.log.Info("lu: resolution failed", "error", err)
				return nil, nil, err
			}
		}
	}

	if l, err = s.assemble(s.lname); err != nil {
		return nil, nil, err
	}
	if u, err = s.assemble(s.uname); err != nil {
		return nil, nil, err
	}
	s.log.Info("lu: solved", "n", s.n, "field", string(s.f.Kind()))

	return l, u, nil
}

// assemble reads every seeded unknown of one factor from the environment;
// cells off the triangle stay zero.
func (s *Solver) assemble(names [][]string) (*matrix.Dense, error) {
	out, err := matrix.NewDense(s.f, s.n, s.n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < s.n; i++ {
		for j := 0; j < s.n; j++ {
			if names[i][j] == "" {
				continue
			}
			v, ok := s.answers.Lookup(names[i][j])
			if !ok {
				return nil, fmt.Errorf("lu: assemble(%d,%d) %s: %w", i, j, names[i][j], ErrUnresolved)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
