// SPDX-License-Identifier: MIT

package lu

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/symlu/poly"
)

var (
	// ErrStructural is returned when a cell still holds two or more unknowns
	// (or a non-linear one) after substitution. The input needs pivoting, or
	// cells were resolved out of row-major order.
	ErrStructural = errors.New("lu: cell does not reduce to a single linear unknown")

	// ErrZeroPivot is returned when the unknown seeded for a cell vanished
	// because it was multiplied by a zero pivot, so its value cannot be
	// determined.
	ErrZeroPivot = errors.New("lu: zero pivot")

	// ErrAlreadySolved is returned by a second Solve on the same Solver.
	ErrAlreadySolved = errors.New("lu: solver already ran")

	// ErrNameCollision is returned when a naming function maps two cells to
	// the same unknown.
	ErrNameCollision = errors.New("lu: unknown names collide")

	// ErrUnresolved is poly.ErrUnresolved, returned when a factor entry was
	// never pinned by the resolution pass.
	ErrUnresolved = poly.ErrUnresolved
)

// CellError reports a failed resolution step together with the unknowns that
// were still free in the cell.
type CellError struct {
	Row, Col int      // zero-based cell
	Unknowns []string // free symbols after substitution, sorted
	Err      error    // one of the package sentinels
}

func (e *CellError) Error() string {
	if len(e.Unknowns) == 0 {
		return fmt.Sprintf("lu: Resolve(%d,%d): %v", e.Row, e.Col, e.Err)
	}

	return fmt.Sprintf("lu: Resolve(%d,%d) [%s]: %v", e.Row, e.Col, strings.Join(e.Unknowns, " "), e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }
