// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/symlu/field"
	"github.com/katalvlaran/symlu/poly"
)

// Format writes m as rows of separator-joined entries, one row per line.
// Entries are printed with FormatOptions.precision significant digits and,
// unless WithoutZeroSnap is given, values that are zero under the field's
// test print as "0".
//
// Errors:
//   - ErrNilMatrix for a nil m; write errors from w.
//
// Complexity: O(r*c).
func Format(w io.Writer, m Matrix, opts ...FormatOption) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf("Format", err)
	}
	o := gatherFormatOptions(opts...)

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(o.separator)
			}
			v, err := m.At(i, j)
			if err != nil {
				return matrixErrorf("Format", err)
			}
			b.WriteString(formatValue(v, o))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// FormatPoly writes a grid of polynomials, one row per line, using the
// canonical Polynomial.String rendering for each cell.
func FormatPoly(w io.Writer, cells [][]poly.Polynomial, opts ...FormatOption) error {
	o := gatherFormatOptions(opts...)
	for _, row := range cells {
		parts := make([]string, len(row))
		for j, p := range row {
			parts[j] = p.String()
		}
		if _, err := fmt.Fprintln(w, strings.Join(parts, o.separator)); err != nil {
			return err
		}
	}

	return nil
}

func formatValue(v field.Value, o FormatOptions) string {
	if o.snapZero && v.IsZero() {
		return "0"
	}

	return strconv.FormatFloat(v.Float64(), 'g', o.precision, 64)
}
