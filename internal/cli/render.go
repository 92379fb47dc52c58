// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/densemat/matrix"
)

// Render writes m as an aligned grid, one row per line.
// The 0×0 matrix renders as "[]".
func Render(w io.Writer, m *matrix.Dense, precision int) error {
	if m == nil {
		return matrix.ErrNilMatrix
	}
	if m.IsEmpty() {
		_, err := fmt.Fprintf(w, "[] (%dx%d)\n", m.Rows(), m.Cols())
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range m.ToRows() {
		for _, v := range row {
			if _, err := fmt.Fprint(tw, formatCell(v, precision), "\t"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(tw); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// RenderScalar writes a single value followed by a newline.
func RenderScalar(w io.Writer, v float64, precision int) error {
	_, err := fmt.Fprintln(w, formatCell(v, precision))
	return err
}

// formatCell prints v with fixed precision; -0 prints as 0.
func formatCell(v float64, precision int) string {
	if v == 0 {
		v = 0
	}
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', precision, 64)
	if isNegativeZero(s) {
		return s[1:]
	}
	return s
}

// isNegativeZero reports s is a rounded-to-zero negative like "-0.000".
func isNegativeZero(s string) bool {
	if len(s) < 2 || s[0] != '-' {
		return false
	}
	for _, r := range s[1:] {
		if r != '0' && r != '.' {
			return false
		}
	}
	return true
}
