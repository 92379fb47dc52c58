// SPDX-License-Identifier: MIT

// Package cli converts between matrix literals and matrix.Dense for the
// matcalc command line.
//
// Literal grammar: rows separated by ';', cells by ','; blanks around cells
// are ignored. "1,2;3,4" is the 2×2 matrix [[1,2],[3,4]]. The empty literal
// (or only blanks) is the 0×0 matrix.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/densemat/matrix"
)

const (
	rowSep  = ";"
	cellSep = ","
)

// ErrSyntax marks a literal that cannot be parsed.
var ErrSyntax = errors.New("cli: malformed matrix literal")

// ParseMatrix parses a literal into a new Dense.
// Ragged rows fail with matrix.ErrDimensionMismatch.
func ParseMatrix(lit string) (*matrix.Dense, error) {
	lit = strings.TrimSpace(lit)
	if lit == "" {
		return matrix.NewEmpty(), nil
	}

	rawRows := strings.Split(lit, rowSep)
	rows := make([][]float64, len(rawRows))
	for i, raw := range rawRows {
		cells := strings.Split(raw, cellSep)
		row := make([]float64, len(cells))
		for j, cell := range cells {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				return nil, fmt.Errorf("ParseMatrix: row %d cell %d is empty: %w", i, j, ErrSyntax)
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("ParseMatrix: row %d cell %d %q: %w", i, j, cell, ErrSyntax)
			}
			row[j] = v
		}
		rows[i] = row
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("ParseMatrix: %w", err)
	}

	return m, nil
}

// ParseScalar parses a single float argument.
func ParseScalar(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("ParseScalar: %q: %w", s, ErrSyntax)
	}
	return v, nil
}

// FormatLiteral renders m back into literal form with the given precision.
// A negative precision uses the shortest exact representation.
func FormatLiteral(m *matrix.Dense, precision int) string {
	var sb strings.Builder
	for i, row := range m.ToRows() {
		if i > 0 {
			sb.WriteString(rowSep)
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteString(cellSep)
			}
			sb.WriteString(formatCell(v, precision))
		}
	}
	return sb.String()
}
