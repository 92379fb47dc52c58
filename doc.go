// SPDX-License-Identifier: MIT

// Package densemat is a small dense linear-algebra toolkit built around one
// value type: a rectangular matrix of float64 stored row-major.
//
// What is inside?
//
//	matrix/        — the Dense value type: construction, copy/move, element
//	                 access, resizing, arithmetic, transpose, determinant,
//	                 cofactors, inverse and tolerance-based equality
//	internal/cli   — matrix literals ("1,2;3,4") and fixed-precision rendering
//	internal/config— YAML settings for the command-line tool
//	cmd/matcalc    — a cobra CLI over every matrix operation
//
// Determinants default to recursive cofactor expansion, which is exact in
// structure but O(n!) in time; an LU-based path (gonum) is available through
// matrix.WithDetAlgorithm(matrix.DetLU) for anything beyond toy sizes.
//
// Quick start:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 1}, {1, 2}})
//	inv, _ := a.Inverse()     // [[2,-1],[-1,1]]
//	det, _ := a.Det()         // 1
//
//	go install github.com/katalvlaran/densemat/cmd/matcalc@latest
//	matcalc det "1,1;1,2"
package densemat
