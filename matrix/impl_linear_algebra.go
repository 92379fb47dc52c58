// SPDX-License-Identifier: MIT

// Package matrix provides the structural and classical linear-algebra
// operations on *Dense: transpose, determinant, matrix of cofactors, inverse.
//
// Purpose:
//   - Keep the historical algorithms: determinant by recursive Laplace
//     expansion along the first row, inverse by adjugate / determinant.
//   - Return fresh matrices; receivers are never mutated here.
//
// Notes:
//   - Cofactor expansion is O(n!) in time. It is the default because its
//     rounding behavior is the reference; DetLU (impl_gonum.go) is the
//     opt-in O(n^3) alternative.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Shape: "<tag>: <underlying>". Call only with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cofactorSign returns (-1)^k as a float64.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// fillMinor writes into dst the (n-1)×(n-1) minor of the n×n row-major
// matrix src obtained by deleting row skipRow and column skipCol.
// dst must have length (n-1)*(n-1).
func fillMinor(dst, src []float64, n, skipRow, skipCol int) {
	var r, c, k int
	for r = 0; r < n; r++ {
		if r == skipRow {
			continue
		}
		for c = 0; c < n; c++ {
			if c == skipCol {
				continue
			}
			dst[k] = src[r*n+c]
			k++
		}
	}
}

// cofactorDet is the recursive Laplace expansion along row 0:
//
//	det(M) = Σ_i (-1)^i · M[0][i] · det(minor(M, 0, i)),   det([[x]]) = x.
//
// One minor buffer is allocated per recursion level and reused across i.
// Terms are accumulated left to right starting from 0.
func cofactorDet(a []float64, n int) float64 {
	if n == 1 {
		return a[0]
	}

	sub := make([]float64, (n-1)*(n-1))
	var res float64
	for i := 0; i < n; i++ {
		fillMinor(sub, a, n, 0, i)
		res += cofactorSign(i) * a[i] * cofactorDet(sub, n-1)
	}

	return res
}

// Transpose returns a new Cols×Rows matrix with r[j][i] = m[i][j].
//
// Errors:
//   - ErrNilMatrix, ErrInvalidShape (zero rows or zero cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Transpose() (*Dense, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.r, m.c
	res := &Dense{r: cols, c: rows, data: newBuffer(cols, rows)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[i*cols+j]
		}
	}

	return res, nil
}

// Det returns the determinant by recursive cofactor expansion along the
// first row.
// MAIN DESCRIPTION:
//   - Base case 1×1: the sole element.
//   - n×n: Σ_i (-1)^i · M[0][i] · det(minor(M, 0, i)).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (rows != cols, or 0×0).
//
// Complexity:
//   - Time O(n!), Space O(n^2) across the recursion.
//
// AI-Hints:
//   - For n beyond ~10 use DetLU or DetWith(WithDetAlgorithm(DetLU)).
func (m *Dense) Det() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return cofactorDet(m.data, m.r), nil
}

// DetWith returns the determinant using the kernel selected by options.
// With no options it is identical to Det.
func (m *Dense) DetWith(opts ...Option) (float64, error) {
	o := gatherOptions(opts...)
	if o.detAlg == DetLU {
		return m.DetLU()
	}

	return m.Det()
}

// Cofactors returns the matrix of algebraic complements (cofactors):
//
//	r[i][j] = (-1)^(i+j) · det(minor(M, i, j)).
//
// For a 1×1 input the result's sole cell is the input's sole cell, not the
// textbook cofactor 1. That convention is historical and possibly a bug; it is
// kept so Inverse and existing callers see unchanged numbers.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) Cofactors() (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	n := m.r
	res := &Dense{r: n, c: n, data: newBuffer(n, n)}
	if n == 1 {
		res.data[0] = m.data[0]

		return res, nil
	}

	sub := make([]float64, (n-1)*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			fillMinor(sub, m.data, n, i, j)
			res.data[i*n+j] = cofactorSign(i+j) * cofactorDet(sub, n-1)
		}
	}

	return res, nil
}

// Inverse returns M⁻¹ = Cofactors(Mᵀ) · (1/det M).
// MAIN DESCRIPTION:
//   - 1×1: [[1 / M00]] with no zero check; a zero cell yields +Inf/-Inf
//     (possibly a bug, kept for compatibility).
//   - n×n: fail with ErrSingular when |det| < DefaultSingularTol.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func (m *Dense) Inverse() (*Dense, error) {
	return m.InverseWith()
}

// InverseWith is Inverse with a configurable singularity threshold
// (WithSingularTol) and determinant kernel for the singularity check
// (WithDetAlgorithm). With no options it is identical to Inverse.
func (m *Dense) InverseWith(opts ...Option) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	if m.r == 1 {
		return &Dense{r: 1, c: 1, data: []float64{1.0 / m.data[0]}}, nil
	}

	det, err := m.DetWith(WithDetAlgorithm(o.detAlg))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if math.Abs(det) < o.singularTol {
		return nil, matrixErrorf(opInverse, fmt.Errorf("|det|=%g: %w", math.Abs(det), ErrSingular))
	}

	t, err := m.Transpose()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj, err := t.Cofactors()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	adj.ScaleBy(1 / det)

	return adj, nil
}
