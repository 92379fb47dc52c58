// SPDX-License-Identifier: MIT

// Package matrix - opt-in kernels backed by gonum.
//
// The default determinant stays the cofactor expansion in
// impl_linear_algebra.go. The kernels here are for callers who accept
// rounding-level differences in exchange for O(n^3) cost.

package matrix

import "gonum.org/v1/gonum/mat"

// toGonum copies m into a fresh *mat.Dense. mat.NewDense adopts the slice it
// is given, so the copy keeps m's buffer exclusively owned by m.
// m must be non-empty.
func (m *Dense) toGonum() *mat.Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return mat.NewDense(m.r, m.c, buf)
}

// DetLU returns the determinant through gonum's LU factorization with
// partial pivoting.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (same validation as Det).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
//
// Notes:
//   - Results agree with Det up to rounding; never use DetLU where the
//     historical bit pattern matters.
func (m *Dense) DetLU() (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDetLU, err)
	}

	return mat.Det(m.toGonum()), nil
}
