// SPDX-License-Identifier: MIT

// Package matrix - in-place arithmetic kernels on *Dense.
//
// Purpose:
//   - Mutating counterparts of Add/Sub/Scale/Mul (see api.go for the
//     allocating facades, which are Clone + these kernels).
//
// Failure atomicity:
//   - Add/Sub validate before touching a single cell.
//   - MulBy computes into a transient buffer and swaps it in only after the
//     whole product is ready.

package matrix

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opDet       = "Det"
	opDetLU     = "DetLU"
	opCofactors = "Cofactors"
	opInverse   = "Inverse"
)

// Add performs m += b element-wise.
// MAIN DESCRIPTION:
//   - In-place sum of two matrices of identical, non-empty shape.
//
// Implementation:
//   - Stage 1: ValidateElementwise (nil → shape → non-empty).
//   - Stage 2: single flat loop over the shared row-major layout.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (different shapes, or either operand
//     has zero rows/cols). m is unchanged on error.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Add(b *Dense) error {
	return m.addSub(b, +1, opAdd)
}

// Sub performs m -= b element-wise. Same contract as Add.
func (m *Dense) Sub(b *Dense) error {
	return m.addSub(b, -1, opSub)
}

// addSub computes m[i] = m[i] + sign*b[i] for sign ∈ {+1, -1}.
// Keeping sign as a float avoids a branch in the hot loop; for sign == -1 the
// result equals m[i] - b[i] exactly.
func (m *Dense) addSub(b *Dense, sign float64, opTag string) error {
	if err := ValidateElementwise(m, b); err != nil {
		return matrixErrorf(opTag, err)
	}

	for idx := range m.data {
		m.data[idx] += sign * b.data[idx]
	}

	return nil
}

// ScaleBy multiplies every cell by alpha in place.
// Always succeeds; a no-op on an empty matrix.
//
// Complexity: O(r*c).
func (m *Dense) ScaleBy(alpha float64) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// MulBy replaces m with the matrix product m × b.
// MAIN DESCRIPTION:
//   - result[i][j] = Σ_k m[i][k] * b[k][j], shape Rows(m) × Cols(b).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (m.Cols == b.Rows).
//   - Stage 2: accumulate into a fresh buffer in fixed i→j→k order.
//   - Stage 3: swap the buffer in and update the column count.
//
// Behavior highlights:
//   - m is untouched until Stage 3, so a failure never leaves it half-written.
//   - b may alias m (m.MulBy(m) squares a square matrix).
//   - Empty shapes are legal when conformable: 2×0 × 0×3 yields a 2×3 zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) for the transient buffer.
func (m *Dense) MulBy(b *Dense) error {
	if err := ValidateMulCompatible(m, b); err != nil {
		return matrixErrorf(opMul, err)
	}

	rows, inner, cols := m.r, m.c, b.c
	tmp := newBuffer(rows, cols)

	var i, j, k int
	var sum float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			sum = 0
			for k = 0; k < inner; k++ {
				sum += m.data[i*inner+k] * b.data[k*cols+j]
			}
			tmp[i*cols+j] = sum
		}
	}

	m.c, m.data = cols, tmp

	return nil
}
