// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide non-mutating entry points (a new *Dense per call) over the
//     in-place kernels: each facade is Clone + kernel, nothing more.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Operands are never mutated.

package matrix

// ---------- Arithmetic (Clone + in-place kernel) ----------

// Add returns a + b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (see (*Dense).Add).
// Complexity: O(rc).
func Add(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	res := a.Clone()
	if err := res.Add(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Sub returns a − b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rc).
func Sub(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	res := a.Clone()
	if err := res.Sub(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Mul returns the matrix product a × b as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res := a.Clone()
	if err := res.MulBy(b); err != nil {
		return nil, err
	}

	return res, nil
}

// Scale returns m × alpha as a new matrix.
// Errors: ErrNilMatrix only; any shape (including empty) is accepted.
// Complexity: O(rc).
func Scale(m *Dense, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	res.ScaleBy(alpha)

	return res, nil
}

// ScaleLeft returns alpha × m. Scalar multiplication commutes, so the result
// is identical to Scale(m, alpha).
func ScaleLeft(alpha float64, m *Dense) (*Dense, error) { return Scale(m, alpha) }

// ---------- Aliases (discoverability) ----------

// Sum is an alias for Add.
func Sum(a, b *Dense) (*Dense, error) { return Add(a, b) }

// Diff is an alias for Sub.
func Diff(a, b *Dense) (*Dense, error) { return Sub(a, b) }

// Product is an alias for Mul.
func Product(a, b *Dense) (*Dense, error) { return Mul(a, b) }

// T is an alias for (*Dense).Transpose that also guards nil.
func T(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.Transpose()
}

// InverseOf is an alias for (*Dense).Inverse that also guards nil.
func InverseOf(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension Rows(m); requires a non-empty square m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}
