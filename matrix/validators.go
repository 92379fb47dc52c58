// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Keep kernels minimal by delegating nil/shape/square checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with matrixErrorf.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateElementwise is the Add/Sub guard: same shape AND neither operand
// zero-sized. A pair of 0×0 matrices nominally "match" but is still rejected.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateElementwise(a, b *Dense) error {
	if err := ValidateSameShape(a, b); err != nil {
		return err
	}
	if a.IsEmpty() || b.IsEmpty() {
		return validatorErrorf("ValidateElementwise: Empty", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (inner dimensions agree).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Used by Transpose.
//
// Errors: ErrNilMatrix, ErrInvalidShape.
func ValidateNonEmpty(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.IsEmpty() {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidShape)
	}

	return nil
}

// ValidateSquare checks that m is non-empty and square (Rows == Cols > 0).
// Used before Det, Cofactors and Inverse.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c || m.r == 0 {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDimension rejects negative dimensions (construction contract).
//
// Errors: ErrInvalidDimension.
func ValidateDimension(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return validatorErrorf("ValidateDimension", ErrInvalidDimension)
	}

	return nil
}
