// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation MUST return these sentinels (optionally wrapped with
// context) and tests MUST check them via errors.Is. No operation panics on a
// user-triggered error condition.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf("Op", ErrX) and
// accessors with denseErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil operand -> shape/index -> dimension mismatch -> square -> singular.

var (
	// ErrInvalidDimension is returned when a requested dimension is invalid:
	// negative rows/cols at construction, or a non-positive value passed to
	// SetRows/SetCols.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operands: Add/Sub with
	// different or zero-sized shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape signals an operation that needs at least one row and one
	// column (Transpose) was called on a zero-sized matrix.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrNonSquare signals that a non-empty square matrix was required but the
	// input wasn't (Det, Cofactors, Inverse).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrSingular is returned by Inverse when |det| falls below the singular
	// tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
// Keep it as an alias so errors.Is(err, ErrIndexOutOfBounds) remains true.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.
