// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer with the explicit index formula i*cols + j.
//   - Express value semantics with Go idioms: the owned slice is never shared,
//     Clone deep-copies, Move hands the slice over and resets the source.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/CopyFrom: O(r*c);
//     Move/Swap/Reset: O(1); SetRows/SetCols: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxSetRows = "SetRows" // resize tag
	ctxSetCols = "SetCols" // resize tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <sentinel>"; the sentinel survives %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of float64 values.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//     It is nil whenever r == 0 or c == 0.
//
// The zero value is a ready-to-use empty 0×0 matrix. A Dense exclusively owns
// data: no method ever hands out or adopts a slice that another Dense can still
// reach, except Move and Swap, which transfer ownership explicitly.
type Dense struct {
	r, c int       // row and column counts (>= 0)
	data []float64 // contiguous row-major storage (len == r*c, nil when empty)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// newBuffer allocates a zero-filled buffer, or nil for an empty shape.
func newBuffer(rows, cols int) []float64 {
	if rows == 0 || cols == 0 {
		return nil
	}

	return make([]float64, rows*cols)
}

// NewEmpty returns a 0×0 matrix with no storage.
// Equivalent to new(Dense); provided for discoverability.
func NewEmpty() *Dense { return &Dense{} }

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimension.
//   - Stage 2: allocate zero-filled buffer (nil when either dimension is 0).
//
// Behavior highlights:
//   - Zero-sized shapes are legal: NewDense(0, 3) is a 0×3 matrix without storage.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimension (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if err := ValidateDimension(rows, cols); err != nil {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, err)
	}

	return &Dense{r: rows, c: cols, data: newBuffer(rows, cols)}, nil
}

// NewFromRows builds a matrix from a row slice, copying every value.
// All rows must have the same length; an empty input yields 0×0 and a set of
// zero-length rows yields len(rows)×0.
//
// Errors:
//   - ErrDimensionMismatch when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return NewEmpty(), nil
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d columns, want %d: %w",
				i, len(rows[i]), c, ErrDimensionMismatch)
		}
	}

	m := &Dense{r: r, c: c, data: newBuffer(r, c)}
	for i := 0; i < r; i++ {
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// NewIdentity(0) is the empty matrix.
//
// Errors:
//   - ErrInvalidDimension for n < 0.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has no cells (rows == 0 or cols == 0).
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// ---------- Lifecycle ----------

// Clone returns a deep copy with its own buffer.
// Mutations of the clone never reach the original and vice versa.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := &Dense{r: m.r, c: m.c, data: newBuffer(m.r, m.c)}
	copy(cp.data, m.data)

	return cp
}

// CopyFrom replaces m's contents with a deep copy of src (copy assignment).
// MAIN DESCRIPTION:
//   - Release the current buffer, then acquire a fresh copy of src.
//
// Behavior highlights:
//   - Self-assignment (m.CopyFrom(m)) is a no-op.
//   - The previous buffer of m is dropped, never reused.
//
// Errors:
//   - ErrNilMatrix when src is nil; m is left untouched.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) CopyFrom(src *Dense) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.CopyFrom: %w", err)
	}
	if m == src {
		return nil
	}

	buf := newBuffer(src.r, src.c)
	copy(buf, src.data)
	m.r, m.c, m.data = src.r, src.c, buf

	return nil
}

// Move transfers m's storage into a new Dense and resets m to 0×0.
// No values are copied. Move never fails; moving an empty (or nil) matrix
// yields an empty matrix.
func (m *Dense) Move() *Dense {
	if m == nil {
		return NewEmpty()
	}
	out := &Dense{r: m.r, c: m.c, data: m.data}
	m.r, m.c, m.data = 0, 0, nil

	return out
}

// Swap exchanges shape and storage with other in O(1).
func (m *Dense) Swap(other *Dense) {
	m.r, other.r = other.r, m.r
	m.c, other.c = other.c, m.c
	m.data, other.data = other.data, m.data
}

// Reset releases storage and returns m to the empty 0×0 state.
// Safe to call on an already-empty matrix.
func (m *Dense) Reset() {
	m.r, m.c, m.data = 0, 0, nil
}

// ---------- Element access ----------

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// At is a pure read: it never exposes a writable handle to the cell. Writes
// go through Set.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Any float64 is accepted, including ±Inf and NaN.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// RawRow returns a copy of row i, or ErrOutOfRange.
func (m *Dense) RawRow(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.RawRow(%d): %w", i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns a [][]float64 copy of the matrix (r slices of length c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// ---------- Dimension mutation ----------

// SetRows changes the row count to n.
// MAIN DESCRIPTION:
//   - Reallocate an n×cols zero-filled grid, copy the overlapping
//     min(rows, n)×cols block, then replace storage.
//
// Behavior highlights:
//   - n == Rows() is a no-op (no reallocation).
//   - Validation precedes any mutation.
//
// Errors:
//   - ErrInvalidDimension when n <= 0.
//
// Complexity:
//   - Time O(n*c), Space O(n*c).
func (m *Dense) SetRows(n int) error {
	if n <= 0 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetRows, n, ErrInvalidDimension)
	}
	if n == m.r {
		return nil
	}

	buf := newBuffer(n, m.c)
	// Same column count: the overlap is a contiguous prefix of the old buffer.
	copy(buf, m.data[:min(m.r, n)*m.c])
	m.r, m.data = n, buf

	return nil
}

// SetCols changes the column count to n, copying the overlapping
// rows×min(cols, n) block into a fresh zero-filled grid.
//
// Errors:
//   - ErrInvalidDimension when n <= 0.
//
// Complexity:
//   - Time O(r*n), Space O(r*n).
func (m *Dense) SetCols(n int) error {
	if n <= 0 {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetCols, n, ErrInvalidDimension)
	}
	if n == m.c {
		return nil
	}

	buf := newBuffer(m.r, n)
	keep := min(m.c, n)
	for i := 0; i < m.r; i++ {
		copy(buf[i*n:i*n+keep], m.data[i*m.c:i*m.c+keep])
	}
	m.c, m.data = n, buf

	return nil
}

// ---------- Visitors ----------

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
//
// Complexity: O(r*c), no allocations.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place, row-major order.
//
// Complexity: O(r*c), no allocations.
func (m *Dense) Apply(f func(i, j int, v float64) float64) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// FillSequence writes the reference fill pattern cell[i][j] = i+j and then
// overrides cell[0][0] with 1. Empty matrices are left untouched.
//
// For 2×2 this yields [[1,1],[1,2]]; for 3×3 [[1,1,2],[1,2,3],[2,3,4]].
func (m *Dense) FillSequence() {
	if m.IsEmpty() {
		return
	}
	m.Apply(func(i, j int, _ float64) float64 { return float64(i + j) })
	m.data[0] = 1
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// An empty matrix renders as "".
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
