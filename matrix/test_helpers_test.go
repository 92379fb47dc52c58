// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for kernel tests.
//   • Keep all data finite unless a test explicitly targets ±Inf/NaN.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// SeqDense RETURNS an r×c matrix filled with the reference pattern
// cell[i][j] = i+j, cell[0][0] = 1.
func SeqDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	m.FillSequence()

	return m
}

// IdentityDense RETURNS an n×n identity matrix.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	I, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return I
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
//
// Determinism:
//   - Deterministic per seed.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	m.Apply(func(_, _ int, _ float64) float64 {
		return rng.Float64()*2 - 1 // [-1,1)
	})

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustDims asserts the shape of m.
func MustDims(t testing.TB, m *matrix.Dense, r, c int) {
	t.Helper()
	if m.Rows() != r || m.Cols() != c {
		t.Fatalf("shape: got %dx%d, want %dx%d", m.Rows(), m.Cols(), r, c)
	}
}

// CompareExact ASSERTS m equals want bit-for-bit, cell by cell.
//
// Notes:
//   - Prefer for integer-like matrices where rounding cannot occur.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("rows: got %d, want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = 0; i < len(want); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("cols in row %d: got %d, want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < len(want[i]); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Fatalf("[%d,%d]: got %v, want %v", i, j, got, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS a and b are Equal under the default 1e-7 tolerance,
// printing both on failure.
func CompareClose(t testing.TB, want, got *matrix.Dense) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
	}
}
