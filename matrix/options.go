// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Defaults reproduce the plain methods exactly: Det == DetWith(),
//     Inverse == InverseWith(), Equal == EqualWith().
//   - Panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by Equal: two cells match
	// when |a-b| < DefaultEpsilon.
	DefaultEpsilon = 1e-7

	// DefaultSingularTol is the |det| threshold below which Inverse reports
	// ErrSingular.
	DefaultSingularTol = 1e-7

	// DefaultDetAlgorithm keeps the recursive cofactor expansion.
	DefaultDetAlgorithm = DetCofactor
)

// DetAlgorithm selects the determinant kernel.
type DetAlgorithm int

const (
	// DetCofactor is the recursive Laplace expansion along the first row.
	// Exponential time; numeric output matches historical results bit-for-bit.
	DetCofactor DetAlgorithm = iota

	// DetLU delegates to gonum's partially pivoted LU factorization.
	// O(n^3); results may differ from DetCofactor at the rounding level.
	DetLU
)

// String returns the configuration name of the algorithm.
func (a DetAlgorithm) String() string {
	switch a {
	case DetCofactor:
		return "cofactor"
	case DetLU:
		return "lu"
	default:
		return "unknown"
	}
}

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicSingularTolInvalid = "matrix: WithSingularTol: tol must be finite, non-negative"
	panicDetAlgInvalid      = "matrix: WithDetAlgorithm: unknown algorithm"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps         float64      // >= 0; DefaultEpsilon
	singularTol float64      // >= 0; DefaultSingularTol
	detAlg      DetAlgorithm // DefaultDetAlgorithm
}

// Epsilon reports the resolved equality tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// SingularTol reports the resolved singularity threshold.
func (o Options) SingularTol() float64 { return o.singularTol }

// DetAlgorithm reports the resolved determinant kernel.
func (o Options) DetAlgorithm() DetAlgorithm { return o.detAlg }

// WithEpsilon sets the tolerance used by EqualWith.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// Notes:
//   - eps == 0 makes EqualWith strict: |a-b| < 0 never holds, so only
//     empty-vs-empty of equal shape compares equal.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithSingularTol sets the |det| threshold used by InverseWith.
// Panics when tol is negative, NaN or ±Inf.
func WithSingularTol(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicSingularTolInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// WithDetAlgorithm selects the determinant kernel for DetWith and InverseWith.
// InverseWith only uses it for the singularity check; the adjugate is always
// built from cofactors.
func WithDetAlgorithm(alg DetAlgorithm) Option {
	if alg != DetCofactor && alg != DetLU {
		panic(panicDetAlgInvalid)
	}

	return func(o *Options) { o.detAlg = alg }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Last-writer-wins.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		singularTol: DefaultSingularTol,
		detAlg:      DefaultDetAlgorithm,
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool {
	return math.IsNaN(x) || math.IsInf(x, 0)
}
