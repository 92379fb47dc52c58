// SPDX-License-Identifier: MIT

package matrix

import "math"

// Equal reports whether m and b have the same shape and every pair of
// corresponding cells differs by less than DefaultEpsilon.
// MAIN DESCRIPTION:
//   - Never fails: differing shapes simply compare unequal.
//   - Short-circuits on the first mismatching cell.
//
// Behavior highlights:
//   - Two nil matrices are equal; nil vs non-nil is not.
//   - Two empty matrices of the same shape are equal.
//   - NaN never matches anything, itself included.
//
// Complexity:
//   - Time O(r*c) worst case, Space O(1).
func (m *Dense) Equal(b *Dense) bool {
	return m.EqualWith(b)
}

// EqualWith is Equal with a configurable tolerance (WithEpsilon).
func (m *Dense) EqualWith(b *Dense, opts ...Option) bool {
	if m == nil || b == nil {
		return m == b
	}
	if m.r != b.r || m.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps

	for idx := range m.data {
		// Written as !(d < eps) so that a NaN difference reports a mismatch.
		if !(math.Abs(m.data[idx]-b.data[idx]) < eps) {
			return false
		}
	}

	return true
}
