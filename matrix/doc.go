// Package matrix implements Dense, a dense, dynamically sized float64 matrix
// with value semantics.
//
// The package provides:
//
//   - Construction & lifecycle: NewDense, NewFromRows, NewIdentity, the usable
//     zero value, Clone (deep copy), CopyFrom (copy assignment), Move (storage
//     transfer that empties the source), Swap and Reset.
//   - Element access: At (read) and Set (write), both bounds-checked.
//   - Resizing: SetRows / SetCols keep the overlapping block and zero-fill the rest.
//   - In-place arithmetic: Add, Sub, ScaleBy, MulBy; allocating facades Add,
//     Sub, Mul, Scale, ScaleLeft.
//   - Linear algebra: Transpose, Det (recursive cofactor expansion), Cofactors,
//     Inverse (adjugate / determinant), plus the opt-in DetLU.
//   - Approximate equality: Equal with an absolute tolerance of 1e-7.
//
// Every failure is a sentinel from errors.go matched with errors.Is; a failed
// call leaves its receiver unchanged.
//
// Determinant and inverse deliberately use the O(n!) cofactor expansion so
// that numeric output stays identical to the historical results. They are
// meant for small matrices.
//
//	a, _ := matrix.NewDense(3, 3)
//	a.FillSequence()           // [[1,1,2],[1,2,3],[2,3,4]]
//	inv, _ := a.Inverse()      // [[1,-2,1],[-2,0,1],[1,1,-1]]
//	prod, _ := matrix.Mul(a, inv)
//	id, _ := matrix.NewIdentity(3)
//	_ = prod.Equal(id)         // true
package matrix
