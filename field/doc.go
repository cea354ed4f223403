// SPDX-License-Identifier: MIT

// Package field defines the scalar contract every matrix element satisfies.
//
// A Field is closed under Add, Sub, Mul and Div, and carries a designated
// zero and identity. Two instances ship with the package:
//
//   - Real:    a float64 with a total order (Cmp, Less).
//   - Complex: a real/imaginary pair; ordered only by magnitude (Abs).
//
// Algorithms in matrix and linalg are written once against Field[T] and
// instantiate with either type without interface dispatch:
//
//	a := field.Real(3)
//	q, err := a.Div(field.Real(0)) // err: field.ErrDivisionByZero
//
// Pivot selection compares Abs() magnitudes, so Complex never needs an order
// on the values themselves.
package field
