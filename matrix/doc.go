// Package matrix offers dense containers and a lazy expression layer over any
// scalar that satisfies field.Field.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix whose shape is fixed at construction.
//     Vectors are Dense values with one column; Vec/SetVec add [i] sugar.
//   - Vector algebra on any one-row or one-column Expr: Dot, Norm, Normalize,
//     Orthogonal, Cross2/Cross3/Cross4.
//   - Expression nodes (Add, Sub, Mul, Scale, ScaleLeft, Neg, Transpose) that validate
//     shapes when built and compute nothing until Materialize or Assign.
//   - Chain, a fluent builder over the same nodes that carries the first error.
//   - Sentinel errors shared with linalg (ErrDimensionMismatch, ErrSingular, ...).
//
// Example:
//
//	a, _ := matrix.NewFromRows(2, 2, [][]field.Real{{1, 2}, {3, 4}})
//	b, _ := matrix.NewFromRows(2, 2, [][]field.Real{{5, 6}, {7, 8}})
//	c, err := matrix.Of[field.Real](a).Add(b).Mul(a).Materialize()
//
// See linalg for decompositions, determinants, inverses and iterative solvers.
package matrix
