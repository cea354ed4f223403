// SPDX-License-Identifier: MIT

// Package matrix: the expression interface shared by containers and lazy nodes.
// This file intentionally contains ONLY the Expr contract; concrete storage
// lives in impl_dense.go and lazy nodes in impl_expression.go.

package matrix

import "github.com/katalvlaran/lvalgebra/field"

// Expr is anything that reports a shape and yields a value per cell.
// *Dense implements it directly; Add/Sub/Mul/Scale/Transpose build lazy nodes.
//
// Contract:
//   - Rows() and Cols() are positive and constant for the lifetime of the value.
//   - Eval(i, j) is defined for 0 ≤ i < Rows(), 0 ≤ j < Cols(); indices are not
//     re-validated on this hot path (Materialize only calls it in range).
//   - Eval performs no caching: nodes recompute on every call.
type Expr[T field.Field[T]] interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// Eval returns the value at (i, j).
	Eval(i, j int) T
}
