// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// Solve returns x with A·x = b through a single LUP decomposition.
//
// Errors: shape errors for a or b, matrix.ErrSingular, field.ErrDivisionByZero.
func Solve[T field.Field[T]](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	lup, err := Decompose(a, opts...)
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return lup.Solve(b)
}

// Residual returns Σ|(A·x − b)[i]|, the L1 norm of the residual vector.
// It is the quality check for Gauss-Seidel results that did not converge.
func Residual[T field.Field[T]](a, x, b *matrix.Dense[T]) (float64, error) {
	if err := matrix.ValidateSquare[T](a); err != nil {
		return 0, linalgErrorf(opResidual, err)
	}
	if err := matrix.ValidateVector(x, a.Rows()); err != nil {
		return 0, linalgErrorf(opResidual, err)
	}
	if err := matrix.ValidateVector(b, a.Rows()); err != nil {
		return 0, linalgErrorf(opResidual, err)
	}
	r, err := matrix.Of[T](a).Mul(x).Sub(b).Materialize()
	if err != nil {
		return 0, linalgErrorf(opResidual, err)
	}

	var total float64
	for i := 0; i < r.Rows(); i++ {
		total += r.Eval(i, 0).Abs()
	}

	return total, nil
}
