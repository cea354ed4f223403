// SPDX-License-Identifier: MIT

package linalg

import (
	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// Inverse returns a⁻¹ for a square a.
// Sizes 1–3 use closed forms (adjugate / determinant); larger sizes use InverseLU.
//
// The closed forms reject |det| ≤ eps while InverseLU rejects a largest pivot
// ≤ eps, so near the threshold the two paths can disagree on one matrix.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare.
//   - matrix.ErrSingular when the decomposition is singular or a closed-form
//     determinant has magnitude ≤ eps.
//
// Options: WithEpsilon, WithLogger (general path only).
func Inverse[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateSquare[T](a); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	switch a.Rows() {
	case 1:
		v := a.Eval(0, 0)
		if singularDet(v, gatherOptions(opts...).eps) {
			return nil, linalgErrorf(opInverse, matrix.ErrSingular)
		}
		inv, err := field.One[T]().Div(v)
		if err != nil {
			return nil, linalgErrorf(opInverse, err)
		}

		return matrix.NewVector(inv)
	case 2:
		return Inverse2(a, opts...)
	case 3:
		return Inverse3(a, opts...)
	default:
		return InverseLU(a, opts...)
	}
}

// InverseLU decomposes a once and solves L·y = P·e_c, U·x = y for every column c
// of the identity; x becomes column c of the inverse.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrSingular.
func InverseLU[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	lup, err := Decompose(a, opts...)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return lup.Inverse()
}

// Inverse2 returns [[d, −b], [−c, a]] / (ad − bc).
// Errors: shape errors; matrix.ErrSingular when |ad − bc| ≤ eps (WithEpsilon).
func Inverse2[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := requireSize(a, 2); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	m := a.ToRows()
	adj := [][]T{
		{m[1][1], m[0][1].Neg()},
		{m[1][0].Neg(), m[0][0]},
	}

	return divideAdjugate(adj, det2(m), gatherOptions(opts...).eps)
}

// Inverse3 returns adj(A) / det(A) for a 3×3 matrix.
// Errors: shape errors; matrix.ErrSingular when |det| ≤ eps (WithEpsilon).
func Inverse3[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := requireSize(a, 3); err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	m := a.ToRows()
	cross := func(r1, c1, r2, c2, r3, c3, r4, c4 int) T {
		return m[r1][c1].Mul(m[r2][c2]).Sub(m[r3][c3].Mul(m[r4][c4]))
	}
	adj := [][]T{
		{cross(1, 1, 2, 2, 1, 2, 2, 1), cross(0, 2, 2, 1, 0, 1, 2, 2), cross(0, 1, 1, 2, 0, 2, 1, 1)},
		{cross(1, 2, 2, 0, 1, 0, 2, 2), cross(0, 0, 2, 2, 0, 2, 2, 0), cross(0, 2, 1, 0, 0, 0, 1, 2)},
		{cross(1, 0, 2, 1, 1, 1, 2, 0), cross(0, 1, 2, 0, 0, 0, 2, 1), cross(0, 0, 1, 1, 0, 1, 1, 0)},
	}

	return divideAdjugate(adj, det3(m), gatherOptions(opts...).eps)
}

// divideAdjugate scales adj by 1/det into a fresh matrix.
func divideAdjugate[T field.Field[T]](adj [][]T, det T, eps float64) (*matrix.Dense[T], error) {
	if singularDet(det, eps) {
		return nil, linalgErrorf(opInverse, matrix.ErrSingular)
	}
	invDet, err := field.One[T]().Div(det)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	m, err := matrix.FromRows(adj)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}

	return matrix.Scaled[T](m, invDet)
}

// singularDet treats an exact zero as singular even when eps is 0.
func singularDet[T field.Field[T]](det T, eps float64) bool {
	return det.IsZero() || det.Abs() <= eps
}
