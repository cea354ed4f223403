// SPDX-License-Identifier: MIT

package linalg

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// Determinant returns det(a) for a square a.
// Sizes 1–4 use closed forms (Det2, Det3, Det4); larger sizes use DeterminantLU.
// Both paths agree within floating tolerance.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Determinant[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (T, error) {
	if err := matrix.ValidateSquare[T](a); err != nil {
		var zero T

		return zero, linalgErrorf(opDeterminant, err)
	}
	switch a.Rows() {
	case 1:
		return a.Eval(0, 0), nil
	case 2:
		return Det2(a)
	case 3:
		return Det3(a)
	case 4:
		return Det4(a)
	default:
		return DeterminantLU(a, opts...)
	}
}

// DeterminantLU returns det(a) through LUP decomposition: the field zero when
// the decomposition is singular, otherwise (−1)^swaps · Π U[i][i].
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, field.ErrDivisionByZero.
func DeterminantLU[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (T, error) {
	lup, err := Decompose(a, opts...)
	if err != nil {
		var zero T

		return zero, linalgErrorf(opDeterminant, err)
	}

	return lup.Determinant(), nil
}

// requireSize checks that a is a non-nil n×n matrix.
func requireSize[T field.Field[T]](a *matrix.Dense[T], n int) error {
	if err := matrix.ValidateSquare[T](a); err != nil {
		return err
	}
	if a.Rows() != n {
		return fmt.Errorf("want %dx%d, got %dx%d: %w", n, n, a.Rows(), a.Cols(), matrix.ErrDimensionMismatch)
	}

	return nil
}

// Det2 returns ad − bc for a 2×2 matrix.
func Det2[T field.Field[T]](a *matrix.Dense[T]) (T, error) {
	if err := requireSize(a, 2); err != nil {
		var zero T

		return zero, linalgErrorf(opDeterminant, err)
	}

	return det2(a.ToRows()), nil
}

// Det3 returns the cofactor expansion along the first row of a 3×3 matrix.
func Det3[T field.Field[T]](a *matrix.Dense[T]) (T, error) {
	if err := requireSize(a, 3); err != nil {
		var zero T

		return zero, linalgErrorf(opDeterminant, err)
	}

	return det3(a.ToRows()), nil
}

// Det4 returns the cofactor expansion along the first row of a 4×4 matrix,
// each minor evaluated with the 3×3 closed form.
func Det4[T field.Field[T]](a *matrix.Dense[T]) (T, error) {
	if err := requireSize(a, 4); err != nil {
		var zero T

		return zero, linalgErrorf(opDeterminant, err)
	}
	m := a.ToRows()

	det := field.Zero[T]()
	for j := 0; j < 4; j++ {
		term := m[0][j].Mul(det3(minor(m, 0, j)))
		if j%2 == 0 {
			det = det.Add(term)
		} else {
			det = det.Sub(term)
		}
	}

	return det, nil
}

func det2[T field.Field[T]](m [][]T) T {
	return m[0][0].Mul(m[1][1]).Sub(m[0][1].Mul(m[1][0]))
}

func det3[T field.Field[T]](m [][]T) T {
	c0 := m[1][1].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][1]))
	c1 := m[1][0].Mul(m[2][2]).Sub(m[1][2].Mul(m[2][0]))
	c2 := m[1][0].Mul(m[2][1]).Sub(m[1][1].Mul(m[2][0]))

	return m[0][0].Mul(c0).Sub(m[0][1].Mul(c1)).Add(m[0][2].Mul(c2))
}

// minor returns m without row r and column c.
func minor[T any](m [][]T, r, c int) [][]T {
	out := make([][]T, 0, len(m)-1)
	for i, row := range m {
		if i == r {
			continue
		}
		next := make([]T, 0, len(row)-1)
		next = append(next, row[:c]...)
		next = append(next, row[c+1:]...)
		out = append(out, next)
	}

	return out
}
