// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/field"
)

const (
	ctxVec    = "Vec"
	ctxSetVec = "SetVec"
)

// NewVector returns an n×1 column vector holding a copy of values.
// Errors: ErrInvalidDimensions when values is empty.
func NewVector[T field.Field[T]](values ...T) (*Dense[T], error) {
	if len(values) == 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]T, len(values))
	copy(data, values)

	return &Dense[T]{r: len(values), c: 1, data: data}, nil
}

// ZeroVector returns an n×1 column vector of field zeros.
func ZeroVector[T field.Field[T]](n int) (*Dense[T], error) {
	return New[T](n, 1)
}

// IsVector reports whether m has exactly one column or exactly one row.
func (m *Dense[T]) IsVector() bool { return m.c == 1 || m.r == 1 }

// Len returns the number of elements of a vector (rows*cols for any shape).
func (m *Dense[T]) Len() int { return len(m.data) }

// Vec is single-index sugar: (i, 0) on a column vector, (0, i) on a row vector.
// Errors: ErrNotVector for other shapes; ErrOutOfRange for a bad index.
func (m *Dense[T]) Vec(i int) (T, error) {
	var zero T
	if !m.IsVector() {
		return zero, fmt.Errorf("Dense.%s(%d): %w", ctxVec, i, ErrNotVector)
	}
	if i < 0 || i >= len(m.data) {
		return zero, fmt.Errorf("Dense.%s(%d): %w", ctxVec, i, ErrOutOfRange)
	}

	// Row-major storage makes both vector orientations contiguous.
	return m.data[i], nil
}

// SetVec is the single-index counterpart of Set. Same errors as Vec.
func (m *Dense[T]) SetVec(i int, v T) error {
	if !m.IsVector() {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetVec, i, ErrNotVector)
	}
	if i < 0 || i >= len(m.data) {
		return fmt.Errorf("Dense.%s(%d): %w", ctxSetVec, i, ErrOutOfRange)
	}
	m.data[i] = v

	return nil
}

// Values returns a copy of a vector's elements in index order.
// Errors: ErrNotVector for non-vector shapes.
func (m *Dense[T]) Values() ([]T, error) {
	if !m.IsVector() {
		return nil, fmt.Errorf("Dense.Values: %w", ErrNotVector)
	}
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out, nil
}

// ---------- vector algebra ----------
//
// The functions below accept any Expr with one row or one column. Row and
// column vectors of equal length mix freely; element k is (k, 0) or (0, k).
// Products are bilinear: no conjugation is applied to Complex operands.

const (
	opDot       = "Dot"
	opNorm      = "Norm"
	opNormalize = "Normalize"
	opCross     = "Cross"
)

// elem reads element k of a vector expression.
func elem[T field.Field[T]](e Expr[T], k int) T {
	if e.Cols() == 1 {
		return e.Eval(k, 0)
	}

	return e.Eval(0, k)
}

// Dot returns Σ a_k·b_k.
// Errors: ErrNilMatrix, ErrNotVector, ErrDimensionMismatch.
func Dot[T field.Field[T]](a, b Expr[T]) (T, error) {
	n, err := ValidateSameLength(a, b)
	if err != nil {
		var zero T
		return zero, matrixErrorf(opDot, err)
	}
	sum := field.Zero[T]()
	for k := 0; k < n; k++ {
		sum = sum.Add(elem(a, k).Mul(elem(b, k)))
	}

	return sum, nil
}

// NormSquared returns Σ v_k·v_k.
func NormSquared[T field.Field[T]](v Expr[T]) (T, error) {
	s, err := Dot(v, v)
	if err != nil {
		return s, matrixErrorf(opNorm, err)
	}

	return s, nil
}

// Norm returns the Euclidean length √(Σ v_k·v_k).
// Errors: shape errors; field.ErrDomain if the field has no root of the sum.
func Norm[T field.Field[T]](v Expr[T]) (T, error) {
	s, err := NormSquared(v)
	if err != nil {
		return s, err
	}
	r, err := s.Sqrt()
	if err != nil {
		return r, matrixErrorf(opNorm, err)
	}

	return r, nil
}

// Normalize returns v / Norm(v) with v's shape.
// Errors: shape errors; field.ErrDivisionByZero for the zero vector.
func Normalize[T field.Field[T]](v Expr[T]) (*Dense[T], error) {
	norm, err := Norm(v)
	if err != nil {
		return nil, matrixErrorf(opNormalize, err)
	}
	out := newDense[T](v.Rows(), v.Cols())
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			if out.data[i*out.c+j], err = v.Eval(i, j).Div(norm); err != nil {
				return nil, matrixErrorf(opNormalize, err)
			}
		}
	}

	return out, nil
}

// Orthogonal reports |a·b| < tol.
// Errors: same as Dot.
func Orthogonal[T field.Field[T]](a, b Expr[T], tol float64) (bool, error) {
	d, err := Dot(a, b)
	if err != nil {
		return false, err
	}

	return d.Abs() < tol, nil
}

// requireLen checks both operands are vectors of exactly n elements.
func requireLen[T field.Field[T]](a, b Expr[T], n int) error {
	got, err := ValidateSameLength(a, b)
	if err != nil {
		return err
	}
	if got != n {
		return fmt.Errorf("length %d, want %d: %w", got, n, ErrDimensionMismatch)
	}

	return nil
}

// Cross2 returns the scalar a_x·b_y − a_y·b_x of two 2-vectors.
// Errors: shape errors, ErrDimensionMismatch unless both have 2 elements.
func Cross2[T field.Field[T]](a, b Expr[T]) (T, error) {
	if err := requireLen(a, b, 2); err != nil {
		var zero T
		return zero, matrixErrorf(opCross, err)
	}

	return elem(a, 0).Mul(elem(b, 1)).Sub(elem(a, 1).Mul(elem(b, 0))), nil
}

// Cross3 returns the 3×1 column vector a × b.
// Errors: shape errors, ErrDimensionMismatch unless both have 3 elements.
func Cross3[T field.Field[T]](a, b Expr[T]) (*Dense[T], error) {
	if err := requireLen(a, b, 3); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	return NewVector(cross3(a, b)...)
}

// Cross4 applies the 3-D cross product to the x, y, z components of two
// 4-vectors; w of the result is zero.
// Errors: shape errors, ErrDimensionMismatch unless both have 4 elements.
func Cross4[T field.Field[T]](a, b Expr[T]) (*Dense[T], error) {
	if err := requireLen(a, b, 4); err != nil {
		return nil, matrixErrorf(opCross, err)
	}

	return NewVector(append(cross3(a, b), field.Zero[T]())...)
}

func cross3[T field.Field[T]](a, b Expr[T]) []T {
	ax, ay, az := elem(a, 0), elem(a, 1), elem(a, 2)
	bx, by, bz := elem(b, 0), elem(b, 1), elem(b, 2)

	return []T{
		ay.Mul(bz).Sub(az.Mul(by)),
		az.Mul(bx).Sub(ax.Mul(bz)),
		ax.Mul(by).Sub(ay.Mul(bx)),
	}
}
