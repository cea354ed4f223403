// SPDX-License-Identifier: MIT
// Package matrix provides the lazy expression layer: element-wise addition,
// subtraction, matrix product, scalar product (both orders) and transpose.
// Nodes validate shapes when they are BUILT and compute values only when a
// tree is materialized into a Dense.
//
// Purpose:
//   - Compose A + B*C - ... into a tree without allocating intermediates.
//   - Reject malformed expressions at construction time (fail-fast).
//   - Keep Materialize the single evaluation point: one Eval per destination cell.
//
// Notes:
//   - Nodes reference their operands; mutating an operand before materializing
//     changes the result. Build and materialize in the same statement.
//   - Mul recomputes the inner product on every Eval; nested products inside a
//     product are therefore re-evaluated per cell. Materialize the inner product
//     first when that cost matters.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/field"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opNeg         = "Neg"
	opTranspose   = "Transpose"
	opMaterialize = "Materialize"
	opAssign      = "Assign"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// binaryNode is the element-wise lhs ± rhs node.
type binaryNode[T field.Field[T]] struct {
	lhs, rhs Expr[T]
	negate   bool // false: lhs + rhs; true: lhs − rhs
}

func (n *binaryNode[T]) Rows() int { return n.lhs.Rows() }
func (n *binaryNode[T]) Cols() int { return n.lhs.Cols() }

func (n *binaryNode[T]) Eval(i, j int) T {
	if n.negate {
		return n.lhs.Eval(i, j).Sub(n.rhs.Eval(i, j))
	}

	return n.lhs.Eval(i, j).Add(n.rhs.Eval(i, j))
}

// mulNode is the matrix product lhs × rhs.
type mulNode[T field.Field[T]] struct {
	lhs, rhs Expr[T]
}

func (n *mulNode[T]) Rows() int { return n.lhs.Rows() }
func (n *mulNode[T]) Cols() int { return n.rhs.Cols() }

// Eval returns Σ_k lhs(i,k)·rhs(k,j), recomputed on each call.
func (n *mulNode[T]) Eval(i, j int) T {
	sum := n.lhs.Eval(i, 0).Mul(n.rhs.Eval(0, j))
	inner := n.lhs.Cols()
	for k := 1; k < inner; k++ {
		sum = sum.Add(n.lhs.Eval(i, k).Mul(n.rhs.Eval(k, j)))
	}

	return sum
}

// scaleNode multiplies every cell by a scalar, on the left or on the right.
type scaleNode[T field.Field[T]] struct {
	inner Expr[T]
	s     T
	left  bool // true: s·x; false: x·s
}

func (n *scaleNode[T]) Rows() int { return n.inner.Rows() }
func (n *scaleNode[T]) Cols() int { return n.inner.Cols() }

func (n *scaleNode[T]) Eval(i, j int) T {
	if n.left {
		return n.s.Mul(n.inner.Eval(i, j))
	}

	return n.inner.Eval(i, j).Mul(n.s)
}

// negNode flips the sign of every cell.
type negNode[T field.Field[T]] struct {
	inner Expr[T]
}

func (n *negNode[T]) Rows() int       { return n.inner.Rows() }
func (n *negNode[T]) Cols() int       { return n.inner.Cols() }
func (n *negNode[T]) Eval(i, j int) T { return n.inner.Eval(i, j).Neg() }

// transposeNode swaps the index mapping of its operand; no data is copied.
type transposeNode[T field.Field[T]] struct {
	inner Expr[T]
}

func (n *transposeNode[T]) Rows() int       { return n.inner.Cols() }
func (n *transposeNode[T]) Cols() int       { return n.inner.Rows() }
func (n *transposeNode[T]) Eval(i, j int) T { return n.inner.Eval(j, i) }

// Add builds the lazy element-wise sum a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), reported immediately.
func Add[T field.Field[T]](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &binaryNode[T]{lhs: a, rhs: b}, nil
}

// Sub builds the lazy element-wise difference a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch (shapes differ), reported immediately.
func Sub[T field.Field[T]](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return &binaryNode[T]{lhs: a, rhs: b, negate: true}, nil
}

// Mul builds the lazy matrix product a × b with shape a.Rows × b.Cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows), reported immediately.
func Mul[T field.Field[T]](a, b Expr[T]) (Expr[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return &mulNode[T]{lhs: a, rhs: b}, nil
}

// Scale builds the lazy right scalar product e·s.
// Errors: ErrNilMatrix.
func Scale[T field.Field[T]](e Expr[T], s T) (Expr[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &scaleNode[T]{inner: e, s: s}, nil
}

// ScaleLeft builds the lazy left scalar product s·e.
// Errors: ErrNilMatrix.
func ScaleLeft[T field.Field[T]](s T, e Expr[T]) (Expr[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &scaleNode[T]{inner: e, s: s, left: true}, nil
}

// Neg builds the lazy negation −e.
// Errors: ErrNilMatrix.
func Neg[T field.Field[T]](e Expr[T]) (Expr[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opNeg, err)
	}

	return &negNode[T]{inner: e}, nil
}

// Transpose builds the lazy transpose eᵀ (Rows and Cols swap).
// Errors: ErrNilMatrix.
func Transpose[T field.Field[T]](e Expr[T]) (Expr[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &transposeNode[T]{inner: e}, nil
}

// Materialize evaluates e into freshly allocated storage of shape e.Rows()×e.Cols().
// Every destination cell is evaluated exactly once, in row-major order.
//
// Errors: ErrNilMatrix; ErrInvalidDimensions if e reports a non-positive shape.
//
// Complexity: O(r*c) Eval calls; each Mul node costs O(inner) per Eval.
func Materialize[T field.Field[T]](e Expr[T]) (*Dense[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, matrixErrorf(opMaterialize, err)
	}
	rows, cols := e.Rows(), e.Cols()
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opMaterialize, ErrInvalidDimensions)
	}

	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}
	evalInto(out.data, e, rows, cols)

	return out, nil
}

// evalInto fills dst (len rows*cols) with e, row-major.
func evalInto[T field.Field[T]](dst []T, e Expr[T], rows, cols int) {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[base+j] = e.Eval(i, j)
		}
	}
}

// Assign materializes e into m. The shape of e must equal the shape of m.
// Evaluation goes into fresh storage that replaces m's buffer afterwards, so
// expressions that reference m itself (m = m·B) read only the old values.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (m *Dense[T]) Assign(e Expr[T]) error {
	if m == nil {
		return matrixErrorf(opAssign, ErrNilMatrix)
	}
	if err := ValidateSameShape[T](m, e); err != nil {
		return matrixErrorf(opAssign, err)
	}

	fresh := make([]T, m.r*m.c)
	evalInto(fresh, e, m.r, m.c)
	m.data = fresh

	return nil
}
