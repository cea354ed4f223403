// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing constructors (Zeros, Identity, ...).
//   - Provide eager one-shot operations (Sum, Diff, Product, ...) that build the
//     corresponding lazy node and materialize it immediately.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the underlying nodes.
//   - Validation is performed by the node constructors; facades only compose.

package matrix

import "github.com/katalvlaran/lvalgebra/field"

// ---------- Constructors & Utilities ----------

// Zeros returns a rows×cols matrix of field zeros. Alias of New.
func Zeros[T field.Field[T]](rows, cols int) (*Dense[T], error) {
	return New[T](rows, cols)
}

// Identity returns I_n: the field identity on the diagonal, zero elsewhere.
// Errors: ErrInvalidDimensions when n ≤ 0.
func Identity[T field.Field[T]](n int) (*Dense[T], error) {
	id, err := New[T](n, n)
	if err != nil {
		return nil, err
	}
	one := field.One[T]()
	for i := 0; i < n; i++ { // fixed i order; single write per diagonal cell
		id.data[i*n+i] = one
	}

	return id, nil
}

// ZerosLike returns a zero matrix with the same shape as e.
func ZerosLike[T field.Field[T]](e Expr[T]) (*Dense[T], error) {
	if err := ValidateNotNil(e); err != nil {
		return nil, err
	}

	return New[T](e.Rows(), e.Cols())
}

// IdentityLike returns I with dimension Rows(e); e must be square.
// Errors: ErrNilMatrix, ErrNonSquare.
func IdentityLike[T field.Field[T]](e Expr[T]) (*Dense[T], error) {
	if err := ValidateSquare(e); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return Identity[T](e.Rows())
}

// ---------- Eager operations (node + Materialize) ----------

// materialized is the shared tail of the eager facades.
func materialized[T field.Field[T]](e Expr[T], err error) (*Dense[T], error) {
	if err != nil {
		return nil, err
	}

	return Materialize(e)
}

// Sum returns a fresh a + b.
func Sum[T field.Field[T]](a, b Expr[T]) (*Dense[T], error) { return materialized[T](Add(a, b)) }

// Diff returns a fresh a − b.
func Diff[T field.Field[T]](a, b Expr[T]) (*Dense[T], error) { return materialized[T](Sub(a, b)) }

// Product returns a fresh a × b.
func Product[T field.Field[T]](a, b Expr[T]) (*Dense[T], error) { return materialized[T](Mul(a, b)) }

// Scaled returns a fresh e·s.
func Scaled[T field.Field[T]](e Expr[T], s T) (*Dense[T], error) { return materialized[T](Scale(e, s)) }

// Transposed returns a fresh eᵀ.
func Transposed[T field.Field[T]](e Expr[T]) (*Dense[T], error) { return materialized[T](Transpose(e)) }
