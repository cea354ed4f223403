// SPDX-License-Identifier: MIT

// Package linalg - LUP decomposition with partial pivoting.
//
// Algorithm (right-looking, k = 0..n-1):
//  1. Scan rows k..n-1 of column k in the working copy; the FIRST row with the
//     largest magnitude wins (strict '>' keeps ties deterministic).
//  2. If that magnitude is ≤ eps, flag Singular and stop eliminating.
//  3. If the winner is not row k, swap rows k and maxRow in the working copy,
//     in the permutation, and in the already-computed columns 0..k-1 of L;
//     count the swap.
//  4. Row k of U is row k of the working copy from column k on.
//  5. For rows i > k: L[i][k] = W[i][k] / U[k][k]; W[i][j] -= L[i][k]*U[k][j], j ≥ k.
//
// Invariants when Singular is false:
//   - P·A = L·U.
//   - L is unit lower-triangular, U is upper-triangular with the pivots on its diagonal.
//   - SwapCount has the parity of the permutation, which fixes the determinant's sign.
//
// The caller's matrix is copied once (ToRows) and never mutated.
//
// Complexity: Time O(n³), Space O(n²).

package linalg

import (
	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
	"go.uber.org/zap"
)

// LUP is the result of Decompose.
type LUP[T field.Field[T]] struct {
	// L is unit lower-triangular.
	L *matrix.Dense[T]
	// U is upper-triangular; its diagonal holds the pivots.
	U *matrix.Dense[T]
	// P is the permutation matrix with P·A = L·U.
	P *matrix.Dense[T]
	// Perm is P as an index vector: row k of P·A is row Perm[k] of A.
	Perm []int
	// SwapCount is the number of row exchanges performed.
	SwapCount int
	// Singular is set when a pivot magnitude fell to eps or below. L, U and P
	// are then incomplete and must not be used for solves.
	Singular bool

	n    int
	l, u [][]T // working views backing L and U
}

// N returns the dimension of the decomposed matrix.
func (r *LUP[T]) N() int { return r.n }

// Decompose computes the LUP factorization of the square matrix a.
//
// A singular matrix is NOT an error: the result comes back with Singular set.
// Errors are reserved for invalid input and arithmetic failures:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (a shape error).
//   - field.ErrDivisionByZero when the field's Div rejects a pivot that passed
//     the eps guard. An exact zero never gets there; a Complex pivot whose
//     squared modulus underflows (|p| below about 2e-162, eps = 0) does.
//
// Options: WithEpsilon (singularity threshold), WithLogger.
func Decompose[T field.Field[T]](a *matrix.Dense[T], opts ...Option) (*LUP[T], error) {
	if err := matrix.ValidateSquare[T](a); err != nil {
		return nil, linalgErrorf(opDecompose, err)
	}
	o := gatherOptions(opts...)

	n := a.Rows()
	w := a.ToRows() // private working copy
	res := &LUP[T]{
		n:    n,
		l:    identityRows[T](n),
		u:    zeroRows[T](n),
		Perm: make([]int, n),
	}
	for i := range res.Perm {
		res.Perm[i] = i
	}

	var (
		i, j, k, maxRow int
		maxAbs, v       float64
		mult            T
		err             error
	)
	for k = 0; k < n; k++ {
		// 1. Pivot search: first maximal magnitude wins.
		maxRow, maxAbs = k, w[k][k].Abs()
		for i = k + 1; i < n; i++ {
			if v = w[i][k].Abs(); v > maxAbs {
				maxRow, maxAbs = i, v
			}
		}

		// 2. Singularity guard.
		if maxAbs <= o.eps {
			res.Singular = true
			o.logger.Debug("lup: singular pivot",
				zap.Int("column", k), zap.Float64("magnitude", maxAbs), zap.Float64("eps", o.eps))

			break
		}

		// 3. Row exchange in W, the permutation and the known part of L.
		if maxRow != k {
			w[k], w[maxRow] = w[maxRow], w[k]
			res.Perm[k], res.Perm[maxRow] = res.Perm[maxRow], res.Perm[k]
			for j = 0; j < k; j++ {
				res.l[k][j], res.l[maxRow][j] = res.l[maxRow][j], res.l[k][j]
			}
			res.SwapCount++
		}

		// 4. Row k of U.
		for j = k; j < n; j++ {
			res.u[k][j] = w[k][j]
		}

		// 5. Multipliers and elimination below the pivot.
		for i = k + 1; i < n; i++ {
			mult, err = w[i][k].Div(res.u[k][k])
			if err != nil {
				return nil, linalgErrorf(opDecompose, err)
			}
			res.l[i][k] = mult
			for j = k; j < n; j++ {
				w[i][j] = w[i][j].Sub(mult.Mul(res.u[k][j]))
			}
		}
	}

	if err = res.materialize(); err != nil {
		return nil, linalgErrorf(opDecompose, err)
	}
	o.logger.Debug("lup: decomposed",
		zap.Int("n", n), zap.Int("swaps", res.SwapCount), zap.Bool("singular", res.Singular))

	return res, nil
}

// materialize builds the exported L, U and P containers from the working rows.
func (r *LUP[T]) materialize() error {
	var err error
	if r.L, err = matrix.NewFromRows(r.n, r.n, r.l); err != nil {
		return err
	}
	if r.U, err = matrix.NewFromRows(r.n, r.n, r.u); err != nil {
		return err
	}
	p := zeroRows[T](r.n)
	one := field.One[T]()
	for k, src := range r.Perm {
		p[k][src] = one
	}
	r.P, err = matrix.NewFromRows(r.n, r.n, p)

	return err
}

// Determinant returns det(A) = (−1)^SwapCount · Π U[i][i], or the field zero
// when the decomposition is singular.
func (r *LUP[T]) Determinant() T {
	if r.Singular {
		return field.Zero[T]()
	}
	det := field.One[T]()
	for i := 0; i < r.n; i++ {
		det = det.Mul(r.u[i][i])
	}

	return field.Sign[T](r.SwapCount).Mul(det)
}

// Solve returns x with A·x = b, using one forward (L·y = P·b) and one backward
// (U·x = y) substitution.
// Errors: matrix.ErrSingular, vector shape errors, field.ErrDivisionByZero.
func (r *LUP[T]) Solve(b *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if r.Singular {
		return nil, linalgErrorf(opSolve, matrix.ErrSingular)
	}
	if err := matrix.ValidateVector(b, r.n); err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	rhs, err := b.Values()
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}
	x, err := r.substitute(func(i int) T { return rhs[r.Perm[i]] })
	if err != nil {
		return nil, linalgErrorf(opSolve, err)
	}

	return matrix.NewVector(x...)
}

// Inverse returns A⁻¹ column by column: for each c, solve with e_c.
// Errors: matrix.ErrSingular, field.ErrDivisionByZero.
func (r *LUP[T]) Inverse() (*matrix.Dense[T], error) {
	if r.Singular {
		return nil, linalgErrorf(opInverse, matrix.ErrSingular)
	}
	zero, one := field.Zero[T](), field.One[T]()
	inv := zeroRows[T](r.n)
	for c := 0; c < r.n; c++ {
		// (P·e_c)[i] = e_c[Perm[i]]
		x, err := r.substitute(func(i int) T {
			if r.Perm[i] == c {
				return one
			}

			return zero
		})
		if err != nil {
			return nil, linalgErrorf(opInverse, err)
		}
		for i := 0; i < r.n; i++ {
			inv[i][c] = x[i]
		}
	}

	return matrix.NewFromRows(r.n, r.n, inv)
}

// substitute solves L·y = pb then U·x = y, where pb(i) yields the i-th entry
// of the already-permuted right-hand side.
func (r *LUP[T]) substitute(pb func(i int) T) ([]T, error) {
	n := r.n
	y := make([]T, n)
	x := make([]T, n)
	var (
		i, j int
		sum  T
		err  error
	)
	// Forward: L has a unit diagonal, so no division.
	for i = 0; i < n; i++ {
		sum = pb(i)
		for j = 0; j < i; j++ {
			sum = sum.Sub(r.l[i][j].Mul(y[j]))
		}
		y[i] = sum
	}
	// Backward.
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for j = i + 1; j < n; j++ {
			sum = sum.Sub(r.u[i][j].Mul(x[j]))
		}
		if x[i], err = sum.Div(r.u[i][i]); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// identityRows returns an n×n nested slice with One on the diagonal.
func identityRows[T field.Field[T]](n int) [][]T {
	rows := zeroRows[T](n)
	one := field.One[T]()
	for i := 0; i < n; i++ {
		rows[i][i] = one
	}

	return rows
}

// zeroRows returns an n×n nested slice of field zeros.
func zeroRows[T field.Field[T]](n int) [][]T {
	zero := field.Zero[T]()
	rows := make([][]T, n)
	for i := range rows {
		rows[i] = make([]T, n)
		for j := range rows[i] {
			rows[i][j] = zero
		}
	}

	return rows
}
