// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
	"go.uber.org/zap"
)

// Report describes how a Gauss-Seidel run terminated.
type Report[T field.Field[T]] struct {
	// X is the final iterate, an n×1 vector.
	X *matrix.Dense[T]
	// Iterations is the number of completed sweeps.
	Iterations int
	// Converged reports whether the last sweep changed x by less than tol.
	Converged bool
	// Delta is Σ|x_new − x_old| of the last sweep (0 when no sweep ran).
	Delta float64
}

// GaussSeidel solves A·x = b iteratively starting from x0.
//
// Each sweep overwrites x[i] in place using the latest values of every other
// component:
//
//	x[i] = (b[i] − Σ_{j≠i} A[i][j]·x[j]) / A[i][i]
//
// The run stops as soon as the sum of absolute changes over a sweep drops
// below tol. When maxIter sweeps pass without convergence, the last iterate is
// returned with a nil error; use GaussSeidelReport or Residual to inspect it.
//
// x0 is not modified.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, vector shape errors.
//   - ErrInvalidParameter for maxIter < 0 or a negative/NaN tol.
//   - field.ErrDivisionByZero when a diagonal entry is zero.
func GaussSeidel[T field.Field[T]](a, b, x0 *matrix.Dense[T], maxIter int, tol float64, opts ...Option) (*matrix.Dense[T], error) {
	rep, err := GaussSeidelReport(a, b, x0, maxIter, tol, opts...)
	if err != nil {
		return nil, err
	}

	return rep.X, nil
}

// GaussSeidelReport runs GaussSeidel and also reports the iteration count,
// the final delta and whether the tolerance was reached.
func GaussSeidelReport[T field.Field[T]](a, b, x0 *matrix.Dense[T], maxIter int, tol float64, opts ...Option) (*Report[T], error) {
	if err := matrix.ValidateSquare[T](a); err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}
	n := a.Rows()
	if err := matrix.ValidateVector(b, n); err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}
	if err := matrix.ValidateVector(x0, n); err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}
	if maxIter < 0 || tol < 0 || math.IsNaN(tol) {
		return nil, linalgErrorf(opGaussSeidel, ErrInvalidParameter)
	}
	o := gatherOptions(opts...)

	m := a.ToRows()
	rhs, err := b.Values()
	if err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}
	x, err := x0.Values() // private copy; x0 stays untouched
	if err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}

	rep := &Report[T]{}
	var (
		i, j  int
		sum   T
		next  T
		delta float64
	)
	for rep.Iterations < maxIter {
		delta = 0
		for i = 0; i < n; i++ {
			sum = rhs[i]
			for j = 0; j < n; j++ {
				if j != i {
					sum = sum.Sub(m[i][j].Mul(x[j]))
				}
			}
			if next, err = sum.Div(m[i][i]); err != nil {
				return nil, linalgErrorf(opGaussSeidel, err)
			}
			delta += next.Sub(x[i]).Abs()
			x[i] = next
		}
		rep.Iterations++
		rep.Delta = delta
		if delta < tol {
			rep.Converged = true

			break
		}
	}

	if rep.X, err = matrix.NewVector(x...); err != nil {
		return nil, linalgErrorf(opGaussSeidel, err)
	}
	o.logger.Debug("gauss-seidel: finished",
		zap.Int("n", n),
		zap.Int("iterations", rep.Iterations),
		zap.Float64("delta", rep.Delta),
		zap.Bool("converged", rep.Converged))

	return rep, nil
}
