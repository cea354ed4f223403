// SPDX-License-Identifier: MIT

package problem

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/linalg"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// Result holds whatever the chosen method produced. Unused fields stay zero.
type Result struct {
	Method string

	// Solution is x for lup/solve/gauss-seidel and A⁻¹ for inverse.
	Solution *matrix.Dense[field.Real]
	// Determinant is set for det.
	Determinant field.Real
	// Decomposition is set for lup.
	Decomposition *linalg.LUP[field.Real]
	// Report is set for gauss-seidel.
	Report *linalg.Report[field.Real]
	// Residual is Σ|A·x − b| for methods that produce x; see HasResidual.
	Residual float64
	// HasResidual reports whether Residual was computed (b was given).
	HasResidual bool
}

// Run executes p with the given logger (nil means no logging).
func Run(p *Problem, logger *zap.Logger) (*Result, error) {
	opts := append(p.Options(), linalg.WithLogger(logger))
	res := &Result{Method: p.Method}

	var err error
	switch p.Method {
	case MethodDeterminant:
		res.Determinant, err = linalg.Determinant(p.A, opts...)
	case MethodInverse:
		res.Solution, err = linalg.Inverse(p.A, opts...)
	case MethodLUP:
		if res.Decomposition, err = linalg.Decompose(p.A, opts...); err == nil {
			res.Solution, err = res.Decomposition.Solve(p.B)
		}
	case MethodSolve:
		res.Solution, err = linalg.Solve(p.A, p.B, opts...)
	case MethodGaussSeidel:
		if res.Report, err = linalg.GaussSeidelReport(p.A, p.B, p.X0, p.MaxIter, p.Tol, opts...); err == nil {
			res.Solution = res.Report.X
		}
	default:
		err = fmt.Errorf("%w: unknown method %q", ErrInvalidProblem, p.Method)
	}
	if err != nil {
		return nil, fmt.Errorf("problem: %s: %w", p.Method, err)
	}

	if p.B != nil && res.Solution != nil {
		if res.Residual, err = linalg.Residual(p.A, res.Solution, p.B); err != nil {
			return nil, fmt.Errorf("problem: residual: %w", err)
		}
		res.HasResidual = true
	}

	return res, nil
}

// String renders the result for terminal output.
func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "method: %s\n", r.Method)
	switch r.Method {
	case MethodDeterminant:
		fmt.Fprintf(&b, "det = %s\n", r.Determinant)

		return b.String()
	case MethodLUP:
		fmt.Fprintf(&b, "swaps: %d\nL =\n%s\nU =\n%s\nP =\n%s\n",
			r.Decomposition.SwapCount, r.Decomposition.L, r.Decomposition.U, r.Decomposition.P)
	case MethodGaussSeidel:
		fmt.Fprintf(&b, "iterations: %d\nconverged: %t\ndelta: %g\n",
			r.Report.Iterations, r.Report.Converged, r.Report.Delta)
	}
	if r.Method == MethodInverse {
		fmt.Fprintf(&b, "inverse =\n%s\n", r.Solution)
	} else {
		fmt.Fprintf(&b, "x =\n%s\nresidual: %g\n", r.Solution, r.Residual)
	}

	return b.String()
}
