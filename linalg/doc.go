// SPDX-License-Identifier: MIT

// Package linalg implements the linear-algebra algorithms that run on concrete
// matrix.Dense values of any field.Field element type.
//
// What is inside:
//
//   - Decompose: LUP factorization with partial pivoting (P·A = L·U).
//   - Determinant / DeterminantLU / Det2 / Det3 / Det4.
//   - Inverse / InverseLU / Inverse2 / Inverse3.
//   - Solve: direct solve through one decomposition.
//   - GaussSeidel / GaussSeidelReport: iterative in-place solver.
//   - Residual: Σ|A·x − b| for checking solver output.
//
// Algorithms never accept expression nodes: pivoting and substitution need
// repeated random access, so callers Materialize first. Inputs are copied and
// never mutated.
//
// Singularity: a pivot magnitude at or below eps (WithEpsilon, default
// DefaultEpsilon) marks an LUP result Singular. Determinant then returns the
// field zero and Inverse/Solve fail with matrix.ErrSingular. Closed-form inverses
// fail only on an exactly-zero determinant.
//
// Gauss-Seidel non-convergence is not an error: the last iterate is returned.
//
// Diagnostics go to the *zap.Logger passed with WithLogger (Debug level only).
package linalg
