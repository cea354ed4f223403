// SPDX-License-Identifier: MIT
// Package linalg: sentinel errors and wrapping.
// Shape and singularity conditions reuse the matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrNonSquare, matrix.ErrSingular) and
// arithmetic failures surface field.ErrDivisionByZero unchanged, so callers
// match them with errors.Is regardless of which package detected them.

package linalg

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned for a negative iteration bound or a
// negative/NaN tolerance.
var ErrInvalidParameter = errors.New("linalg: invalid parameter")

// Operation name constants for unified error wrapping.
const (
	opDecompose   = "Decompose"
	opDeterminant = "Determinant"
	opInverse     = "Inverse"
	opSolve       = "Solve"
	opGaussSeidel = "GaussSeidel"
	opResidual    = "Residual"
)

// linalgErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
