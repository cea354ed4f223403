// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package and by linalg. All operations MUST return these sentinels (optionally
// wrapped with an op tag) and tests MUST check them via errors.Is.
// No function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping across logs.
// Call sites wrap with fmt.Errorf("<Op>: %w", ErrX) via matrixErrorf;
// callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> invalid dimensions -> shape mismatch -> index range -> numeric (singular).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrDimensionMismatch is the shape error: incompatible dimensions between
	// operands (Add/Sub of different shapes, Mul where a.Cols != b.Rows) or a
	// nested literal that does not match the declared shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// It is a shape error: errors.Is(err, ErrDimensionMismatch) also holds.
	ErrNonSquare = &shapeError{msg: "matrix: matrix is not square"}

	// ErrNotVector signals a single-index access on a matrix with neither one row nor one column.
	// It is a shape error: errors.Is(err, ErrDimensionMismatch) also holds.
	ErrNotVector = &shapeError{msg: "matrix: matrix is not a vector"}

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Vec/SetVec) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil matrix or expression (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// decomposition is flagged singular or whose closed-form determinant is zero.
	ErrSingular = errors.New("matrix: singular matrix")
)

// shapeError is a refinement of ErrDimensionMismatch with its own message.
type shapeError struct{ msg string }

func (e *shapeError) Error() string { return e.msg }

// Is makes every shapeError match ErrDimensionMismatch.
func (e *shapeError) Is(target error) bool { return target == ErrDimensionMismatch }
