// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/nodes minimal by delegating shape/nil checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic, O(1) and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/field"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports a nil interface or an interface holding a nil *Dense or node.
func isNil[T field.Field[T]](e Expr[T]) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Dense[T]:
		return v == nil
	case *binaryNode[T]:
		return v == nil
	case *mulNode[T]:
		return v == nil
	case *scaleNode[T]:
		return v == nil
	case *transposeNode[T]:
		return v == nil
	case *negNode[T]:
		return v == nil
	}

	return false
}

// ValidateNotNil ensures the operand reference is non-nil.
// Returns ErrNilMatrix for a nil interface or a typed nil *Dense / node.
func ValidateNotNil[T field.Field[T]](e Expr[T]) error {
	if isNil(e) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and have equal dimensions.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSameShape[T field.Field[T]](a, b Expr[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible[T field.Field[T]](a, b Expr[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: %dx%d * %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare ensures e is non-nil and Rows == Cols.
// Errors: ErrNilMatrix, ErrNonSquare (which also matches ErrDimensionMismatch).
func ValidateSquare[T field.Field[T]](e Expr[T]) error {
	if err := ValidateNotNil(e); err != nil {
		return err
	}
	if e.Rows() != e.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", e.Rows(), e.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateSameLength ensures a and b are non-nil vectors (one row or one
// column, either orientation) with the same number of elements, and returns it.
// Errors: ErrNilMatrix, ErrNotVector, ErrDimensionMismatch.
func ValidateSameLength[T field.Field[T]](a, b Expr[T]) (int, error) {
	na, err := vectorLen(a)
	if err != nil {
		return 0, err
	}
	nb, err := vectorLen(b)
	if err != nil {
		return 0, err
	}
	if na != nb {
		return 0, validatorErrorf(fmt.Sprintf("ValidateSameLength: %d vs %d", na, nb), ErrDimensionMismatch)
	}

	return na, nil
}

func vectorLen[T field.Field[T]](e Expr[T]) (int, error) {
	if err := ValidateNotNil(e); err != nil {
		return 0, err
	}
	switch {
	case e.Cols() == 1:
		return e.Rows(), nil
	case e.Rows() == 1:
		return e.Cols(), nil
	default:
		return 0, validatorErrorf(fmt.Sprintf("vectorLen: %dx%d", e.Rows(), e.Cols()), ErrNotVector)
	}
}

// ValidateVector ensures v is a non-nil column vector of length n.
// Errors: ErrNilMatrix, ErrNotVector, ErrDimensionMismatch.
func ValidateVector[T field.Field[T]](v *Dense[T], n int) error {
	if v == nil {
		return validatorErrorf("ValidateVector", ErrNilMatrix)
	}
	if v.c != 1 {
		return validatorErrorf(fmt.Sprintf("ValidateVector: %dx%d", v.r, v.c), ErrNotVector)
	}
	if v.r != n {
		return validatorErrorf(fmt.Sprintf("ValidateVector: length %d, want %d", v.r, n), ErrDimensionMismatch)
	}

	return nil
}
