// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/require"
)

type realExpr = matrix.Expr[field.Real]

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense[field.Real]
	tests := []struct {
		name    string
		a, b    realExpr
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first typed nil", typedNil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), hide{MustDense(t, 2, 4)}, matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)

				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

// TestValidateMulCompatible covers the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateMulCompatible[field.Real](MustDense(t, 2, 3), MustDense(t, 3, 5)))
	require.ErrorIs(t, matrix.ValidateMulCompatible[field.Real](MustDense(t, 2, 3), MustDense(t, 2, 2)),
		matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible[field.Real](nil, MustDense(t, 2, 2)), matrix.ErrNilMatrix)
}

// TestValidateSquare covers nil, square and non-square inputs.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateSquare[field.Real](MustDense(t, 3, 3)))
	require.ErrorIs(t, matrix.ValidateSquare[field.Real](nil), matrix.ErrNilMatrix)

	err := matrix.ValidateSquare[field.Real](MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestValidateVector covers nil, orientation and length checks.
func TestValidateVector(t *testing.T) {
	t.Parallel()

	v, err := matrix.NewVector[field.Real](1, 2, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateVector(v, 3))
	require.ErrorIs(t, matrix.ValidateVector(v, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVector(MustDense(t, 1, 3), 3), matrix.ErrNotVector)
	require.ErrorIs(t, matrix.ValidateVector[field.Real](nil, 3), matrix.ErrNilMatrix)
}

// TestValidateSameLength accepts either orientation and reports the length.
func TestValidateSameLength(t *testing.T) {
	t.Parallel()

	col, err := matrix.NewVector[field.Real](1, 2, 3)
	require.NoError(t, err)
	row := MustDense(t, 1, 3)

	n, err := matrix.ValidateSameLength[field.Real](col, row)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	_, err = matrix.ValidateSameLength[field.Real](col, MustDense(t, 1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.ValidateSameLength[field.Real](MustDense(t, 2, 2), col)
	require.ErrorIs(t, err, matrix.ErrNotVector)
	_, err = matrix.ValidateSameLength[field.Real](col, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
