// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestChainHappyPath(t *testing.T) {
	a, b := fixtureAB(t)

	// ((A + B) · A)ᵀ · 0.5
	got, err := matrix.Of[field.Real](a).Add(b).Mul(a).Transpose().Scale(0.5).Materialize()
	require.NoError(t, err)
	// (A+B)·A = [[30, 44], [46, 68]]
	want := MustRows(t, [][]field.Real{{15, 23}, {22, 34}})
	require.True(t, got.Equal(want), "got:\n%s", got)

	e, err := matrix.Of[field.Real](a).Sub(b).ScaleLeft(-1).Expr()
	require.NoError(t, err)
	diff, err := matrix.Materialize(e)
	require.NoError(t, err)
	require.True(t, diff.Equal(MustRows(t, [][]field.Real{{4, 4}, {4, 4}})))
}

func TestChainFirstErrorWins(t *testing.T) {
	a, b := fixtureAB(t)
	wide := MustDense(t, 3, 5)
	probe := newCounting(a)

	c := matrix.Of[field.Real](probe).Mul(wide).Add(b).Transpose()
	require.ErrorIs(t, c.Err(), matrix.ErrDimensionMismatch)

	m, err := c.Materialize()
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, m)
	require.Zero(t, probe.total(), "a failed chain must not evaluate anything")
}

func TestChainNilRoot(t *testing.T) {
	c := matrix.Of[field.Real](nil).Add(MustDense(t, 2, 2))
	require.ErrorIs(t, c.Err(), matrix.ErrNilMatrix)
	_, err := c.Expr()
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
