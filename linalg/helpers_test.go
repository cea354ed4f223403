// SPDX-License-Identifier: MIT
package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
)

const tol = 1e-9

func mustRows[T field.Field[T]](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

func mustVec(tb testing.TB, values ...field.Real) *matrix.Dense[field.Real] {
	tb.Helper()
	v, err := matrix.NewVector(values...)
	require.NoError(tb, err)

	return v
}

// randomReal returns an n×n matrix with entries in [-1, 1). With dominant set,
// n is added to the diagonal so the matrix is well conditioned.
func randomReal(tb testing.TB, n int, seed int64, dominant bool) *matrix.Dense[field.Real] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]field.Real, n)
	for i := range rows {
		rows[i] = make([]field.Real, n)
		for j := range rows[i] {
			rows[i][j] = field.Real(rng.Float64()*2 - 1)
		}
		if dominant {
			rows[i][i] += field.Real(n)
		}
	}

	return mustRows(tb, rows)
}

// randomComplex is the complex counterpart of randomReal (always dominant).
func randomComplex(tb testing.TB, n int, seed int64) *matrix.Dense[field.Complex] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]field.Complex, n)
	for i := range rows {
		rows[i] = make([]field.Complex, n)
		for j := range rows[i] {
			rows[i][j] = field.C(rng.Float64()*2-1, rng.Float64()*2-1)
		}
		rows[i][i] = rows[i][i].Add(field.C(float64(n), 0))
	}

	return mustRows(tb, rows)
}

func product[T field.Field[T]](tb testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.Product[T](a, b)
	require.NoError(tb, err)

	return m
}

func identity[T field.Field[T]](tb testing.TB, n int) *matrix.Dense[T] {
	tb.Helper()
	id, err := matrix.Identity[T](n)
	require.NoError(tb, err)

	return id
}

func requireClose[T field.Field[T]](tb testing.TB, want, got *matrix.Dense[T], delta float64) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Truef(tb, want.ApproxEqual(got, delta), "want:\n%s\ngot:\n%s", want, got)
}

// requireScalarClose compares with a tolerance relative to the magnitude of want.
func requireScalarClose[T field.Field[T]](tb testing.TB, want, got T) {
	tb.Helper()
	scale := want.Abs()
	if scale < 1 {
		scale = 1
	}
	require.Truef(tb, field.ApproxEqual(want, got, tol*scale), "want %s, got %s", want, got)
}
