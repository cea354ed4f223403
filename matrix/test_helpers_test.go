// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for containers and expression nodes.
//   - Keep all data finite and well-formed so failures point at the code under test.

package matrix_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the default closeness bound for floating comparisons.
const tol = 1e-9

// hide wraps an Expr so the code under test only sees the interface and
// cannot take a *Dense shortcut.
type hide struct{ matrix.Expr[field.Real] }

// countingExpr records how many times each cell was evaluated.
type countingExpr struct {
	inner matrix.Expr[field.Real]
	calls map[[2]int]int
}

func newCounting(e matrix.Expr[field.Real]) *countingExpr {
	return &countingExpr{inner: e, calls: make(map[[2]int]int)}
}

func (c *countingExpr) Rows() int { return c.inner.Rows() }
func (c *countingExpr) Cols() int { return c.inner.Cols() }
func (c *countingExpr) Eval(i, j int) field.Real {
	c.calls[[2]int{i, j}]++

	return c.inner.Eval(i, j)
}

func (c *countingExpr) total() int {
	n := 0
	for _, v := range c.calls {
		n += v
	}

	return n
}

// MustDense allocates an r×c zero matrix or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense[field.Real] {
	tb.Helper()
	m, err := matrix.New[field.Real](r, c)
	require.NoError(tb, err)

	return m
}

// MustRows builds a matrix from a nested literal or fails the test.
func MustRows[T field.Field[T]](tb testing.TB, rows [][]T) *matrix.Dense[T] {
	tb.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T field.Field[T]](tb testing.TB, m *matrix.Dense[T], i, j int) T {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireClose asserts equal shapes and element-wise closeness within tol.
func requireClose[T field.Field[T]](tb testing.TB, want, got *matrix.Dense[T]) {
	tb.Helper()
	require.NotNil(tb, got)
	require.Truef(tb, want.ApproxEqual(got, tol), "want:\n%s\ngot:\n%s", want, got)
}

// fillRand fills m with deterministic values in [-1, 1).
func fillRand(m *matrix.Dense[field.Real], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			_ = m.Set(i, j, field.Real(rng.Float64()*2-1))
		}
	}
}

// fixtures A=[[1,2],[3,4]] and B=[[5,6],[7,8]].
func fixtureAB(tb testing.TB) (a, b *matrix.Dense[field.Real]) {
	tb.Helper()

	return MustRows(tb, [][]field.Real{{1, 2}, {3, 4}}), MustRows(tb, [][]field.Real{{5, 6}, {7, 8}})
}

// gf7 is the prime field Z/7Z. Only 0, 1, 2 and 4 have square roots, which
// makes it the smallest field where Sqrt can fail.
type gf7 uint8

var _ field.Field[gf7] = gf7(0)

func (a gf7) Add(b gf7) gf7 { return (a + b) % 7 }
func (a gf7) Sub(b gf7) gf7 { return (a + 7 - b) % 7 }
func (a gf7) Mul(b gf7) gf7 { return gf7(uint16(a) * uint16(b) % 7) }
func (a gf7) Neg() gf7 { return (7 - a) % 7 }

// Div multiplies by b⁵ = b⁻¹ (Fermat).
func (a gf7) Div(b gf7) (gf7, error) {
	if b == 0 {
		return 0, field.ErrDivisionByZero
	}
	inv := b.Mul(b).Mul(b).Mul(b).Mul(b)

	return a.Mul(inv), nil
}

// Sqrt returns the smallest root.
func (a gf7) Sqrt() (gf7, error) {
	for r := gf7(0); r < 7; r++ {
		if r.Mul(r) == a {
			return r, nil
		}
	}

	return 0, field.ErrDomain
}

func (gf7) Zero() gf7 { return 0 }
func (gf7) One() gf7 { return 1 }
func (a gf7) IsZero() bool { return a == 0 }
func (a gf7) Equal(b gf7) bool { return a == b }
func (a gf7) Abs() float64 { return float64(a) }
func (a gf7) String() string { return strconv.Itoa(int(a)) }
