package field_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

func TestReal_Arithmetic(t *testing.T) {
	a, b := field.Real(7.5), field.Real(-2.25)

	assert.Equal(t, field.Real(5.25), a.Add(b))
	assert.Equal(t, field.Real(9.75), a.Sub(b))
	assert.Equal(t, field.Real(-16.875), a.Mul(b))

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, -3.3333333333333335, q.Float64(), tol)

	assert.Equal(t, field.Real(-7.5), a.Neg())
	assert.Equal(t, 2.25, b.Abs())
}

func TestReal_InverseOperations(t *testing.T) {
	for _, tc := range []struct{ a, b field.Real }{
		{1, 2},
		{-3.5, 0.125},
		{1e10, 3e-5},
		{0, 42},
	} {
		assert.True(t, field.ApproxEqual(tc.a.Add(tc.b).Sub(tc.b), tc.a, 1e-9), "add/sub %v %v", tc.a, tc.b)
		q, err := tc.a.Mul(tc.b).Div(tc.b)
		require.NoError(t, err)
		assert.True(t, field.ApproxEqual(q, tc.a, 1e-9), "mul/div %v %v", tc.a, tc.b)
	}
}

func TestReal_DivisionByZero(t *testing.T) {
	_, err := field.Real(1).Div(field.Zero[field.Real]())
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestReal_Sqrt(t *testing.T) {
	r, err := field.Real(16).Sqrt()
	require.NoError(t, err)
	assert.Equal(t, field.Real(4), r)

	_, err = field.Real(-1).Sqrt()
	require.ErrorIs(t, err, field.ErrDomain)
}

func TestReal_Order(t *testing.T) {
	assert.Equal(t, -1, field.Real(1).Cmp(2))
	assert.Equal(t, 1, field.Real(3).Cmp(2))
	assert.Equal(t, 0, field.Real(2).Cmp(2))
	assert.True(t, field.Real(-5).Less(0))
	assert.Equal(t, "0.5", field.Real(0.5).String())
}

func TestComplex_Arithmetic(t *testing.T) {
	z, w := field.C(1, 2), field.C(3, -4)

	assert.Equal(t, field.C(4, -2), z.Add(w))
	assert.Equal(t, field.C(-2, 6), z.Sub(w))
	// (1+2i)(3-4i) = 3 - 4i + 6i + 8 = 11 + 2i
	assert.Equal(t, field.C(11, 2), z.Mul(w))

	q, err := z.Div(w)
	require.NoError(t, err)
	// (1+2i)/(3-4i) = (1+2i)(3+4i)/25 = (-5+10i)/25
	assert.InDelta(t, -0.2, q.Re, tol)
	assert.InDelta(t, 0.4, q.Im, tol)

	assert.Equal(t, 5.0, w.Abs())
	assert.Equal(t, field.C(3, 4), w.Conj())
	assert.Equal(t, field.C(-1, -2), z.Neg())
}

func TestComplex_DivisionByZero(t *testing.T) {
	_, err := field.C(1, 1).Div(field.Zero[field.Complex]())
	require.ErrorIs(t, err, field.ErrDivisionByZero)
}

func TestComplex_SqrtPolar(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   field.Complex
		want field.Complex
	}{
		{"negative real", field.C(-4, 0), field.C(0, 2)},
		{"i", field.C(0, 1), field.C(math.Sqrt2/2, math.Sqrt2/2)},
		{"3+4i", field.C(3, 4), field.C(2, 1)},
		{"zero", field.C(0, 0), field.C(0, 0)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.in.Sqrt()
			require.NoError(t, err)
			assert.InDelta(t, tc.want.Re, got.Re, 1e-12)
			assert.InDelta(t, tc.want.Im, got.Im, 1e-12)
			// squaring the root recovers the input
			assert.True(t, field.ApproxEqual(got.Mul(got), tc.in, 1e-12))
		})
	}
}

func TestComplex_String(t *testing.T) {
	assert.Equal(t, "1+2i", field.C(1, 2).String())
	assert.Equal(t, "1-2i", field.C(1, -2).String())
}

func TestComplex128RoundTrip(t *testing.T) {
	z := field.FromComplex128(complex(1.5, -0.5))
	assert.Equal(t, complex(1.5, -0.5), z.Complex128())
}

func TestGenericHelpers(t *testing.T) {
	assert.Equal(t, field.Real(0), field.Zero[field.Real]())
	assert.Equal(t, field.Real(1), field.One[field.Real]())
	assert.Equal(t, field.C(1, 0), field.One[field.Complex]())
	assert.True(t, field.Zero[field.Complex]().IsZero())

	assert.Equal(t, field.Real(1), field.Sign[field.Real](4))
	assert.Equal(t, field.Real(-1), field.Sign[field.Real](3))
	assert.Equal(t, field.C(-1, 0), field.Sign[field.Complex](1))

	assert.True(t, field.ApproxEqual(field.Real(1), field.Real(1.0005), -1e-3))
	assert.False(t, field.ApproxEqual(field.Real(1), field.Real(1.1), 1e-3))
}
