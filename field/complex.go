// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"strconv"
	"strings"
)

// Complex is the complex-number instance of Field.
// It has no value order; pivoting and tolerances use the modulus (Abs).
type Complex struct {
	Re float64 // real part
	Im float64 // imaginary part
}

// Compile-time assertion that Complex satisfies the contract.
var _ Field[Complex] = Complex{}

// C builds re + im·i.
func C(re, im float64) Complex { return Complex{Re: re, Im: im} }

// FromComplex128 converts a builtin complex128.
func FromComplex128(z complex128) Complex { return Complex{Re: real(z), Im: imag(z)} }

// Complex128 converts z to the builtin complex128.
func (z Complex) Complex128() complex128 { return complex(z.Re, z.Im) }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex { return Complex{z.Re + w.Re, z.Im + w.Im} }

// Sub returns z − w.
func (z Complex) Sub(w Complex) Complex { return Complex{z.Re - w.Re, z.Im - w.Im} }

// Mul returns z × w = (ac − bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		Re: z.Re*w.Re - z.Im*w.Im,
		Im: z.Re*w.Im + z.Im*w.Re,
	}
}

// Div returns z ÷ w, or ErrDivisionByZero when |w|² == 0.
func (z Complex) Div(w Complex) (Complex, error) {
	denom := w.Re*w.Re + w.Im*w.Im
	if denom == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{
		Re: (z.Re*w.Re + z.Im*w.Im) / denom,
		Im: (z.Im*w.Re - z.Re*w.Im) / denom,
	}, nil
}

// Neg returns −z.
func (z Complex) Neg() Complex { return Complex{-z.Re, -z.Im} }

// Conj returns the complex conjugate.
func (z Complex) Conj() Complex { return Complex{z.Re, -z.Im} }

// Sqrt returns the principal square root via polar form:
// modulus |z|^(1/2), argument arg(z)/2. It never fails.
func (z Complex) Sqrt() (Complex, error) {
	r := math.Sqrt(math.Hypot(z.Re, z.Im))
	theta := math.Atan2(z.Im, z.Re) / 2

	return Complex{Re: r * math.Cos(theta), Im: r * math.Sin(theta)}, nil
}

// Zero returns 0 + 0i.
func (Complex) Zero() Complex { return Complex{} }

// One returns 1 + 0i.
func (Complex) One() Complex { return Complex{Re: 1} }

// IsZero reports whether both parts are exactly zero.
func (z Complex) IsZero() bool { return z.Re == 0 && z.Im == 0 }

// Equal compares both parts exactly.
func (z Complex) Equal(w Complex) bool { return z.Re == w.Re && z.Im == w.Im }

// Abs returns the modulus |z|.
func (z Complex) Abs() float64 { return math.Hypot(z.Re, z.Im) }

// String renders "a+bi" / "a-bi".
func (z Complex) String() string {
	var b strings.Builder
	b.WriteString(strconv.FormatFloat(z.Re, 'g', -1, 64))
	if z.Im >= 0 || math.IsNaN(z.Im) {
		b.WriteByte('+')
	}
	b.WriteString(strconv.FormatFloat(z.Im, 'g', -1, 64))
	b.WriteByte('i')

	return b.String()
}
