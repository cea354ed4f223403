// SPDX-License-Identifier: MIT

// Package field - the Field contract and generic helpers over it.
//
// Purpose:
//   - Declare the minimal algebraic surface (zero, identity, + − × ÷, √, magnitude)
//     shared by every scalar type.
//   - Use the self-referential constraint Field[T] so generic code calls concrete
//     methods (static dispatch) instead of boxing through an interface.
//
// AI-Hints:
//   - Write generic code as func F[T Field[T]](x T) and obtain neutral elements
//     via Zero[T]() / One[T]() instead of literals.
//   - Compare magnitudes with Abs(); only Real carries a value order.

package field

// Field is the scalar contract. T is the implementing type itself.
//
// Methods are value-receiver and never mutate; every operation returns a new
// value. Div and Sqrt are the only fallible operations.
type Field[T any] interface {
	// Add returns the sum receiver + other.
	Add(other T) T

	// Sub returns the difference receiver − other.
	Sub(other T) T

	// Mul returns the product receiver × other.
	Mul(other T) T

	// Div returns receiver ÷ other, or ErrDivisionByZero when other is the zero element.
	Div(other T) (T, error)

	// Neg returns the additive inverse.
	Neg() T

	// Sqrt returns the principal square root, or ErrDomain where undefined.
	Sqrt() (T, error)

	// Zero returns the additive identity. The receiver's value is ignored.
	Zero() T

	// One returns the multiplicative identity. The receiver's value is ignored.
	One() T

	// IsZero reports whether the value is exactly the zero element.
	IsZero() bool

	// Equal reports exact structural equality.
	Equal(other T) bool

	// Abs returns the magnitude |x| as a float64 (modulus for Complex).
	Abs() float64

	// String renders the value for diagnostics.
	String() string
}

// Zero returns the additive identity of T.
func Zero[T Field[T]]() T {
	var t T

	return t.Zero()
}

// One returns the multiplicative identity of T.
func One[T Field[T]]() T {
	var t T

	return t.One()
}

// ApproxEqual reports whether |a − b| ≤ tol. A negative tol is treated as |tol|.
// Complexity: O(1).
func ApproxEqual[T Field[T]](a, b T, tol float64) bool {
	if tol < 0 {
		tol = -tol
	}

	return a.Sub(b).Abs() <= tol
}

// Sign returns One for an even count and −One for an odd count.
// Used to turn a permutation's swap parity into a determinant sign.
func Sign[T Field[T]](swaps int) T {
	one := One[T]()
	if swaps%2 == 0 {
		return one
	}

	return one.Neg()
}
