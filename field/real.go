// SPDX-License-Identifier: MIT

package field

import (
	"math"
	"strconv"
)

// Real is the real-number instance of Field, a thin wrapper over float64.
// The zero value is the additive identity.
type Real float64

// Compile-time assertion that Real satisfies the contract.
var _ Field[Real] = Real(0)

// Add returns r + o.
func (r Real) Add(o Real) Real { return r + o }

// Sub returns r − o.
func (r Real) Sub(o Real) Real { return r - o }

// Mul returns r × o.
func (r Real) Mul(o Real) Real { return r * o }

// Div returns r ÷ o. Dividing by exactly 0 yields ErrDivisionByZero.
func (r Real) Div(o Real) (Real, error) {
	if o == 0 {
		return 0, ErrDivisionByZero
	}

	return r / o, nil
}

// Neg returns −r.
func (r Real) Neg() Real { return -r }

// Sqrt returns √r, or ErrDomain for r < 0.
func (r Real) Sqrt() (Real, error) {
	if r < 0 {
		return 0, ErrDomain
	}

	return Real(math.Sqrt(float64(r))), nil
}

// Zero returns 0.
func (Real) Zero() Real { return 0 }

// One returns 1.
func (Real) One() Real { return 1 }

// IsZero reports r == 0.
func (r Real) IsZero() bool { return r == 0 }

// Equal reports r == o (IEEE semantics: NaN is never equal).
func (r Real) Equal(o Real) bool { return r == o }

// Abs returns |r|.
func (r Real) Abs() float64 { return math.Abs(float64(r)) }

// Cmp returns -1, 0 or +1 as r is less than, equal to, or greater than o.
// NaN compares as equal to everything; callers needing strictness check IsNaN first.
func (r Real) Cmp(o Real) int {
	switch {
	case r < o:
		return -1
	case r > o:
		return 1
	default:
		return 0
	}
}

// Less reports r < o.
func (r Real) Less(o Real) bool { return r < o }

// Float64 unwraps r.
func (r Real) Float64() float64 { return float64(r) }

// String formats r with the shortest representation that round-trips.
func (r Real) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 64)
}
