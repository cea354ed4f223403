// SPDX-License-Identifier: MIT
// Package field: sentinel error set.
// Field operations return these sentinels directly; callers match them with
// errors.Is after any amount of %w wrapping.

package field

import "errors"

var (
	// ErrDivisionByZero is returned when a value is divided by the field's zero element.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrDomain is returned when an operation is undefined for its argument,
	// e.g. the square root of a negative Real.
	ErrDomain = errors.New("field: argument outside domain")
)
