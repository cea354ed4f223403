// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Fix dimensions at construction: nothing in this package ever resizes a Dense.
//
// AI-Hints:
//   - Algorithms in linalg copy their input out with ToRows and work on the copy;
//     a Dense passed in by the caller is never mutated by them.
//   - Use NewFromRows for literals; it rejects ragged or mis-declared input.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-fill; At/Set/Eval: O(1); Clone/Equal: O(r*c).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalgebra/field"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtRowSep   = "\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keeps the sentinel reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over a Field.
//   - r,c hold dimensions (rows, cols), both > 0, fixed after construction.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T field.Field[T]] struct {
	r, c int // row and column counts
	data []T // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Expr[field.Real]    = (*Dense[field.Real])(nil)
	_ Expr[field.Complex] = (*Dense[field.Complex])(nil)
	_ fmt.Stringer        = (*Dense[field.Real])(nil)
)

// New creates an r×c matrix filled with the field zero.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func New[T field.Field[T]](rows, cols int) (*Dense[T], error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return newDense[T](rows, cols), nil
}

// newDense allocates without validating; callers guarantee rows, cols > 0.
func newDense[T field.Field[T]](rows, cols int) *Dense[T] {
	data := make([]T, rows*cols)
	zero := field.Zero[T]()
	for i := range data {
		data[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: data}
}

// NewFromRows builds a rows×cols matrix from a nested literal.
// The literal must have exactly `rows` rows of exactly `cols` values each.
//
// Errors:
//   - ErrInvalidDimensions when rows ≤ 0 or cols ≤ 0.
//   - ErrDimensionMismatch when the literal does not match the declared shape.
//
// Complexity: Time O(r*c), Space O(r*c). The literal is copied, never aliased.
func NewFromRows[T field.Field[T]](rows, cols int, values [][]T) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(values) != rows {
		return nil, fmt.Errorf("NewFromRows: %d rows declared, %d supplied: %w", rows, len(values), ErrDimensionMismatch)
	}

	m := &Dense[T]{r: rows, c: cols, data: make([]T, 0, rows*cols)}
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		m.data = append(m.data, row...)
	}

	return m, nil
}

// FromRows builds a matrix whose shape is inferred from the literal:
// len(values) rows, len(values[0]) columns. All rows must be equally long.
func FromRows[T field.Field[T]](values [][]T) (*Dense[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	return NewFromRows(len(values), len(values[0]), values)
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on invalid indices.
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on invalid indices.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Eval implements Expr with an unchecked read; see the Expr contract.
func (m *Dense[T]) Eval(i, j int) T { return m.data[i*m.c+j] }

// Clone returns a deep copy. The copy shares no storage with m.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// SwapRows exchanges rows i and k in place. Swapping a row with itself is a no-op.
func (m *Dense[T]) SwapRows(i, k int) error {
	if i < 0 || i >= m.r || k < 0 || k >= m.r {
		return denseErrorf(ctxSwapRows, i, k, ErrOutOfRange)
	}
	if i == k {
		return nil
	}
	ri, rk := m.data[i*m.c:(i+1)*m.c], m.data[k*m.c:(k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}

	return nil
}

// ToRows returns the contents as a freshly allocated nested slice.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Equal reports whether o has the same shape and every element is Field-equal.
// A nil argument is never equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !m.data[i].Equal(o.data[i]) {
			return false
		}
	}

	return true
}

// ApproxEqual reports whether o has the same shape and |m[i,j] − o[i,j]| ≤ tol everywhere.
// NaN never compares close.
func (m *Dense[T]) ApproxEqual(o *Dense[T], tol float64) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if !field.ApproxEqual(m.data[i], o.data[i], tol) {
			return false
		}
	}

	return true
}

// String renders nested bracket notation, one row per line:
//
//	[1, 2]
//	[3, 4]
//
// The format is for diagnostics only and is not meant to be parsed back.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		if i > 0 {
			b.WriteString(_fmtRowSep)
		}
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(m.data[base+j].String())
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
