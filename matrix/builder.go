// SPDX-License-Identifier: MIT
// Package matrix - fluent expression builder.
//
// Purpose:
//   - Chain lazy nodes without an error check after every step:
//     matrix.Of(a).Add(b).Mul(c).Materialize()
//   - Keep fail-fast semantics: each step validates shapes immediately; the first
//     failure is recorded and visible through Err() before anything is evaluated.
//
// Behavior highlights:
//   - After the first error, every further step is a no-op that keeps the error.
//   - Materialize returns the recorded error without calling Eval at all.

package matrix

import "github.com/katalvlaran/lvalgebra/field"

// Chain accumulates an expression tree and the first construction error.
type Chain[T field.Field[T]] struct {
	expr Expr[T]
	err  error
}

// Of starts a chain rooted at e. A nil e records ErrNilMatrix.
func Of[T field.Field[T]](e Expr[T]) *Chain[T] {
	if err := ValidateNotNil(e); err != nil {
		return &Chain[T]{err: err}
	}

	return &Chain[T]{expr: e}
}

// step applies build unless an error is already recorded.
func (c *Chain[T]) step(build func(Expr[T]) (Expr[T], error)) *Chain[T] {
	if c.err != nil {
		return c
	}
	next, err := build(c.expr)
	if err != nil {
		return &Chain[T]{err: err}
	}

	return &Chain[T]{expr: next}
}

// Add appends "+ b".
func (c *Chain[T]) Add(b Expr[T]) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return Add(e, b) })
}

// Sub appends "− b".
func (c *Chain[T]) Sub(b Expr[T]) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return Sub(e, b) })
}

// Mul appends "× b" (right multiplication).
func (c *Chain[T]) Mul(b Expr[T]) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return Mul(e, b) })
}

// MulLeft prepends "b ×" (left multiplication).
func (c *Chain[T]) MulLeft(b Expr[T]) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return Mul(b, e) })
}

// Scale appends "· s".
func (c *Chain[T]) Scale(s T) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return Scale(e, s) })
}

// ScaleLeft prepends "s ·".
func (c *Chain[T]) ScaleLeft(s T) *Chain[T] {
	return c.step(func(e Expr[T]) (Expr[T], error) { return ScaleLeft(s, e) })
}

// Neg negates the expression built so far.
func (c *Chain[T]) Neg() *Chain[T] {
	return c.step(Neg[T])
}

// Transpose transposes the expression built so far.
func (c *Chain[T]) Transpose() *Chain[T] {
	return c.step(Transpose[T])
}

// Err returns the first construction error, or nil.
func (c *Chain[T]) Err() error { return c.err }

// Expr returns the built tree and the first construction error.
func (c *Chain[T]) Expr() (Expr[T], error) { return c.expr, c.err }

// Materialize evaluates the chain, or returns the recorded error untouched.
func (c *Chain[T]) Materialize() (*Dense[T], error) {
	if c.err != nil {
		return nil, c.err
	}

	return Materialize(c.expr)
}
