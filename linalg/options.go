// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for decompositions and solvers.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Observability is opt-in: the default logger discards everything.

package linalg

import (
	"math"

	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the pivot magnitude at or below which LUP flags a matrix singular.
	DefaultEpsilon = 1e-12

	// DefaultMaxIter is a reasonable Gauss-Seidel iteration bound for callers without one.
	DefaultMaxIter = 1000

	// DefaultTolerance is a reasonable Gauss-Seidel convergence tolerance for callers without one.
	DefaultTolerance = 1e-12
)

const panicEpsilonInvalid = "linalg: WithEpsilon: eps must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	eps    float64     // >= 0; DefaultEpsilon
	logger *zap.Logger // never nil after gatherOptions
}

// WithEpsilon sets the singularity threshold used by LUP pivot selection.
// Panics when eps is negative, NaN or ±Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithLogger routes debug diagnostics (pivots, swaps, convergence) to l.
// A nil l restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// gatherOptions applies user setters on top of the defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
