// SPDX-License-Identifier: MIT

// Package problem loads linear-system problem files for the lasolve command.
//
// File format (YAML):
//
//	method: gauss-seidel   # lup | solve | gauss-seidel | inverse | det
//	a: [[4, 1, 0], [1, 4, 1], [0, 1, 4]]
//	b: [1, 2, 3]
//	x0: [0, 0, 0]          # optional; zeros when omitted
//	maxIter: 1000          # optional; linalg.DefaultMaxIter
//	tol: 1e-12             # optional; linalg.DefaultTolerance
//	epsilon: 1e-12         # optional; linalg.DefaultEpsilon
//
// Validation happens once in Parse; a returned Problem is always runnable.
package problem

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/linalg"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// Method names accepted in the `method` field.
const (
	MethodLUP         = "lup"
	MethodSolve       = "solve"
	MethodGaussSeidel = "gauss-seidel"
	MethodInverse     = "inverse"
	MethodDeterminant = "det"
)

// ErrInvalidProblem is returned for any structurally invalid problem file.
var ErrInvalidProblem = errors.New("problem: invalid problem")

// File mirrors the YAML document.
type File struct {
	Method  string      `yaml:"method"`
	A       [][]float64 `yaml:"a"`
	B       []float64   `yaml:"b,omitempty"`
	X0      []float64   `yaml:"x0,omitempty"`
	MaxIter *int        `yaml:"maxIter,omitempty"`
	Tol     *float64    `yaml:"tol,omitempty"`
	Epsilon *float64    `yaml:"epsilon,omitempty"`
}

// Problem is a validated File converted to field.Real containers.
type Problem struct {
	Method  string
	A       *matrix.Dense[field.Real]
	B       *matrix.Dense[field.Real] // nil for inverse and det
	X0      *matrix.Dense[field.Real] // nil unless method is gauss-seidel
	MaxIter int
	Tol     float64
	Epsilon float64
}

// Load reads and parses the problem file at path.
func Load(path string) (*Problem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("problem: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes a YAML problem and validates it.
func Parse(raw []byte) (*Problem, error) {
	f, err := Decode(raw)
	if err != nil {
		return nil, err
	}

	return f.Build()
}

// Decode unmarshals a YAML problem without validating it, so callers can
// adjust fields (for example the method) before Build.
func Decode(raw []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("problem: decode: %w", err)
	}

	return &f, nil
}

// Validate checks shapes, the method name and numeric parameters.
func (f *File) Validate() error {
	switch f.Method {
	case MethodLUP, MethodSolve, MethodGaussSeidel, MethodInverse, MethodDeterminant:
	default:
		return fmt.Errorf("%w: unknown method %q", ErrInvalidProblem, f.Method)
	}
	n := len(f.A)
	if n == 0 {
		return fmt.Errorf("%w: matrix a is empty", ErrInvalidProblem)
	}
	for i, row := range f.A {
		if len(row) != n {
			return fmt.Errorf("%w: row %d of a has %d values, want %d", ErrInvalidProblem, i, len(row), n)
		}
	}
	if f.needsRHS() && len(f.B) != n {
		return fmt.Errorf("%w: b has %d values, want %d", ErrInvalidProblem, len(f.B), n)
	}
	if f.X0 != nil && len(f.X0) != n {
		return fmt.Errorf("%w: x0 has %d values, want %d", ErrInvalidProblem, len(f.X0), n)
	}
	if f.MaxIter != nil && *f.MaxIter < 0 {
		return fmt.Errorf("%w: maxIter must be >= 0, got %d", ErrInvalidProblem, *f.MaxIter)
	}
	if f.Tol != nil && !validNonNegative(*f.Tol) {
		return fmt.Errorf("%w: tol must be finite and >= 0, got %g", ErrInvalidProblem, *f.Tol)
	}
	if f.Epsilon != nil && !validNonNegative(*f.Epsilon) {
		return fmt.Errorf("%w: epsilon must be finite and >= 0, got %g", ErrInvalidProblem, *f.Epsilon)
	}

	return nil
}

// Build validates f and converts it into a Problem with defaults applied.
func (f *File) Build() (*Problem, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	p := &Problem{
		Method:  f.Method,
		MaxIter: linalg.DefaultMaxIter,
		Tol:     linalg.DefaultTolerance,
		Epsilon: linalg.DefaultEpsilon,
	}
	if f.MaxIter != nil {
		p.MaxIter = *f.MaxIter
	}
	if f.Tol != nil {
		p.Tol = *f.Tol
	}
	if f.Epsilon != nil {
		p.Epsilon = *f.Epsilon
	}

	n := len(f.A)
	rows := make([][]field.Real, n)
	for i, row := range f.A {
		rows[i] = reals(row)
	}
	var err error
	if p.A, err = matrix.NewFromRows(n, n, rows); err != nil {
		return nil, fmt.Errorf("problem: a: %w", err)
	}
	if f.needsRHS() {
		if p.B, err = matrix.NewVector(reals(f.B)...); err != nil {
			return nil, fmt.Errorf("problem: b: %w", err)
		}
	}
	if f.Method == MethodGaussSeidel {
		if f.X0 == nil {
			p.X0, err = matrix.ZeroVector[field.Real](n)
		} else {
			p.X0, err = matrix.NewVector(reals(f.X0)...)
		}
		if err != nil {
			return nil, fmt.Errorf("problem: x0: %w", err)
		}
	}

	return p, nil
}

// Options returns the linalg options the problem asks for.
func (p *Problem) Options() []linalg.Option {
	return []linalg.Option{linalg.WithEpsilon(p.Epsilon)}
}

func (f *File) needsRHS() bool {
	return f.Method == MethodLUP || f.Method == MethodSolve || f.Method == MethodGaussSeidel
}

func validNonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func reals(values []float64) []field.Real {
	out := make([]field.Real, len(values))
	for i, v := range values {
		out[i] = field.Real(v)
	}

	return out
}
