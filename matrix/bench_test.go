// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvalgebra/field"
	"github.com/katalvlaran/lvalgebra/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{16, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense[field.Real]
	sinkE matrix.Expr[field.Real]
)

func BenchmarkSum(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillRand(A, 1337)
			fillRand(B, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum[field.Real](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkProduct(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillRand(A, 7)
			fillRand(B, 8)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product[field.Real](A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

// BenchmarkChainVsEager compares one fused (A+B)·C materialization with
// materializing A+B first.
func BenchmarkChainVsEager(b *testing.B) {
	const n = 64
	A, B, C := MustDense(b, n, n), MustDense(b, n, n), MustDense(b, n, n)
	fillRand(A, 1)
	fillRand(B, 2)
	fillRand(C, 3)

	b.Run("chain", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			m, err := matrix.Of[field.Real](A).Add(B).Mul(C).Materialize()
			if err != nil {
				b.Fatal(err)
			}
			sinkM = m
		}
	})
	b.Run("eager", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			s, err := matrix.Sum[field.Real](A, B)
			if err != nil {
				b.Fatal(err)
			}
			m, err := matrix.Product[field.Real](s, C)
			if err != nil {
				b.Fatal(err)
			}
			sinkM = m
		}
	})
}

func BenchmarkBuildOnly(b *testing.B) {
	A, B := MustDense(b, 32, 32), MustDense(b, 32, 32)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		e, err := matrix.Mul[field.Real](A, B)
		if err != nil {
			b.Fatal(err)
		}
		sinkE = e
	}
}
