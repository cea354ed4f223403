// Package lvalgebra is a generic linear-algebra core: one scalar contract,
// dense containers over it, a lazy expression layer and the classic direct
// and iterative solvers, all usable with real or complex numbers.
//
// 🚀 What is inside?
//
//	• field:   the Field[T] contract plus Real and Complex scalars
//	• matrix:  Dense[T] containers, vectors, lazy Add/Sub/Mul/Scale/Transpose
//	           nodes and a fluent Chain builder
//	• linalg:  LUP decomposition, determinants, inverses, direct Solve,
//	           Gauss-Seidel and residual checks
//	• cmd/lasolve: run any of the above on a YAML problem file
//
// ✨ Guarantees
//
//   - Shapes are fixed at construction and checked when an expression is built.
//   - Expressions are evaluated once per destination cell, at materialization.
//   - Algorithms copy their inputs and never mutate caller matrices.
//   - Errors are sentinels matched with errors.Is; nothing panics on bad input.
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]field.Real{{1, 2}, {3, 4}})
//	det, _ := linalg.Determinant(a)   // -2
//	inv, _ := linalg.Inverse(a)       // [[-2, 1], [1.5, -0.5]]
//
//	go get github.com/katalvlaran/lvalgebra
package lvalgebra
