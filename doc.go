// Package densemat is a small toolkit of elementary dense-matrix routines
// for teaching linear algebra in Go: random fill, pretty-printing, matrix
// multiplication and elementwise (Hadamard) multiplication.
//
// What is in here?
//
//	Everything operates on plain []T buffers laid out row-major, with the shape
//	passed next to the buffer:
//		• Generic over every integer and floating-point kind (matrix.Number)
//		• No owning matrix object: callers allocate, kernels borrow
//		• Checked variants that return sentinel errors instead of panicking
//
// Why this shape?
//
//   - Beginner-friendly: four operations, one layout rule
//   - Pure Go: no cgo, no SIMD, one goroutine
//   - Interoperable: a []float64 buffer is exactly what gonum's mat.NewDense takes
//
// Under the hood:
//
//	matrix/            — kernels, printer, validators, borrowed View[T]
//	examples/densedemo — runnable walk-through of every operation
//
// Quick ASCII example:
//
//	A = | 1 2 |   B = | 5 6 |   A·B = | 19 22 |   A∘B = |  5 12 |
//	    | 3 4 |       | 7 8 |         | 43 50 |         | 21 32 |
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
