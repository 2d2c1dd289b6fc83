// Package matrix offers elementary dense-matrix utilities over flat,
// caller-owned, row-major buffers of any numeric element type.
//
// The matrix package provides:
//
//   - MatMul: C(m×n) = A(m×k) · B(k×n) with plain left-to-right accumulation.
//   - Hadamard: elementwise product, safe when the output aliases an input.
//   - RandomFill: uniform [0,1) fill from a per-call, entropy-seeded generator.
//   - Print / Fprint / Sprint: bordered scientific-notation rendering.
//
// Layout: element (i0, i1) of an N0×N1 matrix lives at offset i0*N1 + i1.
// Shapes are passed alongside each buffer and never stored in it. The kernels
// allocate nothing and retain nothing past the call.
//
// The plain kernels trust their arguments; a too-short buffer panics with the
// runtime bounds check. MatMulChecked, HadamardChecked, NewView and the
// Validate* helpers report the same conditions as sentinel errors instead.
//
// See the examples in this package for usage patterns.
package matrix
