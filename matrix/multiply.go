// SPDX-License-Identifier: MIT
// Package matrix: dense matrix product over row-major buffers.
//
// Determinism:
//   - Fixed i0→i1→p loop order; each output cell is a left-to-right sum over p
//     starting at the zero value of T.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opMatMul   = "MatMul"
	opHadamard = "Hadamard"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatMul computes C = A·B where A is m×k, B is k×n and C is m×n:
//
//	c[i0*n+i1] = Σ_{p<k} a[i0*k+p] * b[p*n+i1]
//
// Contract (unchecked): len(a) ≥ m*k, len(b) ≥ k*n, len(c) ≥ m*n and c
// shares no storage with a or b. Short buffers panic with the runtime bounds
// check; aliasing silently corrupts the result. Use MatMulChecked to have
// both reported as errors.
//
// Complexity: Time O(m*k*n), Space O(1).
func MatMul[T Number](a, b, c []T, k, m, n int) {
	// Reslice once so the compiler can drop per-access bounds checks.
	a, b, c = a[:m*k], b[:k*n], c[:m*n]

	var (
		i0, i1, p  int
		rowA, rowC []T
		acc        T
	)
	for i0 = 0; i0 < m; i0++ {
		rowA = a[i0*k : i0*k+k]
		rowC = c[i0*n : i0*n+n]
		for i1 = 0; i1 < n; i1++ {
			acc = 0
			for p = 0; p < k; p++ {
				acc += rowA[p] * b[p*n+i1]
			}
			rowC[i1] = acc
		}
	}
}

// MatMulChecked validates the operands with ValidateMul and then runs MatMul.
//
// Errors (wrapped with "MatMul"):
//   - ErrBadShape    negative k, m or n.
//   - ErrShortBuffer a, b or c too short for its shape.
//   - ErrAliased     c overlaps a or b.
//
// On error c is left untouched.
func MatMulChecked[T Number](a, b, c []T, k, m, n int) error {
	if err := ValidateMul(a, b, c, k, m, n); err != nil {
		return matrixErrorf(opMatMul, err)
	}
	MatMul(a, b, c, k, m, n)

	return nil
}
