// SPDX-License-Identifier: MIT

package matrix

// Hadamard computes the elementwise product c[i] = a[i]*b[i] for i < n0*n1.
// Hadamard ≠ matrix multiplication; use MatMul for A·B.
//
// Any of a, b, c may be the same buffer: each output cell depends only on the
// inputs at its own offset, which are read before it is written.
//
// Contract (unchecked): all three buffers hold at least n0*n1 elements.
// Complexity: Time O(n0*n1), Space O(1).
func Hadamard[T Number](a, b, c []T, n0, n1 int) {
	n := n0 * n1
	a, b, c = a[:n], b[:n], c[:n]
	for i := range c {
		c[i] = a[i] * b[i]
	}
}

// HadamardChecked validates shapes and lengths with ValidateHadamard, then
// runs Hadamard. Aliasing is allowed.
//
// Errors (wrapped with "Hadamard"): ErrBadShape, ErrShortBuffer.
func HadamardChecked[T Number](a, b, c []T, n0, n1 int) error {
	if err := ValidateHadamard(a, b, c, n0, n1); err != nil {
		return matrixErrorf(opHadamard, err)
	}
	Hadamard(a, b, c, n0, n1)

	return nil
}
