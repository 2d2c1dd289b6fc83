// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape/buffer/alias checks.
//  - Keep the checked facades minimal by delegating guards here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    wrap once more with their op tag and callers can still use errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate only on the error path.
//
// Note:
//  - Each composite validator follows a fixed sequence (Shape → Buffer → Alias).

package matrix

import (
	"fmt"
	"math"
	"unsafe"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateShape ensures rows and cols are non-negative and rows*cols fits in an int.
// Zero is accepted and denotes an empty matrix.
// Complexity: O(1).
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 || (cols != 0 && rows > math.MaxInt/cols) {
		return validatorErrorf(fmt.Sprintf("ValidateShape(%d,%d)", rows, cols), ErrBadShape)
	}

	return nil
}

// ValidateBuffer ensures buf can hold a rows×cols row-major matrix.
//
// Errors: ErrBadShape for negative dims, ErrShortBuffer when len(buf) < rows*cols.
// Complexity: O(1).
func ValidateBuffer[T Number](buf []T, rows, cols int) error {
	if err := ValidateShape(rows, cols); err != nil {
		return err
	}
	if len(buf) < rows*cols {
		return validatorErrorf(
			fmt.Sprintf("ValidateBuffer: len %d < %s", len(buf), Shape{rows, cols}),
			ErrShortBuffer,
		)
	}

	return nil
}

// ValidateNoAlias ensures dst and src occupy disjoint memory.
// Empty slices never alias. Only the slices' lengths are considered,
// not their spare capacity.
// Complexity: O(1).
func ValidateNoAlias[T Number](dst, src []T) error {
	if overlaps(dst, src) {
		return validatorErrorf("ValidateNoAlias", ErrAliased)
	}

	return nil
}

// ValidateMul checks operands of C(m×n) = A(m×k) · B(k×n).
//
// Sequence: A buffer → B buffer → C buffer → C vs A → C vs B.
// Only the rows*cols prefix of each buffer is considered for aliasing.
// Complexity: O(1).
func ValidateMul[T Number](a, b, c []T, k, m, n int) error {
	if err := ValidateBuffer(a, m, k); err != nil {
		return validatorErrorf("ValidateMul: A", err)
	}
	if err := ValidateBuffer(b, k, n); err != nil {
		return validatorErrorf("ValidateMul: B", err)
	}
	if err := ValidateBuffer(c, m, n); err != nil {
		return validatorErrorf("ValidateMul: C", err)
	}
	out := c[:m*n]
	if err := ValidateNoAlias(out, a[:m*k]); err != nil {
		return validatorErrorf("ValidateMul: C/A", err)
	}
	if err := ValidateNoAlias(out, b[:k*n]); err != nil {
		return validatorErrorf("ValidateMul: C/B", err)
	}

	return nil
}

// ValidateHadamard checks operands of C = A ∘ B, all rows×cols.
// Aliasing between any of the three is permitted.
// Complexity: O(1).
func ValidateHadamard[T Number](a, b, c []T, rows, cols int) error {
	if err := ValidateBuffer(a, rows, cols); err != nil {
		return validatorErrorf("ValidateHadamard: A", err)
	}
	if err := ValidateBuffer(b, rows, cols); err != nil {
		return validatorErrorf("ValidateHadamard: B", err)
	}
	if err := ValidateBuffer(c, rows, cols); err != nil {
		return validatorErrorf("ValidateHadamard: C", err)
	}

	return nil
}

// overlaps reports whether the element ranges of a and b intersect.
func overlaps[T Number](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size

	return a0 < b1 && b0 < a1
}
