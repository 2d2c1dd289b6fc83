// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Checked entry points
// return these wrapped with an operation tag; tests MUST match them via
// errors.Is. Unchecked kernels (MatMul, Hadamard, RandomFill) report nothing:
// a violated precondition surfaces as a runtime bounds panic.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the boundary; callers still use errors.Is.
//
// ERROR PRIORITY (enforced in validators and tests):
// shape -> buffer length -> aliasing.

var (
	// ErrBadShape is returned when a requested shape has a negative dimension
	// or rows*cols overflows int.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrShortBuffer indicates that a buffer holds fewer than rows*cols elements.
	ErrShortBuffer = errors.New("matrix: buffer shorter than rows*cols")

	// ErrAliased indicates that an output buffer overlaps an input where
	// the operation requires distinct storage (MatMul).
	ErrAliased = errors.New("matrix: output aliases input")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// View indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
