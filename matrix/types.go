// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
// This file contains ONLY element-type constraints and the Shape helper.
// Errors and validators live in dedicated files (errors.go, validators.go).
package matrix

import "fmt"

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// Number is any element type the kernels accept.
// It supports the zero value, +, * and conversion from float64.
type Number interface {
	SignedInts | UnsignedInts | Floats
}

// Shape is a (rows, cols) pair describing a row-major buffer.
// It is never stored inside a buffer; kernels take rows and cols directly.
type Shape struct {
	Rows int // N0
	Cols int // N1
}

// Len returns Rows*Cols, the minimum buffer length for this shape.
// Complexity: O(1).
func (s Shape) Len() int { return s.Rows * s.Cols }

// String implements fmt.Stringer ("RxC").
func (s Shape) String() string { return fmt.Sprintf("%dx%d", s.Rows, s.Cols) }

// isFloat reports whether T is a floating-point type.
// Halving one is zero only under integer division.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2

	return half != 0
}
