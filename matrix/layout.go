// SPDX-License-Identifier: MIT
// Package matrix: row-major layout contract shared by every kernel and the printer.
// Element (i0, i1) of an N0×N1 matrix lives at flat offset i0*N1 + i1.

package matrix

import "fmt"

// Offset returns the flat row-major index of (row, col) in a matrix with cols columns.
// No bounds checking. Complexity: O(1).
func Offset(row, col, cols int) int { return row*cols + col }

// View is a non-owning, bounds-checked window over a caller buffer.
// It holds the slice only; storage ownership stays with the caller and
// writes go straight through to it.
type View[T Number] struct {
	data []T // borrowed, len == rows*cols
	rows int // N0
	cols int // N1
}

// NewView wraps buf as a rows×cols row-major matrix.
// Only the first rows*cols elements are visible through the view.
//
// Errors: ErrBadShape, ErrShortBuffer (from ValidateBuffer).
// Complexity: O(1), no allocation.
func NewView[T Number](buf []T, rows, cols int) (View[T], error) {
	if err := ValidateBuffer(buf, rows, cols); err != nil {
		return View[T]{}, fmt.Errorf("NewView: %w", err)
	}

	return View[T]{data: buf[:rows*cols:rows*cols], rows: rows, cols: cols}, nil
}

// Rows returns the number of rows in the view.
func (v View[T]) Rows() int { return v.rows }

// Cols returns the number of columns in the view.
func (v View[T]) Cols() int { return v.cols }

// Shape returns the (rows, cols) pair of the view.
func (v View[T]) Shape() Shape { return Shape{Rows: v.rows, Cols: v.cols} }

// Data returns the visible rows*cols prefix of the borrowed buffer.
func (v View[T]) Data() []T { return v.data }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// tagged with the calling method.
func (v View[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= v.rows || col < 0 || col >= v.cols {
		return 0, fmt.Errorf("View.%s(%d,%d): %w", method, row, col, ErrOutOfRange)
	}

	return Offset(row, col, v.cols), nil
}

// At reads element (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (v View[T]) At(row, col int) (T, error) {
	idx, err := v.indexOf("At", row, col)
	if err != nil {
		var zero T
		return zero, err
	}

	return v.data[idx], nil
}

// Set writes val at (row, col) into the caller's buffer.
// Errors: ErrOutOfRange. Complexity: O(1).
func (v View[T]) Set(row, col int, val T) error {
	idx, err := v.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	v.data[idx] = val

	return nil
}

// Row returns row i as a sub-slice sharing storage with the buffer.
// Errors: ErrOutOfRange. Complexity: O(1).
func (v View[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= v.rows {
		return nil, fmt.Errorf("View.Row(%d): %w", i, ErrOutOfRange)
	}
	base := i * v.cols

	return v.data[base : base+v.cols : base+v.cols], nil
}
