// SPDX-License-Identifier: MIT
// Package matrix: bordered text rendering of row-major buffers.
//
// Layout for an N0×N1 matrix:
//
//	---            top border: exactly N1 dashes
//	| e0 e1 e2 |   N0 rows, each value preceded by one space
//	---            bottom border, identical to the top
//
// Floating elements use scientific notation with 2 fractional digits
// ("1.00e+00"); integer elements print in plain decimal.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	borderRune = '-'
	rowOpen    = "|"
	rowClose   = " |\n"
	floatVerb  = "%.2e"
)

// FormatElement renders a single element the way Fprint does.
func FormatElement[T Number](v T) string {
	if isFloat[T]() {
		return fmt.Sprintf(floatVerb, float64(v))
	}

	return fmt.Sprint(v)
}

// Fprint writes the bordered rendering of src (n0×n1, row-major) to w.
// src is never mutated. The first write error is returned.
//
// src shorter than n0*n1 panics with the runtime bounds check.
// Complexity: O(n0*n1).
func Fprint[T Number](w io.Writer, src []T, n0, n1 int) error {
	bw := bufio.NewWriter(w)
	border := strings.Repeat(string(borderRune), n1) + "\n"

	_, _ = bw.WriteString(border)
	var i0, i1, base int
	for i0 = 0; i0 < n0; i0++ {
		base = i0 * n1
		_, _ = bw.WriteString(rowOpen)
		for i1 = 0; i1 < n1; i1++ {
			_ = bw.WriteByte(' ')
			_, _ = bw.WriteString(FormatElement(src[base+i1]))
		}
		_, _ = bw.WriteString(rowClose)
	}
	_, _ = bw.WriteString(border)

	// bufio.Writer latches the first error; Flush reports it.
	return bw.Flush()
}

// Print writes the rendering of src to standard output.
// Write errors are dropped.
func Print[T Number](src []T, n0, n1 int) {
	_ = Fprint(os.Stdout, src, n0, n1)
}

// Sprint returns the rendering of src as a string.
func Sprint[T Number](src []T, n0, n1 int) string {
	var sb strings.Builder
	_ = Fprint(&sb, src, n0, n1) // strings.Builder never fails

	return sb.String()
}
