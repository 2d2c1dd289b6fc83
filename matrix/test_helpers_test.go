// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities for the kernels.
//   • Keep all data finite so tolerance comparisons stay meaningful.

package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// defaultTol is the absolute tolerance for float64 comparisons of small products.
const defaultTol = 1e-9

// myFloat and myInt exercise the ~T arms of the Number constraint.
type (
	myFloat float64
	myInt   int32
)

// seededRand RETURNS a reproducible generator for fixtures.
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// randomBuf ALLOCATES an n-element buffer with U(-1,1) values from seed.
// Complexity: Time O(n), Space O(n).
func randomBuf(seed uint64, n int) []float64 {
	r := seededRand(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()*2 - 1 // [-1,1)
	}

	return out
}

// identityBuf ALLOCATES an n×n identity in row-major layout.
func identityBuf[T matrix.Number](n int) []T {
	out := make([]T, n*n)
	for i := 0; i < n; i++ {
		out[i*n+i] = 1
	}

	return out
}

// addBuf RETURNS a+b elementwise (same length assumed).
func addBuf(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

// requireAllClose FAILS the test on the first element where |got-want| > tol.
func requireAllClose(t testing.TB, want, got []float64, tol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("length mismatch: want %d, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(want[i]-got[i]) > tol {
			t.Fatalf("element %d: want %.12g, got %.12g (tol %g)", i, want[i], got[i], tol)
		}
	}
}
