// Package matrix_test provides benchmarks for the dense kernels,
// using deterministic random fill for the operands.
package matrix_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the square matrix sizes to benchmark.
var benchSizes = []int{32, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkF   float64
	sinkErr error
)

func BenchmarkMatMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomBuf(1337, n*n)
			y := randomBuf(4242, n*n)
			z := make([]float64, n*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matrix.MatMul(x, y, z, n, n, n)
			}
			sinkF = z[0]
		})
	}
}

func BenchmarkMatMulChecked(b *testing.B) {
	b.ReportAllocs()
	const n = 64
	x := randomBuf(1, n*n)
	y := randomBuf(2, n*n)
	z := make([]float64, n*n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkErr = matrix.MatMulChecked(x, y, z, n, n, n)
	}
}

func BenchmarkHadamard(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := randomBuf(11, n*n)
			y := randomBuf(22, n*n)
			z := make([]float64, n*n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				matrix.Hadamard(x, y, z, n, n)
			}
			sinkF = z[0]
		})
	}
}

func BenchmarkRandomFill(b *testing.B) {
	b.ReportAllocs()
	const n = 128
	buf := make([]float64, n*n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		matrix.RandomFill(buf, n, n)
	}
	sinkF = buf[0]
}

func BenchmarkFprint(b *testing.B) {
	b.ReportAllocs()
	const n = 32
	buf := randomBuf(7, n*n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkErr = matrix.Fprint(io.Discard, buf, n, n)
	}
}
