// SPDX-License-Identifier: MIT
// Package matrix: random fill of row-major buffers.
//
// Each RandomFill call owns its generator: a ChaCha8 stream seeded from the
// platform entropy source, created and discarded within the call. There is no
// package-level random state, so the kernel is safe to call from any goroutine
// that exclusively owns dst.

package matrix

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// NewEntropyRand returns a fresh generator seeded from crypto/rand.
// If the entropy source fails, the seed falls back to the runtime-seeded
// math/rand/v2 top-level functions, which are also non-deterministic.
func NewEntropyRand() *rand.Rand {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		for i := 0; i < len(seed); i += 8 {
			binary.LittleEndian.PutUint64(seed[i:], rand.Uint64())
		}
	}

	return rand.New(rand.NewChaCha8(seed))
}

// RandomFill fills dst[0:n0*n1] with independent uniform values in [0,1),
// converted to T. Integer element types therefore receive zeros.
// Successive calls are not reproducible.
//
// dst shorter than n0*n1 panics with the runtime bounds check.
// Complexity: O(n0*n1).
func RandomFill[T Number](dst []T, n0, n1 int) {
	RandomFillWith(NewEntropyRand(), dst, n0, n1)
}

// RandomFillWith is RandomFill drawing from r, for reproducible fills.
func RandomFillWith[T Number](r *rand.Rand, dst []T, n0, n1 int) {
	var v T
	redraw := isFloat[T]() // integer conversions truncate to 0 and never hit 1
	dst = dst[:n0*n1]      // one bounds check up front
	for i := range dst {
		v = T(r.Float64())
		for redraw && v == 1 { // float32 rounds values just below 1 up to 1
			v = T(r.Float64())
		}
		dst[i] = v
	}
}
