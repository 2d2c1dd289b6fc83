// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose UNEXPORTED helpers to matrix_test ONLY.
//   - Lives in a _test.go file, so it is invisible in production builds.

var (
	// ExportedIsFloat64 reports the float detection result for float64.
	ExportedIsFloat64 = isFloat[float64]
	// ExportedIsFloat32 reports the float detection result for float32.
	ExportedIsFloat32 = isFloat[float32]
	// ExportedIsFloatInt reports the float detection result for int.
	ExportedIsFloatInt = isFloat[int]
	// ExportedIsFloatUint8 reports the float detection result for uint8.
	ExportedIsFloatUint8 = isFloat[uint8]

	// ExportedOverlapsF64 exposes overlaps for float64 slices.
	ExportedOverlapsF64 = overlaps[float64]
)
