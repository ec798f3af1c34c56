// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// sampler.go — uniform point sampler shared by the boundary generators.
//
// Contract:
//   • uniformPoints(n, rng) returns exactly n points, each coordinate an
//     independent draw from [0, 1).
//   • n is assumed ≥ 0; negative counts are rejected upstream by
//     validateCount before any allocation happens.
//   • Strict determinism per RNG state; no global randomness.
//   • O(n) time and O(n) memory; single pass, single allocation.
package dataset

import (
	"math/rand"
)

// uniformPoints draws n points with both coordinates uniform in [0, 1).
// n == 0 yields an empty, non-nil slice so callers never branch on nil.
func uniformPoints(n int, rng *rand.Rand) []Point {
	// Allocate the output buffer exactly once (tight O(n) memory).
	pts := make([]Point, n)

	// Fill all samples in a single pass — O(n) time, two draws per point.
	for i := range pts {
		pts[i] = Point{
			X1: rng.Float64(), // uniform in [0,1)
			X2: rng.Float64(), // uniform in [0,1)
		}
	}

	return pts
}
