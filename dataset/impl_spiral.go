// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// impl_spiral.go — deterministic two-arm spiral generator.
//
// Purpose (single responsibility):
//   • Produce two interleaved parametric spiral arms, one per class — the
//     canonical "impossible for a linear model" demo dataset.
//
// Contract:
//   • Spiral(n, opts...) emits arm A (labels 0) then arm B (labels 1),
//     n/2 points each, so an odd n yields 2·(n/2) entries while Count
//     records the request. Preserved on purpose — see the factory doc.
//   • Consumes no randomness; opts are accepted only for GeneratorFunc
//     signature uniformity and are ignored.
//   • Strict determinism: same n ⇒ identical output, always.
//   • O(n) time and O(n) memory.
package dataset

import (
	"math"
)

// spiralX is the first parametric coordinate of an arm, before recentering.
func spiralX(t float64) float64 {
	return t * math.Cos(t) / SpiralScale
}

// spiralY is the second parametric coordinate of an arm, before recentering.
func spiralY(t float64) float64 {
	return t * math.Sin(t) / SpiralScale
}

// Spiral generates two interleaved spiral arms of n/2 points each, arm A
// labeled ClassNegative and arm B labeled ClassPositive. Arm B reuses the
// same parametric helpers with a negated angle and swapped axes, which
// rotates it between the windings of arm A.
//
// Boundary quirk (intentional, load-bearing for compatibility): for odd n
// the emitted sequences hold 2·(n/2) entries — one short of the request —
// while Count still records n. Callers needing exactly n points must pass
// an even n.
//
// Complexity: O(n) time, O(n) memory.
func Spiral(n int, opts ...Option) (Dataset, error) {
	// Same validation path as every other generator.
	if err := validateCount(MethodSpiral, n); err != nil {
		return Dataset{}, err
	}

	// Options carry only RNG knobs; the spiral is fully parametric.
	_ = opts

	half := n / SpiralArms
	pts := make([]Point, 0, SpiralArms*half)
	labels := make([]int, 0, SpiralArms*half)

	// Arm A: t sweeps 10·(i/half) over i ∈ [5, 5+half).
	for i := SpiralIndexOffset; i < SpiralIndexOffset+half; i++ {
		t := SpiralTurns * float64(i) / float64(half)
		pts = append(pts, Point{
			X1: spiralX(t) + SpiralShift,
			X2: spiralY(t) + SpiralShift,
		})
		labels = append(labels, ClassNegative)
	}

	// Arm B: negated angle, swapped axes, same index range.
	for i := SpiralIndexOffset; i < SpiralIndexOffset+half; i++ {
		t := -SpiralTurns * float64(i) / float64(half)
		pts = append(pts, Point{
			X1: spiralY(t) + SpiralShift,
			X2: spiralX(t) + SpiralShift,
		})
		labels = append(labels, ClassPositive)
	}

	return Dataset{Count: n, Points: pts, Labels: labels}, nil
}
