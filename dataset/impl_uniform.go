// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// impl_uniform.go — the five uniform-sampling generators and their rules.
//
// Purpose (single responsibility):
//   • Expose each labeling rule as a pure Point → {0,1} predicate, so a
//     visualization harness can paint decision regions without sampling.
//   • Expose one public factory per rule; all five share a single
//     assembler (sample → label pointwise → Dataset).
//
// Contract:
//   • Factories validate n first and return wrapped ErrNegativeCount on
//     n < 0; they NEVER panic.
//   • Determinism per (n, options); RNG resolution is rngFrom(cfg).
//   • O(n) time, O(n) memory per call.
package dataset

// LabelSimple classifies by a single vertical line: positive when
// X1 < SimpleBoundary.
func LabelSimple(p Point) int {
	if p.X1 < SimpleBoundary {
		return ClassPositive
	}

	return ClassNegative
}

// LabelDiag classifies by the diagonal X1 + X2 = DiagBoundary: positive
// below the diagonal.
func LabelDiag(p Point) int {
	if p.X1+p.X2 < DiagBoundary {
		return ClassPositive
	}

	return ClassNegative
}

// LabelSplit classifies by two vertical lines: positive in the outer
// bands X1 < SplitLow or X1 > SplitHigh, negative in the middle band.
func LabelSplit(p Point) int {
	if p.X1 < SplitLow || p.X1 > SplitHigh {
		return ClassPositive
	}

	return ClassNegative
}

// LabelXor classifies by opposing quadrants around
// (XorBoundary, XorBoundary): positive when exactly one coordinate
// strictly exceeds the boundary. Points on either boundary line are
// negative (both comparisons are strict).
func LabelXor(p Point) int {
	if (p.X1 < XorBoundary && p.X2 > XorBoundary) || (p.X1 > XorBoundary && p.X2 < XorBoundary) {
		return ClassPositive
	}

	return ClassNegative
}

// LabelCircle classifies by a circle of radius √CircleRadiusSq centered
// at (CircleCenter, CircleCenter): positive strictly outside the circle.
func LabelCircle(p Point) int {
	dx := p.X1 - CircleCenter
	dy := p.X2 - CircleCenter
	if dx*dx+dy*dy > CircleRadiusSq {
		return ClassPositive
	}

	return ClassNegative
}

// buildUniform is the shared assembler behind the five boundary
// generators: validate, resolve config, sample, label pointwise.
func buildUniform(method string, n int, rule func(Point) int, opts []Option) (Dataset, error) {
	// Early count check avoids any allocation or RNG setup on invalid input.
	if err := validateCount(method, n); err != nil {
		return Dataset{}, err
	}

	// Resolve deterministic configuration once (O(len(opts))).
	cfg := newDatasetConfig(opts...)

	// Draw the points, then apply the rule pointwise.
	pts := uniformPoints(n, rngFrom(cfg))
	labels := make([]int, n)
	for i, p := range pts {
		labels[i] = rule(p)
	}

	return Dataset{Count: n, Points: pts, Labels: labels}, nil
}

// Simple generates n uniform points labeled by LabelSimple — a linearly
// separable dataset with a vertical boundary at X1 = 0.5.
// Complexity: O(n) time, O(n) memory.
func Simple(n int, opts ...Option) (Dataset, error) {
	return buildUniform(MethodSimple, n, LabelSimple, opts)
}

// Diag generates n uniform points labeled by LabelDiag — a linearly
// separable dataset with a diagonal boundary.
// Complexity: O(n) time, O(n) memory.
func Diag(n int, opts ...Option) (Dataset, error) {
	return buildUniform(MethodDiag, n, LabelDiag, opts)
}

// Split generates n uniform points labeled by LabelSplit — two positive
// bands flanking a negative middle band, requiring two linear boundaries.
// Complexity: O(n) time, O(n) memory.
func Split(n int, opts ...Option) (Dataset, error) {
	return buildUniform(MethodSplit, n, LabelSplit, opts)
}

// Xor generates n uniform points labeled by LabelXor — the classic
// non-linearly-separable quadrant pattern.
// Complexity: O(n) time, O(n) memory.
func Xor(n int, opts ...Option) (Dataset, error) {
	return buildUniform(MethodXor, n, LabelXor, opts)
}

// Circle generates n uniform points labeled by LabelCircle — a ring of
// positives around a negative disk, requiring a curved boundary.
// Complexity: O(n) time, O(n) memory.
func Circle(n int, opts ...Option) (Dataset, error) {
	return buildUniform(MethodCircle, n, LabelCircle, opts)
}
