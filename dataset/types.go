// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// types.go — core record types shared by every generator.
package dataset

// Point is a single 2D sample with coordinates (X1, X2).
// Uniform generators draw both coordinates from [0, 1); the Spiral
// generator places points along parametric arms and may leave the
// unit square slightly.
type Point struct {
	X1 float64 // first coordinate
	X2 float64 // second coordinate
}

// Dataset is a fixed collection of labeled points produced by one
// generator call. It is built whole and never mutated afterwards;
// ownership transfers entirely to the caller.
//
// Points and Labels are index-aligned: Labels[i] classifies Points[i].
// For every generator except Spiral, len(Points) == len(Labels) == Count.
// Spiral records the requested count in Count while emitting 2·(Count/2)
// entries, so an odd request is observable by comparing Count with
// len(Points) (see Spiral for the rationale).
type Dataset struct {
	Count  int     // requested number of points
	Points []Point // generated samples, in emission order
	Labels []int   // ClassNegative or ClassPositive per sample
}

// GeneratorFunc builds a Dataset of n points under the supplied options.
// Implementations validate n first (negative n ⇒ ErrNegativeCount),
// resolve options into an immutable config, and never panic.
type GeneratorFunc func(n int, opts ...Option) (Dataset, error)
