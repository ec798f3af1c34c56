// Package scatter is your in-memory playground for synthesizing labeled
// 2D point clouds — the classic toy datasets used to demo and visualize
// binary classifiers and their decision boundaries.
//
// 🚀 What is scatter?
//
//	A small, deterministic, dependency-free library that brings together:
//		• Core primitives: Point and Dataset records, index-aligned labels
//		• Uniform generators: Simple, Diag, Split, Xor, Circle boundaries
//		• Parametric generators: two interleaved Spiral arms
//		• A registry: look up any generator by its canonical name
//		• Reproducibility: explicit seeds, no ambient global randomness
//
// ✨ Why choose scatter?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – same seed, same dataset, every run
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel values, branch with errors.Is
//
// Everything lives under one subpackage:
//
//	dataset/ — generators, labeling rules, registry, options & errors
//
// Quick ASCII example (Xor, labels by quadrant):
//
//	    1 │ 0
//	    ──┼──
//	    0 │ 1
//
//	points left-high or right-low are class 1, the rest class 0.
//
// Dive into the dataset package docs for contracts, seeds and the full
// generator table.
//
//	go get github.com/katalvlaran/scatter/dataset
package scatter
