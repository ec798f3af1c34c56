// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// Package dataset provides named generators for labeled 2D point datasets
// used in binary-classification demos. It centralizes point sampling,
// labeling rules, registry lookup, and deterministic configuration, keeping
// the generators DRY, testable, and consistent.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – Option:          a function that mutates datasetConfig before use.
//     – datasetConfig:   holds the RNG for stochastic sampling.
//   - Labeling rules (pure Point → {0,1} predicates):
//     – LabelSimple:     vertical boundary at X1 = 0.5.
//     – LabelDiag:       diagonal boundary X1 + X2 = 0.5.
//     – LabelSplit:      two vertical boundaries at X1 = 0.2 and X1 = 0.8.
//     – LabelXor:        opposing-quadrant pattern around (0.5, 0.5).
//     – LabelCircle:     circle of radius √0.1 centered at (0.5, 0.5).
//   - Generators (GeneratorFunc implementations):
//     – Simple, Diag, Split, Xor, Circle: uniform sampling + rule above.
//     – Spiral: two parametric interleaved arms, no randomness at all.
//   - Registry:
//     – Lookup:          canonical name → GeneratorFunc.
//     – Generate:        one-shot lookup-and-build entry point.
//     – Names:           sorted canonical names for menus and CLIs.
//
// Guarantees:
//
//   - Determinism: the same (generator, n, options) always yields an
//     identical Dataset. The RNG is resolved per call — WithRand, then
//     WithSeed, then the documented DefaultSeed. No global random state.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; generators themselves NEVER panic.
//   - Structured runtime errors wrapping the sentinels ErrNegativeCount
//     and ErrUnknownDataset; callers branch with errors.Is.
//   - O(n) time and O(n) memory per generator call.
//
// Concurrency: generators share no state. Calls using WithSeed (or the
// default seed) own a private RNG and are safe to run concurrently. A
// *rand.Rand supplied via WithRand is used as-is and is NOT synchronized
// by this package.
//
// See individual function documentation for detailed contracts, boundary
// rules, and the odd-count Spiral truncation note.
package dataset
