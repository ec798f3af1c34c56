// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// options.go — functional options for the dataset package.
//
// Contract (strict):
//   • Options are functional (type Option func(*datasetConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generators themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through datasetConfig.
package dataset

import (
	"math/rand" // RNG source for the uniform sampler
)

// Option customizes the behavior of a generator by mutating a
// datasetConfig instance before generation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*datasetConfig)

// WithRand provides an explicit RNG for the uniform point sampler.
// Panics on nil; prefer WithSeed for reproducible runs. Supplying a shared
// *rand.Rand lets several generator calls consume one stream, at the price
// of the caller owning its synchronization.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("dataset: WithRand(nil)")
	}
	return func(c *datasetConfig) {
		// Attach the RNG; callers decide the seed policy.
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) Option {
	return func(c *datasetConfig) {
		// Seeded source → reproducible coordinate draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
