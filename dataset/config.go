// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • datasetConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newDatasetConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng = nil — resolved to rand.New(rand.NewSource(DefaultSeed)) at use.
package dataset

import (
	"math/rand" // RNG for the uniform point sampler
)

// datasetConfig aggregates all knobs used by generators.
// It is passed by VALUE to generators (immutable to callers).
type datasetConfig struct {
	// RNG for uniform sampling; nil means "seed with DefaultSeed".
	rng *rand.Rand
}

// newDatasetConfig constructs a config with deterministic defaults and
// applies all options in order; last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newDatasetConfig(opts ...Option) datasetConfig {
	// Start with strict, deterministic defaults.
	cfg := datasetConfig{
		rng: nil, // no RNG unless explicitly set
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Return by value to encourage immutability for callers.
	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by DefaultSeed. This keeps every call deterministic without any
// process-global random state.
func rngFrom(cfg datasetConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(DefaultSeed))
}
