// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// errors.go — sentinel errors for the dataset package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Generators attach context using `%w` (method token + detail).
//   • Generators MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).
package dataset

import "errors"

// ErrNegativeCount indicates that a requested point count is below zero.
// Classification: Validation error (parameters).
// Typical origins: any generator called with n < 0.
// Usage: if errors.Is(err, ErrNegativeCount) { /* reject the request */ }.
var ErrNegativeCount = errors.New("dataset: point count must be non-negative")

// ErrUnknownDataset indicates a registry lookup for a name outside the
// closed generator enumeration ("Simple", "Diag", "Split", "Xor",
// "Circle", "Spiral").
// Usage: if errors.Is(err, ErrUnknownDataset) { /* list Names() */ }.
var ErrUnknownDataset = errors.New("dataset: unknown dataset name")
