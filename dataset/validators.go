// Package dataset provides validation helpers to enforce parameter
// contracts in generator functions.
//
// Each helper returns a formatted error wrapping the matching sentinel,
// so callers keep both the human-readable context and errors.Is support.
package dataset

import "fmt"

// validateCount ensures that the requested point count n is ≥ MinCount.
// Returns "<Method>: point count must be ≥ 0, got <n>" wrapping
// ErrNegativeCount otherwise.
//
// Parameters:
//   - method: canonical generator name constant, e.g. MethodSimple.
//   - n:      actual count supplied by the caller.
//
// Complexity: O(1) time and space.
func validateCount(method string, n int) error {
	if n < MinCount {
		// Wrap the sentinel to keep errors.Is(err, ErrNegativeCount) true.
		return fmt.Errorf("%s: point count must be ≥ %d, got %d: %w", method, MinCount, n, ErrNegativeCount)
	}

	return nil
}
