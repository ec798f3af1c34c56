// SPDX-License-Identifier: MIT
// Package: scatter/dataset
//
// registry.go — canonical name → generator mapping and public entry points.
//
// Design contract (strict):
//   - One orchestrator: Generate(name, n, opts...). Resolves the generator,
//     then delegates; errors are wrapped once at this API boundary.
//   - The enumeration is closed: six canonical names, private map, no
//     exported mutable state. Consumers extend by wrapping, not patching.
//   - Determinism: same (name, n, options) ⇒ identical Dataset.
package dataset

import (
	"fmt"
	"sort"
)

// generators is the closed enumeration of canonical dataset names.
// Keys double as the Method* error-context tokens.
var generators = map[string]GeneratorFunc{
	MethodSimple: Simple,
	MethodDiag:   Diag,
	MethodSplit:  Split,
	MethodXor:    Xor,
	MethodCircle: Circle,
	MethodSpiral: Spiral,
}

// Lookup resolves a canonical dataset name to its generator.
// Unknown names return a wrapped ErrUnknownDataset; branch with errors.Is.
// Complexity: O(1) time, O(1) space.
func Lookup(name string) (GeneratorFunc, error) {
	gen, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("%s: %q: %w", MethodLookup, name, ErrUnknownDataset)
	}

	return gen, nil
}

// Generate is the one-shot entry point: resolve name, then build n points
// under opts. Generator errors pass through unwrapped so errors.Is keeps
// working against the sentinels; lookup failures gain Generate context.
// Complexity: O(n) time, O(n) space plus the O(1) lookup.
func Generate(name string, n int, opts ...Option) (Dataset, error) {
	gen, err := Lookup(name)
	if err != nil {
		// Wrap once at the API boundary; Lookup already carries its context.
		return Dataset{}, fmt.Errorf("%s: %w", MethodGenerate, err)
	}

	return gen(n, opts...)
}

// Names returns the canonical generator names in sorted order — handy for
// CLI menus and error messages listing the valid choices.
// Complexity: O(k log k) for k = 6 names.
func Names() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
