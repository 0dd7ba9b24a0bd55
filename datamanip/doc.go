// SPDX-License-Identifier: MIT

// Package datamanip prepares raw compositions for ternary plotting.
//
// Normalize divides every element of a sequence by the sequence sum, so the
// result sums to one: (a, b, c) → (a/S, b/S, c/S) with S = a+b+c.
// A zero sum has no meaningful normalized form and fails with ErrZeroSum.
//
// ⚙️ Usage:
//
//	fr, err := datamanip.Normalize([]float64{20, 30, 50}) // [0.2 0.3 0.5]
//	if errors.Is(err, datamanip.ErrZeroSum) {
//	  // skip or substitute the sample
//	}
package datamanip
