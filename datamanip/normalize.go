// SPDX-License-Identifier: MIT

package datamanip

import "fmt"

// Normalize returns a new slice where each element is divided by the sum of
// all elements.
//
// Behavior highlights:
//   - The input is never mutated; order and length are preserved.
//   - The zero test is exact float equality, so (1, -1, 0) fails while
//     (1e-300, 0, 0) succeeds.
//   - nil and empty inputs sum to zero and fail.
//   - S is accumulated strictly left to right, so cancelling inputs such as
//     (1e16, 1, -1e16, -1) yield S = -1 rather than 0.
//
// Errors:
//   - ErrZeroSum if Σvalues == 0.
//
// Complexity:
//   - Time O(n), Space O(n).
func Normalize(values []float64) ([]float64, error) {
	sum := sequentialSum(values)
	if sum == 0 {
		return nil, fmt.Errorf("Normalize: %w", ErrZeroSum)
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / sum
	}

	return out, nil
}

// NormalizeTriple is the fixed-size variant of Normalize for ternary data.
func NormalizeTriple(t [3]float64) ([3]float64, error) {
	sum := t[0] + t[1] + t[2]
	if sum == 0 {
		return [3]float64{}, fmt.Errorf("NormalizeTriple: %w", ErrZeroSum)
	}

	return [3]float64{t[0] / sum, t[1] / sum, t[2] / sum}, nil
}

// sequentialSum adds values in index order with a single accumulator.
func sequentialSum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum
}
