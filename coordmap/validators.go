// SPDX-License-Identifier: MIT

package coordmap

import "fmt"

// validatorErrorf tags err with the name of the failing check.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateLen checks that coords is non-nil and exactly n long.
func validateLen(tag string, coords []float64, n int) error {
	if coords == nil {
		return validatorErrorf(tag, ErrNilInput)
	}
	if len(coords) != n {
		return validatorErrorf(tag, fmt.Errorf("%w: got %d components, want %d", ErrDimensionMismatch, len(coords), n))
	}

	return nil
}
