// SPDX-License-Identifier: MIT

package coordmap

import "errors"

// Every message is prefixed with "coordmap: ". Sentinels are returned either
// bare or wrapped by validatorErrorf; callers match them with errors.Is.
var (
	// ErrNilInput indicates that a nil slice or geometry was passed where
	// coordinates are required.
	ErrNilInput = errors.New("coordmap: nil input")

	// ErrDimensionMismatch indicates that an input sequence does not carry
	// the number of components the conversion needs (3 for ternary, 2 for
	// Cartesian).
	ErrDimensionMismatch = errors.New("coordmap: dimension mismatch")
)
