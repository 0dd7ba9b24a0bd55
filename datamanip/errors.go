// SPDX-License-Identifier: MIT

package datamanip

import "errors"

// ErrZeroSum indicates the elements sum to exactly zero, so no normalized
// representation exists. It is the only failure of this package.
var ErrZeroSum = errors.New("datamanip: cannot normalize a sequence whose elements sum to zero")
