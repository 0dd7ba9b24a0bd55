// SPDX-License-Identifier: MIT

package coordmap

// DefaultSigma is the target sum a+b+c used by the Cartesian → ternary
// conversions when no WithSigma option is given.
const DefaultSigma = 1.0

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	sigma float64 // DefaultSigma
}

// WithSigma sets the target sum of the recovered ternary coordinate.
//
// Inputs:
//   - sigma: any real number. Zero and negative values are legal and are not
//     validated; NaN or ±Inf propagate into the A component arithmetically.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - σ shifts A alone; B and C still come from the unit triangle. To read a
//     point in percent, convert with σ = 1 and call Ternary.Scale(100).
func WithSigma(sigma float64) Option {
	return func(o *Options) { o.sigma = sigma }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{sigma: DefaultSigma}
}

// gatherOptions applies opts over the defaults in order. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
