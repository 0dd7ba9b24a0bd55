// SPDX-License-Identifier: MIT

package coordmap

// GatherSigma_TestOnly exposes the effective σ after applying opts.
func GatherSigma_TestOnly(opts ...Option) float64 { return gatherOptions(opts...).sigma }
