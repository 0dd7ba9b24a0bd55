// SPDX-License-Identifier: MIT

package coordmap_test

import (
	"testing"

	"github.com/katalvlaran/ternplot/coordmap"
)

// benchPoints builds n deterministic points spread along the triangle.
func benchPoints(n int) []coordmap.Ternary {
	ts := make([]coordmap.Ternary, n)
	for i := range ts {
		c := float64(i%100) / 100
		b := (1 - c) / 2
		ts[i] = coordmap.Ternary{A: 1 - b - c, B: b, C: c}
	}

	return ts
}

func BenchmarkTernaryToCartesian(b *testing.B) {
	t := coordmap.Ternary{A: 0.2, B: 0.3, C: 0.5}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = coordmap.TernaryToCartesian(t)
	}
}

func BenchmarkCartesianToTernary(b *testing.B) {
	p := coordmap.Cartesian{X: 0.55, Y: 0.43}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = coordmap.CartesianToTernary(p, coordmap.WithSigma(100))
	}
}

// BenchmarkBatchRoundTrip converts 10k points forward and back.
func BenchmarkBatchRoundTrip(b *testing.B) {
	ts := benchPoints(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = coordmap.CartesiansToTernaries(coordmap.TernariesToCartesians(ts))
	}
}
