// SPDX-License-Identifier: MIT

package datamanip_test

import (
	"testing"

	"github.com/katalvlaran/ternplot/datamanip"
)

func BenchmarkNormalize(b *testing.B) {
	in := make([]float64, 1024)
	for i := range in {
		in[i] = float64(i + 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := datamanip.Normalize(in); err != nil {
			b.Fatalf("Normalize failed: %v", err)
		}
	}
}

func BenchmarkNormalizeTriple(b *testing.B) {
	in := [3]float64{20, 30, 50}
	for i := 0; i < b.N; i++ {
		_, _ = datamanip.NormalizeTriple(in)
	}
}
