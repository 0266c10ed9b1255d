package editdist_test

import (
	"testing"

	"github.com/katalvlaran/lvedit/editdist"
)

// benchmarkPair builds two length-n sequences that differ every third element.
func benchmarkPair(n int) ([]int, []int) {
	a := make([]int, n)
	b := make([]int, n)
	for i := 0; i < n; i++ {
		a[i] = i % 7
		b[i] = i % 7
		if i%3 == 0 {
			b[i] = -1
		}
	}
	return a, b
}

func benchmarkDistance(b *testing.B, n int) {
	x, y := benchmarkPair(n)
	cm := editdist.DefaultCostModel()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := editdist.Distance(x, y, cm); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

func benchmarkAlignment(b *testing.B, n int) {
	x, y := benchmarkPair(n)
	cm := editdist.DefaultCostModel()
	rng := editdist.NewRand(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := editdist.Alignment(x, y, cm, rng, -2); err != nil {
			b.Fatalf("Alignment failed: %v", err)
		}
	}
}

// BenchmarkDistance_Small benchmarks the two-row distance on 100×100 inputs.
func BenchmarkDistance_Small(b *testing.B) { benchmarkDistance(b, 100) }

// BenchmarkDistance_Medium benchmarks the two-row distance on 1000×1000 inputs.
func BenchmarkDistance_Medium(b *testing.B) { benchmarkDistance(b, 1000) }

// BenchmarkAlignment_Small benchmarks the full pipeline on 100×100 inputs.
func BenchmarkAlignment_Small(b *testing.B) { benchmarkAlignment(b, 100) }

// BenchmarkAlignment_Medium benchmarks the full pipeline on 1000×1000 inputs.
func BenchmarkAlignment_Medium(b *testing.B) { benchmarkAlignment(b, 1000) }
