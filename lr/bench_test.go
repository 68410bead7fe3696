package lr_test

import (
	"testing"

	"github.com/katalvlaran/schur/lr"
	"github.com/katalvlaran/schur/young"
)

// benchmarkCoefficient runs lr.Coefficient on a fixed triple, failing
// on unexpected errors.
func benchmarkCoefficient(b *testing.B, p1, p2, p3 young.Partition) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lr.Coefficient(p1, p2, p3); err != nil {
			b.Fatalf("Coefficient failed: %v", err)
		}
	}
}

// BenchmarkCoefficient_Small benchmarks the 6-cell search behind s_{(2,1)}².
func BenchmarkCoefficient_Small(b *testing.B) {
	benchmarkCoefficient(b,
		young.Partition{2, 1},
		young.Partition{2, 1},
		young.Partition{3, 2, 1})
}

// BenchmarkCoefficient_Medium benchmarks a 20-cell skew shape with a
// 10-letter word.
func BenchmarkCoefficient_Medium(b *testing.B) {
	benchmarkCoefficient(b,
		young.Partition{4, 3, 2, 1},
		young.Partition{4, 3, 2, 1},
		young.Partition{5, 4, 4, 3, 2, 1, 1})
}

// BenchmarkCoefficient_Wide benchmarks a wide shape where the swap
// heuristic keeps the searched word short.
func BenchmarkCoefficient_Wide(b *testing.B) {
	benchmarkCoefficient(b,
		young.Partition{3, 2},
		young.Partition{6, 5, 4, 3, 2, 1},
		young.Partition{7, 6, 4, 3, 3, 2, 1})
}
