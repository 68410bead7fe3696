package young_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/schur/young"
	"github.com/stretchr/testify/assert"
)

// TestDimension_KnownValues checks the hook-length formula against the
// irreducible dimensions of small symmetric groups.
func TestDimension_KnownValues(t *testing.T) {
	cases := []struct {
		p    young.Partition
		want int64
	}{
		{nil, 1},                       // trivial representation of S_0
		{young.Partition{1}, 1},        // S_1
		{young.Partition{2}, 1},        // trivial of S_2
		{young.Partition{1, 1}, 1},     // sign of S_2
		{young.Partition{2, 1}, 2},     // standard of S_3
		{young.Partition{3, 1}, 3},     // standard of S_4
		{young.Partition{2, 2}, 2},     // S_4
		{young.Partition{2, 1, 1}, 3},  // S_4
		{young.Partition{4, 1}, 4},     // standard of S_5
		{young.Partition{3, 2}, 5},     // S_5
		{young.Partition{3, 1, 1}, 6},  // S_5
		{young.Partition{5, 5}, 42},    // Catalan number C_5
		{young.Partition{4, 3, 2, 1}, 768}, // staircase of S_10
	}
	for _, tc := range cases {
		got := young.Dimension(tc.p)
		assert.Zero(t, got.Cmp(big.NewInt(tc.want)), "dim %v: want %d, got %s", tc.p, tc.want, got)
	}
}

// TestDimension_ConjugateInvariant verifies dim(p) == dim(p*): tensoring
// with the sign representation preserves dimension.
func TestDimension_ConjugateInvariant(t *testing.T) {
	for _, p := range []young.Partition{
		{4, 1},
		{3, 2},
		{5, 3, 1},
		{6, 4, 4, 2, 1},
	} {
		assert.Zero(t, young.Dimension(p).Cmp(young.Dimension(p.Conjugate())),
			"dimension must be conjugation-invariant for %v", p)
	}
}

// TestDimension_SumOfSquares verifies the Burnside identity
// Σ_λ dim(λ)² = n! over all partitions λ of n, for n = 5.
func TestDimension_SumOfSquares(t *testing.T) {
	partitionsOf5 := []young.Partition{
		{5},
		{4, 1},
		{3, 2},
		{3, 1, 1},
		{2, 2, 1},
		{2, 1, 1, 1},
		{1, 1, 1, 1, 1},
	}

	total := new(big.Int)
	for _, p := range partitionsOf5 {
		d := young.Dimension(p)
		total.Add(total, new(big.Int).Mul(d, d))
	}
	assert.Zero(t, total.Cmp(big.NewInt(120)), "Σ dim² over partitions of 5 must equal 5!")
}
