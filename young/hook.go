// Package young - the hook-length dimension formula.
package young

import "math/big"

// Dimension returns the dimension of the irreducible representation of
// S_n labeled by p (equivalently, the number of standard Young tableaux
// of shape p), via the hook-length formula:
//
//	dim p = n! / ∏_{(i,j) ∈ p} hook(i,j)
//
// where hook(i,j) counts the cell itself plus the cells to its right in
// row i and below it in column j. With the dual partition p* this is
//
//	hook(i,j) = p[i] - j + p*[j] - i - 1   (0-indexed row i, column j).
//
// The result is exact: n! and the hook product are computed in
// arbitrary precision, and the division has no remainder. The empty
// partition has dimension 1 (the trivial representation of S_0).
//
// Complexity: O(n) big-integer multiplications, n = Weight(p).
func Dimension(p Partition) *big.Int {
	dual := p.Conjugate()
	prod := big.NewInt(1)
	for i := range p {
		for j := 0; j < p[i]; j++ {
			prod.Mul(prod, big.NewInt(int64(p[i]-j+dual[j]-i-1)))
		}
	}

	// MulRange(1, n) is n!; for n = 0 the empty range yields 1.
	fact := new(big.Int).MulRange(1, int64(p.Weight()))

	return fact.Div(fact, prod)
}
