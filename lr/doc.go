// Package lr computes Littlewood-Richardson coefficients by direct,
// pruned enumeration of lattice words.
//
// What:
//
//	The Littlewood-Richardson coefficient c^{p3}_{p1,p2} is the
//	multiplicity of the Schur polynomial s_{p3} in the product
//	s_{p1}·s_{p2}; equivalently, the multiplicity of the irreducible
//	GL_n representation labeled p3 inside the tensor product of those
//	labeled p1 and p2. By the Littlewood-Richardson rule it counts the
//	semistandard skew tableaux of shape p3/p2 and content p1 whose
//	reverse reading word is a lattice (Yamanouchi) word.
//
// How:
//
//	Coefficient reads the cells of the skew diagram p3/p2 row by row,
//	top to bottom, right to left within each row — exactly the order in
//	which the reading word is built — and runs a depth-first search over
//	letter choices for each position, pruning with three local rules:
//	the semistandard bounds from the right neighbor and the cell above,
//	the content bound (letter i may appear at most p1[i] times), and the
//	lattice condition (letter i may never outrun letter i-1 in any
//	prefix). Because the coefficient is symmetric in p1 and p2, the pair
//	is swapped when p2 is lighter, so the word searched is always the
//	shorter one.
//
// Complexity:
//
//	Exponential in the worst case (the search space is the set of
//	fillings); the swap heuristic plus the three pruning rules keep
//	partitions of practical size tractable. Memory is O(|p3/p2|).
//
// Errors:
//
//   - ErrSizeMismatch: |p1| + |p2| ≠ |p3|.
//   - young.ErrInvalidPartition (wrapped): an argument is not a partition.
//
// A containment failure (p1 or p2 not fitting inside p3) is not an
// error: the coefficient is simply 0.
package lr
