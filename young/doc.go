// Package young provides the shared Young-diagram primitives used by the
// lr and mn packages: a validated Partition type plus the diagram
// operations both algorithm families rely on.
//
// What:
//
//   - Partition: a weakly decreasing sequence of positive parts, no
//     trailing zeros. Row i of the diagram has Partition[i] cells.
//   - Validate: rejects non-positive parts and out-of-order sequences.
//   - Weight, Contains, Equal, Clone, String: basic diagram queries.
//   - Conjugate: the dual (transposed) diagram.
//   - Dimension: exact hook-length dimension formula (math/big, no
//     overflow — n! is computed in arbitrary precision).
//
// Why:
//
//   - Representation theory: partitions label the irreducible
//     representations of the symmetric group S_n and index Schur
//     polynomials for GL_n.
//   - One validated type shared by every algorithm kills the silent
//     malformed-input class of bugs (trailing zeros, unsorted parts).
//
// Complexity:
//
//   - Validate, Weight, Contains, Equal, Clone: O(len(p)).
//   - Conjugate: O(len(p) + p[0]).
//   - Dimension: O(n) big-integer multiplications, n = Weight(p).
//
// Errors:
//
//   - ErrInvalidPartition: a part is non-positive or the sequence increases.
package young
