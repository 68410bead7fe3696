// Package young - the Partition type and its basic diagram operations.
//
// This file declares Partition, the sentinel error ErrInvalidPartition,
// and the O(len) queries shared by lr and mn.
package young

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidPartition indicates a sequence that is not a partition:
// a non-positive part, or parts that are not weakly decreasing.
var ErrInvalidPartition = errors.New("young: parts must be positive and weakly decreasing")

// Partition is a weakly decreasing sequence of positive integers with no
// trailing zeros. It labels a Young diagram whose i-th row (0-indexed,
// English notation, top row first) has Partition[i] cells, and thereby an
// irreducible representation of S_n for n = Weight().
//
// The zero value (nil) is the empty partition of 0.
type Partition []int

// Validate reports whether p is a well-formed partition.
// Returns nil on success, ErrInvalidPartition otherwise.
//
// Complexity: O(len(p)).
func (p Partition) Validate() error {
	for i, part := range p {
		if part < 1 {
			return ErrInvalidPartition
		}
		if i > 0 && p[i-1] < part {
			return ErrInvalidPartition
		}
	}

	return nil
}

// Weight returns the number of cells in the diagram of p, i.e. the n for
// which p is a partition of n.
//
// Complexity: O(len(p)).
func (p Partition) Weight() int {
	total := 0
	for _, part := range p {
		total += part
	}

	return total
}

// Contains reports whether the diagram of q fits inside the diagram of p,
// row by row: every row of q must exist in p and be no longer than p's.
// Rows of q beyond len(p) make the test fail.
//
// Complexity: O(len(q)).
func (p Partition) Contains(q Partition) bool {
	for i, part := range q {
		if i >= len(p) || part > p[i] {
			return false
		}
	}

	return true
}

// Equal reports whether p and q are the same partition.
func (p Partition) Equal(q Partition) bool {
	if len(p) != len(q) {
		return false
	}
	for i, part := range p {
		if part != q[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	if len(p) == 0 {
		return nil
	}
	out := make(Partition, len(p))
	copy(out, p)

	return out
}

// Conjugate returns the dual (transposed) partition: row i of the result
// has length equal to the number of rows of p with at least i+1 cells.
// The dual of the empty partition is the empty partition.
//
// The scan walks a cursor from the bottom row upward once per column
// height, so conjugation is an involution: p.Conjugate().Conjugate()
// equals p.
//
// Complexity: O(len(p) + p[0]).
func (p Partition) Conjugate() Partition {
	if len(p) == 0 {
		return nil
	}
	out := make(Partition, 0, p[0])
	cursor := len(p) - 1
	for col := 1; col <= p[0]; col++ {
		// Move up past rows too short to reach this column.
		for p[cursor] < col {
			cursor--
		}
		out = append(out, cursor+1)
	}

	return out
}

// String renders p as "(4,2,1)"; the empty partition is "()".
// The rendering is canonical for valid partitions and is used as a map
// key by the mn package's memoization cache.
func (p Partition) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, part := range p {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(part))
	}
	sb.WriteByte(')')

	return sb.String()
}
