package lr

import (
	"fmt"

	"github.com/katalvlaran/schur/young"
)

// Coefficient computes the Littlewood-Richardson coefficient
// c^{p3}_{p1,p2}: the number of semistandard skew tableaux of shape
// p3/p2 and content p1 satisfying the lattice-word condition.
//
// Algorithm outline:
//  1. Validate the three partitions; require |p1| + |p2| == |p3|.
//  2. Return 0 if p1 or p2 does not fit inside p3 (row-wise).
//  3. Swap p1 and p2 if p2 is lighter (the coefficient is symmetric,
//     and the word searched has length |p1|).
//  4. Index the cells of p3/p2 in reading order: rows top to bottom,
//     columns right to left within each row.
//  5. Depth-first search over letters for each word position, pruning
//     with the semistandard bounds, the content bound, and the lattice
//     condition; count complete words.
//
// Errors: ErrSizeMismatch on a size imbalance; a wrapped
// young.ErrInvalidPartition if any argument is malformed.
//
// Example:
//
//	c, err := lr.Coefficient(
//	    young.Partition{2, 1},
//	    young.Partition{2, 1},
//	    young.Partition{3, 2, 1},
//	) // c == 2
func Coefficient(p1, p2, p3 young.Partition) (int64, error) {
	if err := p1.Validate(); err != nil {
		return 0, fmt.Errorf("lr: p1: %w", err)
	}
	if err := p2.Validate(); err != nil {
		return 0, fmt.Errorf("lr: p2: %w", err)
	}
	if err := p3.Validate(); err != nil {
		return 0, fmt.Errorf("lr: p3: %w", err)
	}
	if p1.Weight()+p2.Weight() != p3.Weight() {
		return 0, ErrSizeMismatch
	}

	// Containment is checked for both inner partitions before any swap;
	// each test is independent of the other, so the swap below cannot
	// invalidate them.
	if !p3.Contains(p1) || !p3.Contains(p2) {
		return 0, nil
	}

	// The search enumerates words of length |p1|; take the lighter of
	// the two inner partitions as the content.
	if p2.Weight() < p1.Weight() {
		p1, p2 = p2, p1
	}

	s := newSearcher(p1, p2, p3)

	return s.fill(0), nil
}

// newSearcher indexes the skew diagram p3/p2 in reading order and
// prepares the word and letter-count buffers for content p1.
func newSearcher(p1, p2, p3 young.Partition) *searcher {
	n := p1.Weight()
	s := &searcher{
		content: p1,
		cellAt:  make([]cell, 0, n),
		posAt:   make(map[cell]int, n),
		word:    make([]int, n),
		used:    make([]int, len(p1)),
	}

	// Row by row, skip the cells covered by p2, then record the
	// remaining cells right to left.
	for row := 0; row < len(p3); row++ {
		offset := 0
		if row < len(p2) {
			offset = p2[row]
		}
		for col := p3[row]; col > offset; col-- {
			s.posAt[cell{row: row + 1, col: col}] = len(s.cellAt)
			s.cellAt = append(s.cellAt, cell{row: row + 1, col: col})
		}
	}

	return s
}

// fill counts the valid completions of the word from position loc
// onward. Both neighbor cells consulted for the bounds precede loc in
// reading order, so their letters are already fixed.
func (s *searcher) fill(loc int) int64 {
	if loc == len(s.word) {
		return 1
	}

	c := s.cellAt[loc]

	// Weak increase along the row, read right to left: the letter may
	// not exceed the one in the cell to the right.
	upper := len(s.content) - 1
	if pos, ok := s.posAt[cell{row: c.row, col: c.col + 1}]; ok {
		upper = s.word[pos]
	}

	// Strict increase down the column: the letter must exceed the one
	// in the cell above.
	lower := 0
	if pos, ok := s.posAt[cell{row: c.row - 1, col: c.col}]; ok {
		lower = s.word[pos] + 1
	}

	var count int64
	for letter := lower; letter <= upper; letter++ {
		if s.used[letter] == s.content[letter] {
			continue // content exhausted for this letter
		}
		if letter > 0 && s.used[letter] == s.used[letter-1] {
			continue // would break the lattice condition
		}
		s.word[loc] = letter
		s.used[letter]++
		count += s.fill(loc + 1)
		s.used[letter]--
	}

	return count
}
