// Package lr - sentinel errors and internal search-state types.
package lr

import "errors"

// ErrSizeMismatch indicates that |p1| + |p2| ≠ |p3|: the three diagrams
// cannot describe a single tableau decomposition.
var ErrSizeMismatch = errors.New("lr: |p1| + |p2| must equal |p3|")

// cell is a 1-indexed (row, column) coordinate in the diagram of p3.
type cell struct {
	row, col int
}

// searcher holds the mutable state of the lattice-word search: the cell
// ordering of the skew diagram, the partially built word, and the
// running letter counts. All fields are restored across sibling
// branches, so a single searcher serves the whole enumeration.
type searcher struct {
	// content is the target letter multiset: letter i must occur
	// exactly content[i] times in a complete word.
	content []int

	// cellAt maps word position -> skew-diagram cell; posAt is the
	// inverse. Both are fixed once the diagram is indexed.
	cellAt []cell
	posAt  map[cell]int

	// word is the partial lattice word; word[loc] is meaningful only
	// for positions at or left of the current search depth.
	word []int

	// used[i] counts occurrences of letter i in the current prefix.
	used []int
}
