// Package mn - border-strip tracing and rim-hook removal.
package mn

import (
	"sort"

	"github.com/katalvlaran/schur/young"
)

// borderStrip returns the boundary cells of p's diagram, traced from
// the bottom-left cell up and right to the end of the top row. Each
// step moves right within the current row, or up one row when the row
// ends at the current column. The trace has exactly len(p) + p[0] - 1
// cells; p must be non-empty.
func borderStrip(p young.Partition) []cell {
	strip := make([]cell, 0, len(p)+p[0]-1)
	c := cell{row: len(p) - 1, col: 0}
	for i := 0; i < len(p)+p[0]-1; i++ {
		strip = append(strip, c)
		if p[c.row] == c.col+1 {
			c.row--
		} else {
			c.col++
		}
	}

	return strip
}

// removable reports whether the window strip[i : i+k] is a rim hook
// whose removal leaves a valid partition. A window fails if the border
// cell just before it shares its starting column (the hook would leave
// a cell stranded below) or the border cell just after it shares its
// ending row (stranded to the right).
func removable(strip []cell, i, k int) bool {
	if i > 0 && strip[i-1].col == strip[i].col {
		return false
	}
	if i+k < len(strip) && strip[i+k].row == strip[i+k-1].row {
		return false
	}

	return true
}

// removeHook returns the partition left after deleting the cells of the
// rim hook strip[i : i+k] from p: each affected row loses as many cells
// as the hook occupies in it, then rows are re-sorted descending and
// empty rows dropped.
func removeHook(p young.Partition, strip []cell, i, k int) young.Partition {
	out := p.Clone()
	for _, c := range strip[i : i+k] {
		out[c.row]--
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	for len(out) > 0 && out[len(out)-1] == 0 {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return nil
	}

	return out
}
