// Package mn - sentinel errors, the Evaluator cache owner, and the
// border-trace cell type.
package mn

import (
	"errors"
	"sync"
)

var (
	// ErrSizeMismatch indicates |λ| ≠ |μ|: a character value is only
	// defined when the representation label and the cycle type are
	// partitions of the same integer.
	ErrSizeMismatch = errors.New("mn: partition and cycle type must have equal weight")

	// ErrOverflow indicates a hook-length dimension outside the int64
	// range; the character value cannot be represented exactly.
	ErrOverflow = errors.New("mn: dimension exceeds int64 range")
)

// cell is a 0-indexed (row, column) coordinate in a Young diagram,
// English notation: row 0 is the top (longest) row.
type cell struct {
	row, col int
}

// ckey identifies one memoized character value. Both components are the
// canonical Partition renderings, so equal pairs collide exactly.
type ckey struct {
	part, cycle string
}

// Evaluator owns one memoization cache for character values.
//
// The cache grows monotonically: every (λ, μ) pair ever evaluated stays
// until Reset. All cache access is guarded by mu, making a shared
// Evaluator safe for concurrent use; the guard covers only the
// read-check and insert steps, never a whole recursion, so concurrent
// callers may duplicate work but never corrupt state.
type Evaluator struct {
	mu    sync.Mutex
	cache map[ckey]int64
}

// NewEvaluator returns an Evaluator whose cache holds only the base
// case χ^∅_∅ = 1 (the trivial character of S_0).
func NewEvaluator() *Evaluator {
	e := &Evaluator{}
	e.Reset()

	return e
}

// Reset discards every memoized value and re-seeds the base case.
func (e *Evaluator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache = map[ckey]int64{{part: "()", cycle: "()"}: 1}
}

// CacheLen returns the number of memoized (λ, μ) pairs, the seeded base
// case included.
func (e *Evaluator) CacheLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return len(e.cache)
}

// lookup returns the memoized value for k, if any.
func (e *Evaluator) lookup(k ckey) (int64, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.cache[k]

	return v, ok
}

// store memoizes v under k.
func (e *Evaluator) store(k ckey, v int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cache[k] = v
}
