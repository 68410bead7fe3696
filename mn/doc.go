// Package mn evaluates irreducible characters of the symmetric groups
// via the Murnaghan-Nakayama rule.
//
// What:
//
//	Character(lambda, mu) returns χ^λ_μ — the value of the irreducible
//	character of S_n labeled by the partition λ on the conjugacy class
//	of cycle type μ, where λ and μ are partitions of the same n.
//
// How:
//
//	The Murnaghan-Nakayama rule expresses χ^λ_μ as a signed sum over
//	removable border strips (rim hooks) of length μ[0]:
//
//	    χ^λ_μ = Σ_ξ (-1)^{ht(ξ)} · χ^{λ∖ξ}_{μ[1:]}
//
//	The evaluator traces the border cells of λ from the bottom-left
//	corner to the end of the top row, slides a window of length μ[0]
//	along the trace, keeps the windows whose removal leaves a valid
//	partition, and recurses on the stripped diagram with the rest of
//	the cycle type. The recursion bottoms out at the identity cycle
//	type (all parts 1), resolved closed-form by the hook-length
//	dimension formula (young.Dimension).
//
//	Every (λ, μ) value ever computed is memoized. The package-level
//	Character uses one process-wide Evaluator; construct your own
//	Evaluator for an isolated or resettable cache. Cache access is
//	mutex-guarded, so a single Evaluator may be shared across
//	goroutines.
//
// Complexity:
//
//	Exponential in the worst case over distinct sub-instances, but the
//	memoized instance set is bounded by the (λ', μ') pairs reachable by
//	strip removal; repeated queries are O(1). Cache memory grows
//	monotonically and is never evicted; use Evaluator.Reset to reclaim.
//
// Errors:
//
//   - ErrSizeMismatch: |λ| ≠ |μ|.
//   - ErrOverflow: an intermediate dimension exceeds the int64 range.
//   - young.ErrInvalidPartition (wrapped): an argument is not a partition.
package mn
