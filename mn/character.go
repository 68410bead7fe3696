package mn

import (
	"fmt"

	"github.com/katalvlaran/schur/young"
)

// defaultEvaluator backs the package-level Character and accumulates
// memoized values for the lifetime of the process.
var defaultEvaluator = NewEvaluator()

// Character returns χ^λ_μ, the irreducible character of S_n labeled by
// lambda evaluated on the conjugacy class of cycle type mu, using the
// process-wide cache. See Evaluator.Character for the contract.
func Character(lambda, mu young.Partition) (int64, error) {
	return defaultEvaluator.Character(lambda, mu)
}

// Character returns χ^λ_μ by the Murnaghan-Nakayama recursion:
//
//  1. On a cache hit, return the memoized value.
//  2. If mu is the identity cycle type (all parts 1), the value is the
//     hook-length dimension of lambda.
//  3. Otherwise slide a window of length mu[0] along the border strip
//     of lambda; for each removable rim hook ξ, recurse on (λ∖ξ, mu[1:])
//     and accumulate with sign (-1)^{height(ξ)}.
//
// Errors: ErrSizeMismatch when |λ| ≠ |μ|; ErrOverflow when a dimension
// resolved by the base case exceeds int64; a wrapped
// young.ErrInvalidPartition for malformed arguments. Size balance is
// checked once here — the recursion preserves it by construction.
//
// Example:
//
//	v, err := e.Character(young.Partition{4, 1}, young.Partition{3, 1, 1})
//	// v == 1: a 3-cycle acts on the standard representation of S_5
//	// with character value 1.
func (e *Evaluator) Character(lambda, mu young.Partition) (int64, error) {
	if err := lambda.Validate(); err != nil {
		return 0, fmt.Errorf("mn: partition: %w", err)
	}
	if err := mu.Validate(); err != nil {
		return 0, fmt.Errorf("mn: cycle type: %w", err)
	}
	if lambda.Weight() != mu.Weight() {
		return 0, ErrSizeMismatch
	}

	return e.eval(lambda, mu)
}

// eval runs the recursion proper on size-balanced, validated inputs.
func (e *Evaluator) eval(lambda, mu young.Partition) (int64, error) {
	key := ckey{part: lambda.String(), cycle: mu.String()}
	if v, ok := e.lookup(key); ok {
		return v, nil
	}

	// Identity cycle type: the character value is the dimension.
	// mu is weakly decreasing, so mu[0] == 1 means every part is 1.
	if len(mu) == 0 || mu[0] == 1 {
		dim := young.Dimension(lambda)
		if !dim.IsInt64() {
			return 0, ErrOverflow
		}
		v := dim.Int64()
		e.store(key, v)

		return v, nil
	}

	// mu has a part ≥ 2, so lambda is non-empty and has a border strip.
	strip := borderStrip(lambda)
	hook, rest := mu[0], mu[1:]

	var value int64
	for i := 0; i+hook <= len(strip); i++ {
		if !removable(strip, i, hook) {
			continue
		}
		sub, err := e.eval(removeHook(lambda, strip, i, hook), rest)
		if err != nil {
			return 0, err
		}
		// The hook's height is the number of rows it spans minus one;
		// odd heights flip the sign.
		if (strip[i].row-strip[i+hook-1].row)%2 == 1 {
			value -= sub
		} else {
			value += sub
		}
	}
	e.store(key, value)

	return value, nil
}
