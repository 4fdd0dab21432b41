// Package genome - tour utilities shared by operators and the coordinator.
//
// This file contains compact, allocation-conscious utilities that operate
// purely on tour structure (index sequences), without depending on distance
// data. Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - RandomPermutation: build a uniformly random tour from an RNG stream.
//   - CopyTour: independent copy of a tour slice.
//
// Design:
//   - No logging, no panics on user input — only sentinel errors from types.go.
//   - O(n) time for all helpers; deterministic behavior with clear contracts.
package genome

import "math/rand"

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It does not allocate besides a single O(n) boolean marker slice.
//
// Every tour re-entering the population must satisfy this invariant; the
// crossover repair step restores it after segment swaps.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(perm) != n {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		// Out-of-range element violates the dimension contract.
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		// Duplicate violates the bijection contract.
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}
	return nil
}

// RandomPermutation returns a permutation of 0..n-1 generated deterministically
// from rng (Fisher–Yates). If rng==nil, the default deterministic stream is
// used. For n<=0, returns ErrDimensionMismatch. Allocation is required by
// contract (the returned permutation slice).
//
// Complexity: O(n) time, O(n) space.
func RandomPermutation(n int, rng *rand.Rand) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rng)
	return p, nil
}

// CopyTour returns an independent copy of t (nil in ⇒ nil out).
// The copy shares no backing storage with the input, so the caller may keep
// it across in-place population mutations.
//
// Complexity: O(n) time, O(n) space.
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	cp := make([]int, len(t))
	copy(cp, t)
	return cp
}
