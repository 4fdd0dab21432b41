// Package genome: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the genome
// package. All functions MUST return these sentinels and tests MUST check them
// via errors.Is. No function panics on user-triggered error conditions.

package genome

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "genome: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrDimensionMismatch indicates an invalid shape: non-positive sizes,
	// slices of the wrong length, or indices outside [0..n-1].
	ErrDimensionMismatch = errors.New("genome: dimension mismatch")

	// ErrNotPermutation signals that a tour is not a permutation of
	// {0..n-1} (a duplicate or a missing city index was found).
	ErrNotPermutation = errors.New("genome: tour is not a permutation")

	// ErrNonSquare signals that a square distance matrix was required but
	// the input row/column counts differ.
	ErrNonSquare = errors.New("genome: distance matrix is not square")

	// ErrNonZeroDiagonal signals a self-distance d(i,i) != 0.
	ErrNonZeroDiagonal = errors.New("genome: distance matrix diagonal not zero")

	// ErrNegativeWeight signals a negative distance entry.
	ErrNegativeWeight = errors.New("genome: negative distance encountered")

	// ErrBadWeight signals a NaN or ±Inf distance entry where finite
	// values are required.
	ErrBadWeight = errors.New("genome: NaN or Inf distance encountered")

	// ErrCostOverflow signals that a tour cost does not fit into int32.
	ErrCostOverflow = errors.New("genome: tour cost overflows int32")
)
