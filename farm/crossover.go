// Package farm - two-point order crossover with permutation repair.
//
// Crossover pairs adjacent individuals inside a partition and, per pair,
// swaps a randomly cut inner segment between the two parents. A segment
// swap generally breaks the permutation invariant (duplicate and missing
// cities in both children), so each child is repaired in place: the second
// occurrence of every doubled symbol is replaced by the next missing symbol,
// consumed in ascending order.
//
// Contracts:
//   - Touches only the two individuals of the pair under repair; never an
//     index outside the partition. This is what keeps concurrent partitions
//     race-free.
//   - Post-condition: every touched tour is again a valid permutation
//     (checked; a violation is ErrRepairInconsistency).
//
// Complexity: O(len·n) time for a partition of len individuals and n cities;
// scratch buffers are allocated once per call and reused across pairs.
package farm

import (
	"math/rand"

	"github.com/katalvlaran/gentsp/genome"
)

// Crossover applies two-point order crossover to adjacent pairs
// (i, i+1) within part, i stepping by 2, each pair independently with
// probability rate. Cut points are drawn as left ∈ [1, n/2-1] and
// right ∈ [n/2, n-2], so the swapped segment [left..right] is strictly
// inside the chromosome.
//
// rng must be a stream owned exclusively by the calling worker
// (rng==nil ⇒ default deterministic stream).
func Crossover(p *genome.Population, part Partition, rate float64, rng *rand.Rand) error {
	if err := checkPartition(p, part); err != nil {
		return err
	}
	var n = p.Cities()
	if n < 4 {
		return ErrBadChromosomeSize
	}
	if rng == nil {
		rng = genome.NewRNG(0)
	}

	// Cut windows: left has n/2-1 candidates, right has n-1-n/2 candidates.
	// Both are non-empty for n ≥ 4 (and exactly one candidate each at n=4).
	var (
		leftSpan  = n/2 - 1
		rightSpan = n - 1 - n/2
	)

	// Scratch state reused across pairs: occurrence counters and missing
	// work-lists for both children, plus first-sighting markers for repair.
	var (
		count1   = make([]int, n)
		count2   = make([]int, n)
		missing1 = make([]int, 0, n)
		missing2 = make([]int, 0, n)
		seen     = make([]bool, n)
	)

	var (
		i           int
		j           int
		left, right int
		a, b        []int
		sym         int
	)
	for i = part.Start; i+1 < part.End; i += 2 {
		if rng.Float64() >= rate {
			continue
		}
		left = 1 + rng.Intn(leftSpan)
		right = n/2 + rng.Intn(rightSpan)

		a = p.Tours[i]
		b = p.Tours[i+1]

		// Swap the inner segments [left..right] element-wise.
		for j = left; j <= right; j++ {
			a[j], b[j] = b[j], a[j]
		}

		// Count per-symbol occurrences in both children.
		for j = range count1 {
			count1[j] = 0
			count2[j] = 0
		}
		for j = 0; j < n; j++ {
			count1[a[j]]++
			count2[b[j]]++
		}

		// Collect missing symbols per child, in ascending order.
		missing1 = missing1[:0]
		missing2 = missing2[:0]
		for sym = 0; sym < n; sym++ {
			if count1[sym] == 0 {
				missing1 = append(missing1, sym)
			}
			if count2[sym] == 0 {
				missing2 = append(missing2, sym)
			}
		}

		if len(missing1) > 0 {
			if err := repairChild(a, count1, missing1, seen); err != nil {
				return err
			}
		}
		if len(missing2) > 0 {
			if err := repairChild(b, count2, missing2, seen); err != nil {
				return err
			}
		}
	}
	return nil
}

// repairChild restores the permutation invariant of t in place.
//
// Scanning left to right, the *second* occurrence of every symbol counted
// twice is replaced by the next unconsumed symbol of missing (ascending).
// A segment swap can double a symbol at most twice-total, so a single pass
// suffices. The result is verified; a failed verification is a programming
// error surfaced as ErrRepairInconsistency.
//
// seen is caller-provided scratch of len(t) booleans; it is reset here.
//
// Complexity: O(n) time, O(1) extra space beyond the provided scratch.
func repairChild(t []int, count []int, missing []int, seen []bool) error {
	var (
		j    int
		sym  int
		next int
	)
	for j = range seen {
		seen[j] = false
	}

	for j = 0; j < len(t); j++ {
		sym = t[j]
		if count[sym] != 2 {
			continue
		}
		if !seen[sym] {
			// First occurrence of a doubled symbol survives.
			seen[sym] = true
			continue
		}
		// Second occurrence: substitute the next missing symbol.
		count[sym]--
		t[j] = missing[next]
		count[missing[next]]++
		next++
	}

	if next != len(missing) {
		return ErrRepairInconsistency
	}
	if err := genome.ValidatePermutation(t, len(t)); err != nil {
		return ErrRepairInconsistency
	}
	return nil
}

// checkPartition guards operator entry points against empty or
// out-of-bounds ranges.
//
// Complexity: O(1).
func checkPartition(p *genome.Population, part Partition) error {
	if p == nil {
		return ErrBadPartition
	}
	if part.Start < 0 || part.End > p.Len() || part.Start >= part.End {
		return ErrBadPartition
	}
	return nil
}
