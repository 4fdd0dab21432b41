// Package farm - fitness evaluation over a partition.
//
// Evaluate recomputes the fitness table for every index of a partition and
// tracks the running extrema within that partition only. Extrema are seeded
// from the first index of the range and updated with strict comparisons, so
// ties always keep the first (left-to-right) index — a stable scan that
// makes results independent of how the population was partitioned.
package farm

import (
	"fmt"

	"github.com/katalvlaran/gentsp/genome"
)

// Evaluate recomputes Fit[i] for every i in part via fn and returns the
// partition-local best (minimum fitness) and worst (maximum fitness)
// indices.
//
// A fn error is fatal: the cost model is assumed total and well-formed, so
// any failure aborts with ErrOperatorFailure (the original error stays in
// the chain for errors.Is/As).
//
// Complexity: O(part.Len()) fitness calls, O(1) extra space.
func Evaluate(p *genome.Population, part Partition, fn genome.FitnessFunc) (PartitionResult, error) {
	if err := checkPartition(p, part); err != nil {
		return PartitionResult{}, err
	}
	if fn == nil {
		return PartitionResult{}, ErrNilFitness
	}

	var (
		i    int
		v    int32
		err  error
		best = part.Start
		// worst tracks the maximum; both extrema seed from the first index.
		worst    = part.Start
		bestVal  int32
		worstVal int32
	)

	v, err = fn(p.Tours[part.Start])
	if err != nil {
		return PartitionResult{}, fmt.Errorf("farm: evaluate index %d: %w: %w", part.Start, ErrOperatorFailure, err)
	}
	p.Fit[part.Start] = v
	bestVal, worstVal = v, v

	for i = part.Start + 1; i < part.End; i++ {
		v, err = fn(p.Tours[i])
		if err != nil {
			return PartitionResult{}, fmt.Errorf("farm: evaluate index %d: %w: %w", i, ErrOperatorFailure, err)
		}
		p.Fit[i] = v
		if v < bestVal {
			bestVal = v
			best = i
		}
		if v > worstVal {
			worstVal = v
			worst = i
		}
	}

	return PartitionResult{Best: best, Worst: worst}, nil
}
