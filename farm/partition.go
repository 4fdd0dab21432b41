// Package farm - partition planner.
//
// The planner turns (population size, worker count) into an ordered slice of
// contiguous, pairwise-disjoint index ranges whose union is exactly
// [0, populationSize). Disjointness is the invariant that lets workers
// mutate the shared population concurrently without locks; exact coverage
// guarantees every individual is crossed/mutated/evaluated each generation.
package farm

// PlanPartitions computes the per-worker ranges for one generation.
//
// Policy: step = populationSize / workers (integer division); worker k owns
// [k·step, (k+1)·step), and the final range is extended to populationSize so
// the division remainder is absorbed by the last worker instead of being
// left out of the generation.
//
// Contracts:
//   - workers ≥ 1 (ErrZeroWorkers), populationSize ≥ 1 (ErrBadPopulationSize),
//   - workers ≤ populationSize (ErrWorkersExceedPopulation, step would be 0).
//
// Post-conditions (asserted by tests):
//   - exactly workers partitions, ordered, pairwise disjoint,
//   - union == [0, populationSize), every partition non-empty.
//
// Complexity: O(workers) time and space.
func PlanPartitions(populationSize, workers int) ([]Partition, error) {
	if workers <= 0 {
		return nil, ErrZeroWorkers
	}
	if populationSize <= 0 {
		return nil, ErrBadPopulationSize
	}
	if workers > populationSize {
		return nil, ErrWorkersExceedPopulation
	}

	var (
		step  = populationSize / workers
		parts = make([]Partition, workers)
		k     int
	)
	for k = 0; k < workers; k++ {
		parts[k] = Partition{Start: k * step, End: (k + 1) * step}
	}
	// The last worker absorbs the remainder populationSize % workers.
	parts[workers-1].End = populationSize

	return parts, nil
}
