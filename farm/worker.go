// Package farm - the per-partition worker pipeline.
//
// A worker owns exactly one partition for one generation and applies the
// operator pipeline Crossover → Mutate → Evaluate, in that order, strictly
// inside its index range. Never reading or writing outside the assigned
// range is the safety invariant that lets partitions run concurrently
// without locking.
package farm

import (
	"math/rand"

	"github.com/katalvlaran/gentsp/genome"
)

// RunPartition executes the full operator pipeline on part and returns the
// partition-local fitness extrema.
//
// Inputs the worker receives by value and never writes back:
//   - eliteSlot: the population index currently holding the elite copy,
//     exempted from mutation (negative ⇒ no exemption).
//   - rng: a private stream derived for this task; sharing one stream
//     across tasks would both race and break reproducibility.
//
// Errors: ErrBadPartition, ErrRepairInconsistency, or a wrapped
// ErrOperatorFailure from evaluation.
//
// Complexity: O(part.Len()·cities).
func RunPartition(
	p *genome.Population,
	part Partition,
	crossoverRate, mutationRate float64,
	eliteSlot int,
	fn genome.FitnessFunc,
	rng *rand.Rand,
) (PartitionResult, error) {
	if err := Crossover(p, part, crossoverRate, rng); err != nil {
		return PartitionResult{}, err
	}
	if err := Mutate(p, part, mutationRate, eliteSlot, rng); err != nil {
		return PartitionResult{}, err
	}
	return Evaluate(p, part, fn)
}
