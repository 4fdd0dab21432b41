// Package farm: sentinel error set and core value types.
// This file defines ONLY package-level sentinel errors plus the small value
// types exchanged between planner, workers and coordinator. All functions
// MUST return these sentinels and tests MUST check them via errors.Is.

package farm

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "farm: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped with fmt.Errorf("…: %w")
// only at boundaries that add context (e.g. the failing partition).

var (
	// ErrZeroWorkers indicates a non-positive worker count.
	ErrZeroWorkers = errors.New("farm: worker count must be positive")

	// ErrWorkersExceedPopulation indicates more workers than individuals,
	// which would make the per-worker step zero.
	ErrWorkersExceedPopulation = errors.New("farm: more workers than individuals")

	// ErrBadPopulationSize indicates a non-positive population size.
	ErrBadPopulationSize = errors.New("farm: population size must be positive")

	// ErrBadChromosomeSize indicates a chromosome too short for the
	// two-point crossover cut windows (fewer than four cities).
	ErrBadChromosomeSize = errors.New("farm: chromosome size must be at least 4")

	// ErrBadEpochs indicates a negative generation budget.
	ErrBadEpochs = errors.New("farm: max epochs must be non-negative")

	// ErrRateOutOfRange indicates a crossover/mutation rate outside [0,1].
	ErrRateOutOfRange = errors.New("farm: rate must be within [0,1]")

	// ErrNilFitness indicates that no fitness function was injected.
	ErrNilFitness = errors.New("farm: fitness function is nil")

	// ErrBadPartition indicates an empty or out-of-bounds partition handed
	// to an operator.
	ErrBadPartition = errors.New("farm: partition out of range")

	// ErrOperatorFailure indicates that the injected fitness function
	// misbehaved (returned an error). Fatal to the whole run; no partial
	// generation results are applied.
	ErrOperatorFailure = errors.New("farm: operator failure")

	// ErrRepairInconsistency indicates that a repaired child is still not a
	// valid permutation. This is a programming-error assertion, not a
	// recoverable condition.
	ErrRepairInconsistency = errors.New("farm: repaired child is not a permutation")

	// ErrCancelled indicates the run was cancelled between generations; the
	// population reflects the last fully-completed generation.
	ErrCancelled = errors.New("farm: run cancelled")

	// ErrExecutorClosed indicates a task submission after Close.
	ErrExecutorClosed = errors.New("farm: executor closed")
)

// Partition is a half-open index range [Start,End) over the population,
// assigned to exactly one worker per generation. Partitions of a generation
// are pairwise disjoint and their union covers [0, population size).
type Partition struct {
	Start int // first index owned by the worker
	End   int // one past the last owned index
}

// Len returns the number of individuals in the partition.
func (p Partition) Len() int { return p.End - p.Start }

// PartitionResult reports the fitness extrema a worker observed inside its
// partition after the operator pipeline ran. Both fields are indices into
// the shared population/fitness table.
type PartitionResult struct {
	Best  int // index of the partition-local minimum fitness
	Worst int // index of the partition-local maximum fitness
}

// Elite is the best (lowest-cost) tour seen across all generations so far.
// Owned exclusively by the coordinator; mutated only during selection.
type Elite struct {
	Tour    []int // private copy, never aliased into the population
	Fitness int32 // cost of Tour; non-increasing across generations
	Slot    int   // population index currently holding a copy of Tour
}

// State enumerates the coordinator's generational state machine.
type State int

const (
	// Dispatching: partitions are being planned and submitted.
	Dispatching State = iota

	// AwaitingBarrier: waiting for every partition result of the
	// current generation.
	AwaitingBarrier

	// Selecting: merging results, updating the elite, replacing the worst.
	Selecting

	// Done: terminal; no further tasks are dispatched.
	Done

	// Cancelled: terminal; the run stopped between generations without
	// applying a partial one.
	Cancelled
)

// String returns a stable human-readable state name.
func (s State) String() string {
	switch s {
	case Dispatching:
		return "Dispatching"
	case AwaitingBarrier:
		return "AwaitingBarrier"
	case Selecting:
		return "Selecting"
	case Done:
		return "Done"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}
