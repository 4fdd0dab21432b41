// Package farm - run configuration.
//
// Options carries every parameter consumed at coordinator construction.
// Validation is standalone, deterministic and side-effect free; it runs
// once, before any generation is dispatched, so a misconfigured run never
// touches a population.
package farm

// Options configures a genetic TSP run.
//
// Workers        – number of concurrent partitions per generation (≥1, ≤PopulationSize).
// MaxEpochs      – generation budget; 0 means "seed only, evolve nothing".
// PopulationSize – number of individuals, fixed across the run.
// Cities         – chromosome size (tour length); at least 4 so both crossover
// cut windows [1, n/2-1] and [n/2, n-2] are non-empty.
// CrossoverRate  – per-pair probability of two-point crossover, within [0,1].
// MutationRate   – per-individual probability of a swap mutation, within [0,1].
// Seed           – RNG seed; 0 maps to the fixed default stream (deterministic).
// Observer       – optional per-generation diagnostics hook; may be nil.
type Options struct {
	Workers        int
	MaxEpochs      int
	PopulationSize int
	Cities         int
	CrossoverRate  float64
	MutationRate   float64
	Seed           int64
	Observer       Observer
}

// DefaultOptions returns an Options struct initialized with sensible defaults
// for the given chromosome size. Use it as a starting point and override
// fields before passing to NewCoordinator.
//
// Defaults:
//   - Workers:        4
//   - MaxEpochs:      100
//   - PopulationSize: 256
//   - CrossoverRate:  0.8
//   - MutationRate:   0.15
//   - Seed:           0 (deterministic default stream)
//   - Observer:       nil (no diagnostics)
func DefaultOptions(cities int) Options {
	return Options{
		Workers:        4,
		MaxEpochs:      100,
		PopulationSize: 256,
		Cities:         cities,
		CrossoverRate:  0.8,
		MutationRate:   0.15,
		Seed:           0,
		Observer:       nil,
	}
}

// Validate checks internal consistency of the run parameters.
// It is called by NewCoordinator before any allocation or dispatch and may
// be called directly by users to pre-flight a configuration.
//
// Complexity: O(1).
func (o Options) Validate() error {
	if o.Workers <= 0 {
		return ErrZeroWorkers
	}
	if o.PopulationSize <= 0 {
		return ErrBadPopulationSize
	}
	// step = PopulationSize/Workers must stay ≥ 1, otherwise some workers
	// would own empty ranges.
	if o.Workers > o.PopulationSize {
		return ErrWorkersExceedPopulation
	}
	if o.Cities < 4 {
		return ErrBadChromosomeSize
	}
	if o.MaxEpochs < 0 {
		return ErrBadEpochs
	}
	if o.CrossoverRate < 0 || o.CrossoverRate > 1 {
		return ErrRateOutOfRange
	}
	if o.MutationRate < 0 || o.MutationRate > 1 {
		return ErrRateOutOfRange
	}
	return nil
}
