// Package farm - the coordinator (master) generational loop.
//
// The coordinator owns the population, the fitness table and the elite
// record. Per generation it plans partitions, dispatches one task per
// partition to the executor, joins the generation barrier, then performs
// selection/elitism and advances the epoch. Its own logic is
// single-threaded; only the workers it dispatches run concurrently.
//
// State machine: Dispatching → AwaitingBarrier → Selecting → (Dispatching |
// Done), with Cancelled as an alternative terminal reached only between
// generations — a partially-evolved generation is never applied.
package farm

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gentsp/genome"
)

// Coordinator drives a genetic TSP run to completion.
// Construct with NewCoordinator; a zero Coordinator is not usable.
type Coordinator struct {
	opts Options
	fn   genome.FitnessFunc

	pop   *genome.Population
	elite Elite

	state  State
	epoch  int
	rng    *rand.Rand
	stream uint64 // monotone id feeding per-task RNG derivation
}

// NewCoordinator validates opts, builds the initial random population from
// the seeded RNG, and runs the seeding evaluation (generation 0) to fill
// the fitness table and initialize the elite record at the generation-0
// minimum.
//
// The seeding evaluation reuses the partition planner and Evaluate, so a
// misbehaving fitness function is caught here, before Run.
//
// Errors: the InvalidConfig family from Options.Validate, ErrNilFitness,
// or a wrapped ErrOperatorFailure from seeding.
func NewCoordinator(fn genome.FitnessFunc, opts Options) (*Coordinator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if fn == nil {
		return nil, ErrNilFitness
	}

	rng := genome.NewRNG(opts.Seed)
	pop, err := genome.NewRandomPopulation(opts.PopulationSize, opts.Cities, rng)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		opts:  opts,
		fn:    fn,
		pop:   pop,
		state: Dispatching,
		rng:   rng,
	}

	if err = c.seed(); err != nil {
		return nil, err
	}
	return c, nil
}

// seed evaluates the whole initial population and records the generation-0
// optimum as the starting elite. Sequential: there is nothing to overlap
// yet and determinism matters more than startup latency.
func (c *Coordinator) seed() error {
	parts, err := PlanPartitions(c.opts.PopulationSize, c.opts.Workers)
	if err != nil {
		return err
	}

	var (
		results = make([]PartitionResult, len(parts))
		k       int
	)
	for k = range parts {
		results[k], err = Evaluate(c.pop, parts[k], c.fn)
		if err != nil {
			return err
		}
	}

	bestIdx, _ := c.mergeExtrema(results)
	c.elite = Elite{
		Tour:    genome.CopyTour(c.pop.Tours[bestIdx]),
		Fitness: c.pop.Fit[bestIdx],
		Slot:    bestIdx,
	}
	return nil
}

// Run executes up to MaxEpochs generations on exec and returns the final
// elite record. exec==nil falls back to the synchronous Direct executor;
// ctx==nil falls back to context.Background().
//
// Cancellation is checked once per generation, at the top of Dispatching:
// a cancelled context terminates in the Cancelled state with ErrCancelled
// (the context cause stays in the chain), and the population reflects the
// last fully-completed generation.
//
// A worker error aborts the run naming the failing partition; reaching
// MaxEpochs is normal termination in the Done state.
func (c *Coordinator) Run(ctx context.Context, exec Executor) (Elite, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if exec == nil {
		exec = Direct{}
	}

	for c.epoch < c.opts.MaxEpochs {
		c.state = Dispatching

		select {
		case <-ctx.Done():
			c.state = Cancelled
			return c.Elite(), fmt.Errorf("farm: epoch %d: %w: %w", c.epoch, ErrCancelled, ctx.Err())
		default:
		}

		// Partitions cannot fail here (opts already validated), but the
		// planner keeps its own contract.
		parts, err := PlanPartitions(c.opts.PopulationSize, c.opts.Workers)
		if err != nil {
			c.state = Done
			return c.Elite(), err
		}

		var (
			futures   = make([]*Future, len(parts))
			eliteSlot = c.elite.Slot
			k         int
		)
		for k = range parts {
			part := parts[k]
			// One private RNG stream per task, derived deterministically;
			// see genome.DeriveRNG for the mixing rationale.
			wrng := genome.DeriveRNG(c.rng, c.stream)
			c.stream++

			futures[k] = exec.Submit(func() (PartitionResult, error) {
				res, werr := RunPartition(
					c.pop, part,
					c.opts.CrossoverRate, c.opts.MutationRate,
					eliteSlot, c.fn, wrng,
				)
				if werr != nil {
					return PartitionResult{}, fmt.Errorf("farm: partition [%d,%d): %w", part.Start, part.End, werr)
				}
				return res, nil
			})
		}

		c.state = AwaitingBarrier
		results, err := AwaitAll(futures)
		if err != nil {
			c.state = Done
			return c.Elite(), err
		}

		c.state = Selecting
		genBest, genWorst := c.selectGeneration(results)

		if c.opts.Observer != nil {
			c.opts.Observer(summarize(c.epoch, genBest, genWorst, c.elite.Fitness, c.pop.Fit))
		}

		c.epoch++
	}

	c.state = Done
	return c.Elite(), nil
}

// selectGeneration merges the generation's partition results, promotes a
// strictly better generation optimum into the elite record, then
// unconditionally overwrites the generation's worst slot with a copy of the
// elite tour and fitness (replace-worst elitism). Returns the generation's
// best and worst fitness values as observed before the overwrite.
//
// The scan is independent of result arrival order: results are in
// submission (partition) order and both extrema use strict comparisons, so
// ties keep the first partition encountered.
func (c *Coordinator) selectGeneration(results []PartitionResult) (genBest, genWorst int32) {
	minIdx, maxIdx := c.mergeExtrema(results)
	genBest = c.pop.Fit[minIdx]
	genWorst = c.pop.Fit[maxIdx]

	// New run-wide optimum? Strictly-better policy keeps the elite stable
	// across non-improving generations.
	if genBest < c.elite.Fitness {
		c.elite.Fitness = genBest
		c.elite.Tour = genome.CopyTour(c.pop.Tours[minIdx])
		c.elite.Slot = minIdx
	}

	// Inject the best-known tour over the generation's worst individual.
	// Copy into the existing backing array: slot tours are never re-sliced.
	copy(c.pop.Tours[maxIdx], c.elite.Tour)
	c.pop.Fit[maxIdx] = c.elite.Fitness
	c.elite.Slot = maxIdx

	return genBest, genWorst
}

// mergeExtrema scans results and returns the population indices of the
// generation-wide minimum and maximum fitness. Seeded from the first
// result; strict comparisons keep the earliest index on ties.
func (c *Coordinator) mergeExtrema(results []PartitionResult) (minIdx, maxIdx int) {
	minIdx = results[0].Best
	maxIdx = results[0].Worst

	var (
		k      int
		minVal = c.pop.Fit[minIdx]
		maxVal = c.pop.Fit[maxIdx]
	)
	for k = 1; k < len(results); k++ {
		if c.pop.Fit[results[k].Best] < minVal {
			minVal = c.pop.Fit[results[k].Best]
			minIdx = results[k].Best
		}
		if c.pop.Fit[results[k].Worst] > maxVal {
			maxVal = c.pop.Fit[results[k].Worst]
			maxIdx = results[k].Worst
		}
	}
	return minIdx, maxIdx
}

// Elite returns a deep copy of the current elite record; the caller may
// keep it across further generations.
func (c *Coordinator) Elite() Elite {
	return Elite{
		Tour:    genome.CopyTour(c.elite.Tour),
		Fitness: c.elite.Fitness,
		Slot:    c.elite.Slot,
	}
}

// State returns the coordinator's current state-machine state.
func (c *Coordinator) State() State { return c.state }

// Epoch returns the number of fully-completed generations.
func (c *Coordinator) Epoch() int { return c.epoch }

// Population exposes the live population store for diagnostics and tests.
// Read it only while no Run is in flight.
func (c *Coordinator) Population() *genome.Population { return c.pop }
