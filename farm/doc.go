// Package farm implements the master/workers generational loop of the
// genetic TSP solver.
//
// One generation proceeds as:
//
//  1. The coordinator plans contiguous, disjoint partitions that exactly
//     cover the population, and submits one task per partition to an
//     Executor (Dispatching).
//  2. Each task runs the operator pipeline — two-point order crossover
//     with permutation repair, bounded-rate swap mutation, then fitness
//     evaluation — strictly inside its own index range, and reports the
//     partition-local best/worst indices.
//  3. The coordinator blocks until every partition of the generation has
//     reported (AwaitingBarrier); results may arrive in any order.
//  4. Selection/elitism runs over the merged results (Selecting): the
//     generation optimum may promote a new elite, and a copy of the elite
//     always overwrites the generation's worst slot (replace-worst
//     elitism). Then the epoch advances or the run terminates (Done).
//
// Concurrency model:
//   - Partitions of one generation are pairwise disjoint, so workers
//     mutate the shared population without locks; disjointness is the
//     planner's enforced invariant.
//   - The elite record is owned and mutated exclusively by the
//     coordinator. Workers receive the elite's slot index by value to
//     exempt it from mutation; they never write coordinator state.
//   - Each worker task owns a private RNG stream derived per generation
//     (genome.DeriveRNG), keeping runs reproducible for a fixed seed.
//
// Failure model:
//   - Configuration problems are detected before any task is dispatched.
//   - A fitness-function error inside a worker is fatal to the run
//     (ErrOperatorFailure); no partial generation is ever applied.
//   - A repaired child that is still not a permutation is a programming
//     error surfaced as ErrRepairInconsistency, never silently ignored.
package farm
