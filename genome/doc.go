// Package genome provides the data layer of the genetic TSP farm:
// tour permutations, the population + fitness store, deterministic RNG
// streams, and fitness-function builders.
//
// Core vocabulary:
//
//   - Tour: an open permutation of {0..n-1}; position i holds the i-th
//     city visited, and the cycle implicitly closes back to the first.
//   - Population: a fixed-size slice of tours plus a parallel fitness
//     table (one int32 cost per tour), allocated once and mutated in
//     place every generation.
//   - FitnessFunc: an injected pure function Tour → cost; lower is
//     better. Builders for Euclidean and matrix cost models are
//     provided, with strict input validation.
//
// Design principles:
//   - Determinism: same seed ⇒ identical populations and RNG streams
//     across platforms; no time-based randomness anywhere.
//   - Safety: no panics or logging; only sentinel errors from types.go.
//   - Performance: linearized weight buffers in fitness hot paths;
//     O(n) helpers with no hidden allocations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveRNG to create
//     independent streams for parallel workers instead of sharing one.
package genome
