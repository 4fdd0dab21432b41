// Package gentsp is a parallel genetic-algorithm solver for the
// Travelling Salesman Problem — a master/workers farm that evolves a
// population of tour permutations across generations.
//
// 🚀 What is gentsp?
//
//	A deterministic, lock-free-by-design library that brings together:
//		• Genome primitives: tour permutations, population + fitness store
//		• Fitness builders: Euclidean and distance-matrix cost models
//		• Genetic operators: two-point order crossover with permutation
//		  repair, bounded-rate swap mutation, range fitness evaluation
//		• A partition planner producing disjoint, exactly-covering ranges
//		• A coordinator driving partition → dispatch → barrier →
//		  selection/elitism per generation, on a pluggable executor
//
// ✨ Why choose gentsp?
//
//   - Deterministic – seeded RNG streams per worker, same seed ⇒ same run
//   - Lock-free – workers own disjoint population ranges, no mutexes
//   - Strict errors – sentinel errors only, matched via errors.Is
//   - Pluggable – any executor satisfying Submit/await can schedule work
//
// Under the hood, everything is organized under two subpackages:
//
//	genome/ — tours, population store, fitness builders, RNG streams
//	farm/   — partition planner, operators, worker pipeline, executor,
//	          coordinator (master) generational loop
//
// Quick sketch of one generation:
//
//	plan → [0,s) [s,2s) … [ks,n)
//	         │      │        │     (workers: crossover→mutate→evaluate)
//	         └──────┴────────┘
//	        barrier (await all)
//	     selection + replace-worst elitism → next generation
//
// Dive into the package docs of genome/ and farm/ for contracts,
// invariants and complexity notes.
//
//	go get github.com/katalvlaran/gentsp
package gentsp
