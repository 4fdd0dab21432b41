// Package genome - the population + fitness store.
//
// A Population owns the current generation's tours and the parallel fitness
// table. Both are allocated once at run start and mutated in place every
// generation (no copy-on-write). Index identity is stable within a
// generation, but the individual stored at an index can change.
//
// Concurrency contract:
//   - A Population carries no locks. Concurrent mutators must own disjoint
//     index ranges; the farm's partition planner enforces that invariant.
package genome

import "math/rand"

// Population is a fixed-size set of tours evolved together, plus the
// fitness value cached for each tour.
//
// Invariants:
//   - len(Tours) == len(Fit) at all times.
//   - Every element of Tours is a permutation of {0..Cities()-1}.
//   - Fit[i] is the cost of Tours[i] as of the last evaluation touching i.
type Population struct {
	// Tours holds one permutation per individual, indexed 0..Len()-1.
	Tours [][]int

	// Fit is the fitness table: Fit[i] is the int32 cost of Tours[i].
	// Lower is better.
	Fit []int32
}

// NewRandomPopulation allocates a population of size independent random
// permutations over cities symbols, drawn deterministically from rng
// (rng==nil ⇒ default stream). The fitness table is allocated zeroed;
// callers are expected to run a full evaluation before reading it.
//
// Errors: ErrDimensionMismatch if size<=0 or cities<=0.
//
// Complexity: O(size·cities) time and space.
func NewRandomPopulation(size, cities int, rng *rand.Rand) (*Population, error) {
	if size <= 0 || cities <= 0 {
		return nil, ErrDimensionMismatch
	}
	if rng == nil {
		// Resolve the default stream once; resolving per individual would
		// hand every tour the same sequence.
		rng = NewRNG(0)
	}

	p := &Population{
		Tours: make([][]int, size),
		Fit:   make([]int32, size),
	}

	var (
		i   int
		err error
	)
	for i = 0; i < size; i++ {
		p.Tours[i], err = RandomPermutation(cities, rng)
		if err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Len returns the number of individuals.
func (p *Population) Len() int { return len(p.Tours) }

// Cities returns the chromosome size (tour length); 0 for an empty population.
func (p *Population) Cities() int {
	if len(p.Tours) == 0 {
		return 0
	}
	return len(p.Tours[0])
}

// Clone returns a deep copy of the population (tours and fitness table).
// Intended for tests and snapshots; the hot path never copies generations.
//
// Complexity: O(Len·Cities).
func (p *Population) Clone() *Population {
	cp := &Population{
		Tours: make([][]int, len(p.Tours)),
		Fit:   make([]int32, len(p.Fit)),
	}
	var i int
	for i = range p.Tours {
		cp.Tours[i] = CopyTour(p.Tours[i])
	}
	copy(cp.Fit, p.Fit)
	return cp
}
