// Package farm - bounded-rate swap mutation.
//
// Mutation perturbs individuals one at a time: with probability rate, two
// chromosome positions are drawn independently and their cities swapped.
// Drawing the same position twice is a legal no-op. A position swap maps a
// permutation to a permutation, so no repair is needed afterwards.
package farm

import (
	"math/rand"

	"github.com/katalvlaran/gentsp/genome"
)

// Mutate applies swap mutation to every individual of part except the one
// at eliteSlot, each independently with probability rate.
//
// The elite exemption keeps the only in-population copy of the best-known
// tour intact until selection replaces the generation's worst slot with a
// fresh copy. Pass a negative eliteSlot to exempt nothing.
//
// rng must be a stream owned exclusively by the calling worker
// (rng==nil ⇒ default deterministic stream).
//
// Complexity: O(part.Len()) time, O(1) space.
func Mutate(p *genome.Population, part Partition, rate float64, eliteSlot int, rng *rand.Rand) error {
	if err := checkPartition(p, part); err != nil {
		return err
	}
	var n = p.Cities()
	if n <= 0 {
		return ErrBadPartition
	}
	if rng == nil {
		rng = genome.NewRNG(0)
	}

	var (
		i    int
		x, y int
		t    []int
	)
	for i = part.Start; i < part.End; i++ {
		if i == eliteSlot {
			continue
		}
		if rng.Float64() >= rate {
			continue
		}
		t = p.Tours[i]
		x = rng.Intn(n)
		y = rng.Intn(n)
		t[x], t[y] = t[y], t[x]
	}
	return nil
}
