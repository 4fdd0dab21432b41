// Package farm_test provides lightweight helpers shared across *_test.go
// files in this package. The helpers are intentionally minimal and avoid
// duplicating functionality that already lives in focused test files.
package farm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/gentsp/genome"
	"github.com/stretchr/testify/require"
)

// errAssert is the cause injected by failing fitness stubs.
var errAssert = errors.New("injected fitness failure")

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// seedDet is the deterministic seed used across tests.
	seedDet = int64(42)

	// ratesOff disables an operator entirely.
	ratesOff = 0.0

	// ratesOn forces an operator on every draw.
	ratesOn = 1.0
)

// -----------------------------------------------------------------------------
// Population and fitness builders
// -----------------------------------------------------------------------------

// newPop wraps explicit tours into a population with a zeroed fitness table.
// All tours must share one length; validity is asserted up front so a test
// never starts from an illegal population.
func newPop(t *testing.T, tours ...[]int) *genome.Population {
	t.Helper()
	require.NotEmpty(t, tours)

	p := &genome.Population{
		Tours: make([][]int, len(tours)),
		Fit:   make([]int32, len(tours)),
	}
	n := len(tours[0])
	for i, tour := range tours {
		require.NoError(t, genome.ValidatePermutation(tour, n), "seed tour %d", i)
		p.Tours[i] = genome.CopyTour(tour)
	}
	return p
}

// headFitness scores a tour by its first city index — a trivially
// predictable cost model for extrema and selection tests.
func headFitness(tour []int) (int32, error) {
	return int32(tour[0]), nil
}

// circlePoints places n cities evenly on the unit circle; the optimal tour
// is the polygon boundary, handy for convergence smoke tests.
func circlePoints(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		phi := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = [2]float64{math.Cos(phi), math.Sin(phi)}
	}
	return pts
}

// requireAllPermutations asserts the whole population still satisfies the
// permutation invariant.
func requireAllPermutations(t *testing.T, p *genome.Population) {
	t.Helper()
	n := p.Cities()
	for i := 0; i < p.Len(); i++ {
		require.NoError(t, genome.ValidatePermutation(p.Tours[i], n), "tour %d", i)
	}
}

// minFit returns the smallest value of a fitness table snapshot.
func minFit(fit []int32) int32 {
	m := fit[0]
	for _, v := range fit[1:] {
		if v < m {
			m = v
		}
	}
	return m
}
