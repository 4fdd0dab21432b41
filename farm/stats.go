// Package farm - per-generation diagnostics.
//
// Diagnostics are an optional observability hook, not required for
// correctness: after selection, the coordinator summarizes the generation
// and hands the summary to the caller-supplied Observer. The library never
// logs; callers wire the observer to whatever sink they use.
package farm

import "gonum.org/v1/gonum/stat"

// GenerationStats summarizes one completed generation.
type GenerationStats struct {
	Epoch  int     // generation number, starting at 0
	Best   int32   // the generation's minimum fitness (before elitism overwrite)
	Worst  int32   // the generation's maximum fitness (before elitism overwrite)
	Elite  int32   // the run-wide elite fitness after selection
	Mean   float64 // mean of the fitness table after selection
	StdDev float64 // sample standard deviation of the fitness table
}

// Observer receives one GenerationStats per completed generation, on the
// coordinator's goroutine. It must not mutate solver state; keep it fast or
// hand off to a channel.
type Observer func(GenerationStats)

// summarize builds the stats record for the current fitness table.
//
// Complexity: O(population) time, O(population) space for the float64 view
// gonum operates on.
func summarize(epoch int, best, worst, elite int32, fit []int32) GenerationStats {
	xs := make([]float64, len(fit))
	var i int
	for i = range fit {
		xs[i] = float64(fit[i])
	}

	var sd float64
	if len(xs) > 1 {
		sd = stat.StdDev(xs, nil)
	}

	return GenerationStats{
		Epoch:  epoch,
		Best:   best,
		Worst:  worst,
		Elite:  elite,
		Mean:   stat.Mean(xs, nil),
		StdDev: sd,
	}
}
