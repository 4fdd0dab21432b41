// Package genome - fitness-function builders shared by callers of the farm.
//
// The solver treats fitness as a black box: any pure, total function
// Tour → cost can drive a run. This file provides the two standard cost
// models with strict validation up front and an allocation-free hot path:
//
//   - NewMatrixFitness: cost from an explicit n×n distance matrix.
//   - NewEuclideanFitness: cost from city coordinates in the plane.
//
// Design:
//   - Validation happens once, in the builder; the returned closure only
//     guards tour shape (cheap O(n) checks) before summing.
//   - The matrix is prefetched into a dense 1D buffer w[i*n + j] to remove
//     slice-of-slice indirection from the per-tour loop.
//   - Costs are summed in float64 and rounded to the nearest int32; a sum
//     outside int32 range is ErrCostOverflow, never silent truncation.
//   - Strict sentinels from types.go on any invalid input.
//
// Complexity: builders O(n²); each returned closure O(n) per call, O(1) space.
package genome

import "math"

// FitnessFunc computes the cost of a closed tour (the cycle implicitly
// returns from the last city to the first). Lower is better.
//
// Contract: pure, total, and deterministic for a fixed input. The farm
// aborts the whole run if a FitnessFunc returns an error.
type FitnessFunc func(tour []int) (int32, error)

// NewMatrixFitness validates dist and returns a FitnessFunc over it.
//
// Validation performed once, up front:
//   - non-empty, square (ErrNonSquare / ErrDimensionMismatch),
//   - diagonal exactly representable as ~0 (ErrNonZeroDiagonal),
//   - no NaN/±Inf anywhere (ErrBadWeight),
//   - no negative entries (ErrNegativeWeight).
//
// The returned closure rejects tours of the wrong length or with indices
// outside [0..n-1] with ErrDimensionMismatch, and sums the closed cycle.
//
// Complexity: O(n²) validation; O(n) per evaluated tour.
func NewMatrixFitness(dist [][]float64) (FitnessFunc, error) {
	n, w, err := flattenDistMatrix(dist)
	if err != nil {
		return nil, err
	}

	fn := func(tour []int) (int32, error) {
		if len(tour) != n {
			return 0, ErrDimensionMismatch
		}

		var (
			sum float64
			i   int
			u   int
			v   int
		)
		for i = 0; i < n; i++ {
			u = tour[i]
			v = tour[(i+1)%n] // closing edge back to tour[0] on the last step
			if u < 0 || u >= n || v < 0 || v >= n {
				return 0, ErrDimensionMismatch
			}
			sum += w[u*n+v]
		}
		return roundToInt32(sum)
	}
	return fn, nil
}

// NewEuclideanFitness builds the pairwise Euclidean distance matrix from
// pts (x,y coordinates, one city per entry) and returns a FitnessFunc
// over it. Requires at least two cities and finite coordinates.
//
// Complexity: O(n²) build; O(n) per evaluated tour.
func NewEuclideanFitness(pts [][2]float64) (FitnessFunc, error) {
	var n = len(pts)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}

	var (
		i, j   int
		dx, dy float64
	)
	// Coordinate sanity first: a NaN coordinate would poison the matrix.
	for i = 0; i < n; i++ {
		if math.IsNaN(pts[i][0]) || math.IsInf(pts[i][0], 0) ||
			math.IsNaN(pts[i][1]) || math.IsInf(pts[i][1], 0) {
			return nil, ErrBadWeight
		}
	}

	dist := make([][]float64, n)
	for i = 0; i < n; i++ {
		dist[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // symmetric by construction
			dx = pts[i][0] - pts[j][0]
			dy = pts[i][1] - pts[j][1]
			dist[i][j] = math.Hypot(dx, dy)
			dist[j][i] = dist[i][j]
		}
	}
	return NewMatrixFitness(dist)
}

// flattenDistMatrix performs full matrix validation and returns the order n
// together with the linearized weight buffer w (w[i*n+j] == dist[i][j]).
//
// Checks:
//   - non-nil, non-empty, square rows,
//   - diagonal zero (|d| ≤ diagTol),
//   - NaN/±Inf rejected, negative rejected.
//
// Complexity: O(n²) time, O(n²) space for the buffer.
func flattenDistMatrix(dist [][]float64) (int, []float64, error) {
	var n = len(dist)
	if n < 2 {
		return 0, nil, ErrDimensionMismatch
	}

	// diagTol absorbs representation noise on self-distances computed by
	// callers; anything larger is a genuinely non-zero diagonal.
	const diagTol = 1e-12

	w := make([]float64, n*n)

	var (
		i, j int
		x    float64
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, nil, ErrNonSquare
		}
		for j = 0; j < n; j++ {
			x = dist[i][j]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, nil, ErrBadWeight
			}
			if x < 0 {
				return 0, nil, ErrNegativeWeight
			}
			if i == j && x > diagTol {
				// Negatives were rejected above, so |x| == x here.
				return 0, nil, ErrNonZeroDiagonal
			}
			w[i*n+j] = x
		}
	}
	return n, w, nil
}

// roundToInt32 converts an accumulated float64 cost to the int32 fitness
// domain, rejecting sums outside the representable range.
//
// Complexity: O(1).
func roundToInt32(sum float64) (int32, error) {
	r := math.Round(sum)
	if r > math.MaxInt32 || r < math.MinInt32 || math.IsNaN(r) {
		return 0, ErrCostOverflow
	}
	return int32(r), nil
}
