// Package aco - Euclidean distance table.
//
// The table is computed once from the city coordinates and never mutated.
// Validation happens entirely at construction:
//  1. at least two cities,
//  2. finite coordinates,
//  3. no zero distance between distinct cities (duplicate coordinates).
//
// Rule 3 exists because desirability divides by distance; the degenerate
// case must surface as a sentinel here, before any desirability math runs,
// instead of leaking Inf/NaN through the probability model.
package aco

import "math"

// DistanceTable stores all pairwise Euclidean distances in a flat row-major
// n×n buffer. Symmetric with a zero diagonal; read-only after construction.
type DistanceTable struct {
	n    int
	data []float64
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NewDistanceTable computes the full distance table for the given cities.
//
// Errors: ErrTooFewCities, ErrNonFiniteCoordinate, ErrDuplicateCoordinates.
//
// Complexity: O(n²) time and space.
func NewDistanceTable(points []Point) (*DistanceTable, error) {
	var n = len(points)
	if n < 2 {
		return nil, ErrTooFewCities
	}

	// Stage 1: coordinate sanity, before any arithmetic.
	var i, j int
	for i = 0; i < n; i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return nil, ErrNonFiniteCoordinate
		}
	}

	// Stage 2: pairwise distances, upper triangle mirrored to the lower.
	var (
		t = &DistanceTable{n: n, data: make([]float64, n*n)}
		d float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(points[i].X-points[j].X, points[i].Y-points[j].Y)
			if d == 0 {
				return nil, ErrDuplicateCoordinates
			}
			t.data[i*n+j] = d
			t.data[j*n+i] = d
		}
	}
	return t, nil
}

// N returns the number of cities.
func (t *DistanceTable) N() int { return t.n }

// At returns the distance between cities i and j.
// Returns ErrIndexOutOfRange when either index is outside [0..n-1].
//
// Complexity: O(1).
func (t *DistanceTable) At(i, j int) (float64, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, ErrIndexOutOfRange
	}
	return t.data[i*t.n+j], nil
}

// at is the unchecked hot-path accessor. Indices are guaranteed in range by
// construction everywhere it is called.
func (t *DistanceTable) at(i, j int) float64 { return t.data[i*t.n+j] }

// TourLength sums the leg distances of a closed tour in tour order,
// closing leg included. The tour must satisfy ValidateTour: length n+1,
// tour[0]==tour[n], and a permutation of 0..n-1 in the first n entries.
//
// Summation order matches tour construction, so an ant's accumulated
// pathLength and the TourLength of its closed tour are bit-identical.
//
// Errors: ErrInvalidTour.
//
// Complexity: O(n).
func (t *DistanceTable) TourLength(tour []int) (float64, error) {
	if len(tour) == 0 {
		return 0, ErrInvalidTour
	}
	if err := ValidateTour(tour, t.n, tour[0]); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < t.n; i++ {
		sum += t.data[tour[i]*t.n+tour[i+1]]
	}
	return sum, nil
}
