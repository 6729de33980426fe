// Package aco_test provides lightweight testing helpers shared across
// *_test.go files in this package. The helpers are intentionally minimal,
// stdlib-only, and avoid duplicating functionality that already lives in
// focused test files.
package aco_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/antsys/aco"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsTiny is the strict tolerance for values the pipeline computes with
	// a provably fixed summation order.
	epsTiny = 1e-12

	// epsLoose is a relaxed tolerance for aggregate comparisons (means,
	// reordered sums) where associativity noise accumulates.
	epsLoose = 1e-9

	// seedZero exercises the "zero means default seed" policy of Options.
	seedZero = int64(0)

	// seedDet is a fixed non-zero seed for reproducibility checks.
	seedDet = int64(99)
)

// -----------------------------------------------------------------------------
// Geometric fixtures
// -----------------------------------------------------------------------------

// unitSquare returns the corners of the unit square in index order
// (0,0), (1,0), (1,1), (0,1). Sides have length 1, diagonals √2; the best
// tour is the perimeter of length exactly 4, the worst alternates corners
// for 2+2√2.
func unitSquare() []aco.Point {
	return []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// rightTriangle returns a 3-4-5 right triangle. Every one of its tours
// crosses all three edges, so every tour has length exactly 12.
func rightTriangle() []aco.Point {
	return []aco.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}}
}

// nnTiePoints returns an instance where the greedy walk from city 2 sees
// two nearest cities at distance 1 (indices 0 and 3). Picking the lower
// index yields total 3+√5; picking the higher one would yield 4+√2, so the
// two policies are distinguishable by a single length comparison.
func nnTiePoints() []aco.Point {
	return []aco.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: -1, Y: 0}, {X: -1, Y: -1}}
}

// -----------------------------------------------------------------------------
// Generic helpers (repeaters, assertions, numeric closeness)
// -----------------------------------------------------------------------------

// Repeat runs fn N times. Useful for determinism/stability checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int // loop iterator
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustEqualInts asserts exact equality of two integer slices (length & values).
// Prefer slices.Equal over reflect.DeepEqual for slices of basic types.
func mustEqualInts(t *testing.T, got, want []int) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("mismatch:\n got:  %v\n want: %v", got, want)
	}
}

// mustErrIs asserts that err matches target using errors.Is.
// Intended for strict sentinels (ErrTooFewCities, ErrInvalidTour, ...).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose checks relative/absolute closeness of two float64 values.
// Policy: first try bitwise equality (covers +0/-0; excludes NaN),
// then absolute tolerance, then relative tolerance for larger magnitudes.
func floatsClose(a, b, rel, abs float64) bool {
	if a == b {
		// Bitwise equal (covers +0/-0, excludes NaN comparisons).
		return true
	}
	diff := math.Abs(a - b)
	if diff <= abs {
		// Absolute tolerance covers common rounding noise.
		return true
	}
	den := math.Max(math.Abs(a), math.Abs(b))

	// Relative tolerance guards against proportional error on large values.
	return diff <= rel*den
}

// mustFloatClose asserts closeness of two float64 values under rel/abs tolerances.
// The failure message includes both tolerances to simplify flaky analysis.
func mustFloatClose(t *testing.T, got, want, rel, abs float64) {
	t.Helper()
	if !floatsClose(got, want, rel, abs) {
		t.Fatalf("float mismatch: got=%.17g want=%.17g (rel=%.1e abs=%.1e)", got, want, rel, abs)
	}
}

// -----------------------------------------------------------------------------
// Construction helpers
// -----------------------------------------------------------------------------

// mustDist builds a distance table or fails the test.
func mustDist(t *testing.T, pts []aco.Point) *aco.DistanceTable {
	t.Helper()
	d, err := aco.NewDistanceTable(pts)
	if err != nil {
		t.Fatalf("NewDistanceTable failed: %v", err)
	}

	return d
}

// mustColony builds a colony or fails the test.
func mustColony(t *testing.T, pts []aco.Point, o aco.Options) *aco.Colony {
	t.Helper()
	c, err := aco.NewColony(pts, o)
	if err != nil {
		t.Fatalf("NewColony failed: %v", err)
	}

	return c
}

// optsFixed returns defaults tuned for fast deterministic tests: few ants,
// a fixed iteration count and a fixed non-zero seed.
func optsFixed(iters int) aco.Options {
	o := aco.DefaultOptions()
	o.Ants = 6
	o.Iterations = iters
	o.Seed = seedDet

	return o
}

// statsRecorder returns a slice pointer plus a callback that appends every
// IterationStats to it, for wiring into Options.OnIteration.
func statsRecorder() (*[]aco.IterationStats, func(aco.IterationStats)) {
	rec := new([]aco.IterationStats)

	return rec, func(s aco.IterationStats) { *rec = append(*rec, s) }
}
