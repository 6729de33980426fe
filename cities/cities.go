// Package cities - generator implementations.
//
// Contract (shared by all generators):
//   - Validate parameters early; fail fast with a wrapped sentinel.
//   - Emit points in a fixed, documented order.
//   - Never panic; never read global RNG state.
package cities

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/antsys/aco"
)

// File-local minima, method tags for error context, and the Random
// zero-seed policy (no magic literals).
const (
	methodCircle = "Circle"
	methodGrid   = "Grid"
	methodRandom = "Random"

	minPoints  = 1
	minGridDim = 1

	// defaultSeed backs seed==0 draws, mirroring the solver's policy.
	defaultSeed int64 = 1
)

var (
	// ErrTooFewPoints rejects non-positive point counts.
	ErrTooFewPoints = errors.New("cities: point count must be positive")

	// ErrBadDimensions rejects non-positive or non-finite geometry
	// parameters (radius, spacing, width, height).
	ErrBadDimensions = errors.New("cities: dimensions must be positive and finite")
)

// positive reports whether v is a positive finite float.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// Circle returns n points evenly spaced on a circle of the given radius,
// centered at the origin, starting at (radius, 0) and walking
// counterclockwise.
//
// The optimal tour over these points follows the angular order, with
// perimeter n·2·radius·sin(π/n); that makes Circle instances convenient
// known-optimum fixtures for tests and benchmarks.
//
// Complexity: O(n).
func Circle(n int, radius float64) ([]aco.Point, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodCircle, n, minPoints, ErrTooFewPoints)
	}
	if !positive(radius) {
		return nil, fmt.Errorf("%s: radius=%v: %w", methodCircle, radius, ErrBadDimensions)
	}

	var (
		pts = make([]aco.Point, n)
		i   int
		th  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		pts[i] = aco.Point{X: radius * math.Cos(th), Y: radius * math.Sin(th)}
	}

	return pts, nil
}

// Grid returns rows·cols lattice points with the given spacing in row-major
// order: the point for cell (r,c) is (c·spacing, r·spacing) at index
// r·cols+c.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, spacing float64) ([]aco.Point, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewPoints)
	}
	if !positive(spacing) {
		return nil, fmt.Errorf("%s: spacing=%v: %w", methodGrid, spacing, ErrBadDimensions)
	}

	var (
		pts  = make([]aco.Point, 0, rows*cols)
		r, c int
	)
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			pts = append(pts, aco.Point{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	return pts, nil
}

// Random returns n uniform points inside the width×height rectangle
// anchored at the origin. Draws are deterministic per seed (0 selects the
// fixed default stream); exact coordinate collisions are redrawn, so the
// result is always duplicate-free.
//
// Complexity: O(n) expected.
func Random(n int, width, height float64, seed int64) ([]aco.Point, error) {
	if n < minPoints {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodRandom, n, minPoints, ErrTooFewPoints)
	}
	if !positive(width) || !positive(height) {
		return nil, fmt.Errorf("%s: width=%v, height=%v: %w", methodRandom, width, height, ErrBadDimensions)
	}

	s := seed
	if s == 0 {
		s = defaultSeed
	}

	var (
		rng  = rand.New(rand.NewSource(s))
		pts  = make([]aco.Point, 0, n)
		seen = make(map[aco.Point]struct{}, n)
		p    aco.Point
	)
	for len(pts) < n {
		p = aco.Point{X: rng.Float64() * width, Y: rng.Float64() * height}
		if _, dup := seen[p]; dup {
			continue // redraw on the (vanishingly rare) exact collision
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}

	return pts, nil
}
