// Package aco - shared value types and the sentinel error set.
//
// This file defines ONLY the package-level sentinel errors and the small
// value types crossing the public API. All operations return these
// sentinels and tests check them via errors.Is; nothing in this package
// panics on user input.
package aco

import "errors"

// Point is a city coordinate in the Euclidean plane. Immutable after load;
// cities are identified by their index in the slice handed to NewColony.
type Point struct {
	X float64
	Y float64
}

var (
	// ErrTooFewCities is returned when fewer than two cities are supplied;
	// a tour needs at least one leg besides the closing one.
	ErrTooFewCities = errors.New("aco: at least two cities required")

	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("aco: coordinate is NaN or Inf")

	// ErrDuplicateCoordinates is returned when two distinct cities share a
	// coordinate. The zero distance would divide the desirability weights
	// by zero, so it is rejected when the distance table is built - before
	// any desirability computation can run.
	ErrDuplicateCoordinates = errors.New("aco: distinct cities share coordinates")

	// ErrNonPositiveAnts rejects configurations without at least one agent.
	ErrNonPositiveAnts = errors.New("aco: number of ants must be positive")

	// ErrNegativeWorkers rejects a negative worker count (0 and 1 both mean
	// sequential construction).
	ErrNegativeWorkers = errors.New("aco: negative worker count")

	// ErrNonFiniteParameter rejects NaN or ±Inf Alpha, Beta or
	// EvaporationRate. Ranges are intentionally not checked (see Options).
	ErrNonFiniteParameter = errors.New("aco: non-finite algorithm parameter")

	// ErrInvalidTermination is returned when the selected StopMode is not
	// meaningfully configured: a non-positive iteration count in
	// StopAfterIterations mode, a non-positive ratio or reference length in
	// StopAtTargetRatio mode, or an unknown mode value.
	ErrInvalidTermination = errors.New("aco: termination not meaningfully configured")

	// ErrIndexOutOfRange is returned by checked matrix accessors.
	ErrIndexOutOfRange = errors.New("aco: index out of range")

	// ErrInvalidTour is returned by tour helpers when a slice violates the
	// closed-tour shape or is not a permutation of 0..n-1.
	ErrInvalidTour = errors.New("aco: invalid tour")

	// ErrColonyTerminated is returned by Run on a colony that already ran;
	// pheromone state is consumed by a run and cannot be reused.
	ErrColonyTerminated = errors.New("aco: colony already terminated")
)

// Result is the outcome of a completed Colony run.
type Result struct {
	// BestTour is the best closed tour found: len == n+1 and
	// BestTour[0] == BestTour[n] (the constructing ant's start city).
	BestTour []int

	// BestLength is the length of BestTour, legs summed in tour order.
	BestLength float64

	// BestAtIteration is the 1-based iteration at which BestLength was
	// first reached.
	BestAtIteration int

	// Iterations is the total number of iterations executed.
	Iterations int
}

// IterationStats summarizes one completed iteration. Delivered through
// Options.OnIteration, in iteration order, from the goroutine running
// Colony.Run.
type IterationStats struct {
	// Iteration is 1-based.
	Iteration int

	// Best, Mean and Worst aggregate the tour lengths the colony's ants
	// constructed this iteration.
	Best  float64
	Mean  float64
	Worst float64

	// BestOverall is the shortest tour length seen so far, this iteration
	// included.
	BestOverall float64
}
