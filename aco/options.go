// Package aco - run configuration.
//
// Options is a plain struct with a DefaultOptions() factory; validation is
// a separate deterministic pass invoked by NewColony. Parameter ranges
// follow the reference parameterization of the Ant System loop and are
// deliberately not clamped: only structurally impossible configurations
// are rejected.
package aco

import "math"

// StopMode selects how a run terminates. Exactly one mode is in effect;
// both mode-specific field groups are always present in Options and the
// mode decides which group is read.
type StopMode uint8

const (
	// StopAfterIterations runs exactly Options.Iterations iterations.
	StopAfterIterations StopMode = iota

	// StopAtTargetRatio runs until BestOverall/KnownOptimal < TargetRatio,
	// with no iteration ceiling. A run with an unreachable ratio never
	// terminates; that is a documented resource risk, not a bug.
	StopAtTargetRatio
)

// Reference defaults. Alpha and Beta weigh pheromone versus inverse
// distance in the desirability product; the evaporation rate is the
// fraction of trail removed from every leg each iteration.
const (
	DefaultAnts            = 20
	DefaultAlpha           = 1.5
	DefaultBeta            = 3.5
	DefaultEvaporationRate = 0.5
	DefaultIterations      = 100
)

// Options configures a Colony. The zero value is not runnable; start from
// DefaultOptions and override.
type Options struct {
	// Ants is the number of agents constructing tours each iteration.
	// Must be positive.
	Ants int

	// Alpha is the pheromone exponent of the desirability product.
	Alpha float64

	// Beta is the inverse-distance exponent of the desirability product.
	Beta float64

	// EvaporationRate is the fraction of pheromone removed from every leg
	// each iteration. Conventionally in [0,1]; not range-checked, only
	// finiteness is enforced.
	EvaporationRate float64

	// Stop selects the termination mode.
	Stop StopMode

	// Iterations is the fixed iteration count read in StopAfterIterations
	// mode. Must be positive in that mode.
	Iterations int

	// TargetRatio is the cutoff read in StopAtTargetRatio mode: the run
	// stops at the end of the first iteration where
	// BestOverall/KnownOptimal < TargetRatio. Must be positive in that mode.
	TargetRatio float64

	// KnownOptimal is the reference optimal tour length read in
	// StopAtTargetRatio mode. Must be positive in that mode.
	KnownOptimal float64

	// Seed drives every random draw of the run. 0 selects a fixed default
	// stream; equal seeds give identical results regardless of Workers.
	Seed int64

	// Workers caps concurrent tour construction within an iteration.
	// 0 and 1 mean sequential; values above Ants are clamped to Ants.
	// The observable result never depends on Workers.
	Workers int

	// OnIteration, when non-nil, receives one IterationStats per completed
	// iteration, in order.
	OnIteration func(IterationStats)
}

// DefaultOptions returns the reference configuration: 20 ants, Alpha 1.5,
// Beta 3.5, evaporation 0.5, 100 fixed iterations, sequential construction.
func DefaultOptions() Options {
	return Options{
		Ants:            DefaultAnts,
		Alpha:           DefaultAlpha,
		Beta:            DefaultBeta,
		EvaporationRate: DefaultEvaporationRate,
		Stop:            StopAfterIterations,
		Iterations:      DefaultIterations,
		Workers:         1,
	}
}

// validateOptions rejects configurations the loop cannot run with.
// Side-effect free; returns the first violated sentinel.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if o.Ants <= 0 {
		return ErrNonPositiveAnts
	}
	if o.Workers < 0 {
		return ErrNegativeWorkers
	}
	if !isFinite(o.Alpha) || !isFinite(o.Beta) || !isFinite(o.EvaporationRate) {
		return ErrNonFiniteParameter
	}

	switch o.Stop {
	case StopAfterIterations:
		if o.Iterations <= 0 {
			return ErrInvalidTermination
		}
	case StopAtTargetRatio:
		// NaN compares false against everything, so the positivity checks
		// must not be the only guard.
		if math.IsNaN(o.TargetRatio) || math.IsNaN(o.KnownOptimal) {
			return ErrInvalidTermination
		}
		if o.TargetRatio <= 0 || o.KnownOptimal <= 0 {
			return ErrInvalidTermination
		}
	default:
		return ErrInvalidTermination
	}

	return nil
}
