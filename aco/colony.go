// Package aco - colony lifecycle: construction, the iteration loop and
// termination.
//
// Run drives the fixed per-iteration pipeline:
//
//	recompute desirability → construct all tours → evaporate + deposit → report
//
// Determinism does not depend on the Workers setting: every (iteration, ant)
// pair gets its own RNG derived from the base seed before any tour is built,
// ants touch only their own state during construction, and the pheromone
// update runs after the barrier in ant-index order. Sequential and parallel
// runs therefore produce bit-identical results.
package aco

import (
	"math"
	"math/rand"
	"sync"
)

// colonyState tracks the single-use lifecycle of a Colony.
type colonyState uint8

const (
	stateReady colonyState = iota
	stateIterating
	stateTerminated
)

// Colony runs the Ant System loop over one Euclidean instance.
//
// Create with NewColony. Run may be called exactly once; afterwards the
// colony keeps its final pheromone field but refuses further runs.
// A Colony is not safe for concurrent use; it manages its own worker
// goroutines internally.
type Colony struct {
	opts  Options
	state colonyState

	dist *DistanceTable
	pher *pheromoneField
	des  *desirabilityTable

	ants []*ant
	rngs []*rand.Rand // rngs[k] is rebuilt for ant k every iteration

	baseSeed       int64
	seedTourLength float64
}

// NewColony validates opts, builds the distance table from points and seeds
// the pheromone field from a nearest-neighbor reference tour.
//
// Complexity: O(n²) for the distance table and the seeding pass.
func NewColony(points []Point, opts Options) (*Colony, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	dist, err := NewDistanceTable(points)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = defaultRNGSeed
	}

	c := &Colony{
		opts:     opts,
		state:    stateReady,
		dist:     dist,
		pher:     newPheromoneField(dist.n),
		des:      newDesirabilityTable(dist.n),
		ants:     make([]*ant, opts.Ants),
		rngs:     make([]*rand.Rand, opts.Ants),
		baseSeed: seed,
	}
	var k int
	for k = range c.ants {
		c.ants[k] = newAnt(dist.n)
	}

	c.seedTourLength = c.pher.seed(dist, opts.Ants, rngFromSeed(deriveSeed(seed, streamSeedTour)))
	return c, nil
}

// N returns the number of cities in the instance.
func (c *Colony) N() int { return c.dist.n }

// SeedTourLength returns the length of the nearest-neighbor tour used to
// seed the pheromone field.
func (c *Colony) SeedTourLength() float64 { return c.seedTourLength }

// Run executes iterations until the termination condition from Options
// holds and returns the best tour found. The second and any later call
// returns ErrColonyTerminated.
//
// Complexity: O(iterations · ants · n²) plus O(n²) desirability refresh
// per iteration.
func (c *Colony) Run() (Result, error) {
	if c.state != stateReady {
		return Result{}, ErrColonyTerminated
	}
	c.state = stateIterating

	var (
		res  = Result{BestLength: math.Inf(1)}
		iter int // 0-based internally; reported 1-based
		best float64
	)
	for {
		// Stage 1: freeze desirability for this round.
		c.des.recompute(c.pher, c.dist, c.opts.Alpha, c.opts.Beta)

		// Stage 2: every ant builds a tour against the frozen tables.
		c.constructAll(iter)

		// Stage 3: evaporate, deposit, and pick up the round's best.
		best = c.pher.update(c.ants, c.opts.EvaporationRate)

		if best < res.BestLength {
			res.BestLength = best
			res.BestAtIteration = iter + 1
			res.BestTour = c.bestClosedTour(best)
		}
		res.Iterations = iter + 1

		c.emit(iter+1, best, res.BestLength)

		if c.done(res.BestLength, iter) {
			break
		}
		iter++
	}

	c.state = stateTerminated
	return res, nil
}

// done reports whether the run terminates after the given 0-based iteration.
func (c *Colony) done(bestOverall float64, iter int) bool {
	if c.opts.Stop == StopAtTargetRatio {
		return bestOverall/c.opts.KnownOptimal < c.opts.TargetRatio
	}
	return iter+1 >= c.opts.Iterations
}

// constructAll resets every ant and builds its tour for the given
// iteration, sequentially or striped across workers.
func (c *Colony) constructAll(iter int) {
	var k int
	for k = range c.ants {
		c.rngs[k] = rngFromSeed(deriveSeed(c.baseSeed, antStream(iter, k, len(c.ants))))
	}

	workers := c.opts.Workers
	if workers > len(c.ants) {
		workers = len(c.ants)
	}
	if workers <= 1 {
		for k = range c.ants {
			c.runAnt(k)
		}
		return
	}

	var (
		wg sync.WaitGroup
		w  int
	)
	wg.Add(workers)
	for w = 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			var k int
			for k = w; k < len(c.ants); k += workers {
				c.runAnt(k)
			}
		}(w)
	}
	wg.Wait()
}

func (c *Colony) runAnt(k int) {
	c.ants[k].reset(c.rngs[k])
	c.ants[k].constructTour(c.des, c.dist, c.rngs[k])
}

// bestClosedTour returns the closed tour of the first ant whose current
// pathLength equals best. update computed best as a minimum over exactly
// these values, so a match always exists.
func (c *Colony) bestClosedTour(best float64) []int {
	var a *ant
	for _, a = range c.ants {
		if a.pathLength == best {
			return CloseTour(a.tour)
		}
	}
	return nil
}

// emit invokes the OnIteration callback, if any, with this round's
// statistics. Runs after the construction barrier, so reading every ant is
// race-free.
func (c *Colony) emit(iteration int, best, bestOverall float64) {
	if c.opts.OnIteration == nil {
		return
	}
	var (
		sum   float64
		worst = best
		a     *ant
	)
	for _, a = range c.ants {
		sum += a.pathLength
		if a.pathLength > worst {
			worst = a.pathLength
		}
	}
	c.opts.OnIteration(IterationStats{
		Iteration:   iteration,
		Best:        best,
		Mean:        sum / float64(len(c.ants)),
		Worst:       worst,
		BestOverall: bestOverall,
	})
}
