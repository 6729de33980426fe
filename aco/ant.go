// Package aco - agent state and probabilistic tour construction.
//
// An ant owns its tour buffer, visited mask and accumulated length; nothing
// here is shared between ants, which is what makes per-iteration
// construction embarrassingly parallel. The only coupling is the frozen
// desirability table, read-only during the whole round.
package aco

import (
	"math"
	"math/rand"
)

// ant is one tour-constructing agent.
type ant struct {
	start      int
	current    int
	tour       []int  // visit order; grows from 1 to n entries per iteration
	visited    []bool // visited[j] reports whether city j is on the tour
	pathLength float64
	bestLength float64 // shortest tour across the run; +Inf before the first
}

func newAnt(n int) *ant {
	return &ant{
		tour:       make([]int, 0, n),
		visited:    make([]bool, n),
		bestLength: math.Inf(1),
	}
}

// reset prepares the ant for a new iteration: clears the tour and visited
// mask, redraws a uniformly random start city and zeroes the accumulated
// length. bestLength survives resets.
//
// Complexity: O(n).
func (a *ant) reset(rng *rand.Rand) {
	var j int
	for j = range a.visited {
		a.visited[j] = false
	}
	a.tour = a.tour[:0]
	a.start = rng.Intn(len(a.visited))
	a.current = a.start
	a.tour = append(a.tour, a.start)
	a.visited[a.start] = true
	a.pathLength = 0
}

// rouletteSelect returns the first unvisited candidate whose cumulative
// normalized weight reaches r, scanning candidates in ascending index
// order. When rounding keeps the running sum below r through the whole
// scan, the last candidate is returned unconditionally: that floor
// guarantees the walk always terminates and is part of the selection
// contract, not an approximation to be fixed.
//
// Complexity: O(n).
func rouletteSelect(weights []float64, visited []bool, weightSum, r float64) int {
	var (
		running float64
		next    = -1
		last    = -1
		j       int
	)
	for j = 0; j < len(weights); j++ {
		if visited[j] {
			continue
		}
		last = j
		running += weights[j] / weightSum
		if running >= r {
			next = j
			break
		}
	}
	if next == -1 {
		next = last
	}
	return next
}

// constructTour performs n-1 roulette-wheel moves and closes the tour back
// to the start city. One uniform draw from rng per move; the desirability
// row of the current city supplies the weights.
//
// Post-conditions: tour is a permutation of 0..n-1 beginning at start, and
// pathLength equals the legs summed in tour order plus the closing leg.
//
// Complexity: O(n²) per tour.
func (a *ant) constructTour(des *desirabilityTable, dist *DistanceTable, rng *rand.Rand) {
	var (
		n    = len(a.visited)
		move int
		j    int

		row       []float64
		weightSum float64
		next      int
	)
	for move = 1; move < n; move++ {
		row = des.row(a.current)

		// Denominator over the unvisited candidates.
		weightSum = 0
		for j = 0; j < n; j++ {
			if !a.visited[j] {
				weightSum += row[j]
			}
		}

		next = rouletteSelect(row, a.visited, weightSum, rng.Float64())

		a.pathLength += dist.at(a.current, next)
		a.current = next
		a.tour = append(a.tour, next)
		a.visited[next] = true
	}

	a.pathLength += dist.at(a.current, a.start)
	if a.pathLength < a.bestLength {
		a.bestLength = a.pathLength
	}
}
