// Package aco - per-iteration desirability weights.
//
// The desirability of a move is the product pheromone^Alpha · (1/distance)^Beta.
// The table caches that product for every leg and is fully recomputed before
// each construction round; it never persists across iterations.
package aco

import "math"

// desirabilityTable caches the unnormalized move weights for one iteration.
// Flat row-major storage, symmetric, zero diagonal.
type desirabilityTable struct {
	n    int
	data []float64
}

func newDesirabilityTable(n int) *desirabilityTable {
	return &desirabilityTable{n: n, data: make([]float64, n*n)}
}

// at returns the move weight from city i to city j.
func (t *desirabilityTable) at(i, j int) float64 { return t.data[i*t.n+j] }

// row returns the weight row of city i. Callers must not mutate it.
func (t *desirabilityTable) row(i int) []float64 {
	return t.data[i*t.n : (i+1)*t.n]
}

// recompute refreshes every off-diagonal weight from the current pheromone
// field; the diagonal stays zero. Off-diagonal distances are strictly
// positive (enforced when the DistanceTable is built), so the division
// cannot blow up here.
//
// Complexity: O(n²).
func (t *desirabilityTable) recompute(pher *pheromoneField, dist *DistanceTable, alpha, beta float64) {
	var (
		n    = t.n
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		t.data[i*n+i] = 0
		for j = i + 1; j < n; j++ {
			w = fastPow(pher.at(i, j), alpha) * fastPow(1/dist.at(i, j), beta)
			t.data[i*n+j] = w
			t.data[j*n+i] = w
		}
	}
}

// fastPow computes base^exp with multiply/sqrt fast paths for the half-step
// exponents the reference parameterization uses (Alpha 1.5, Beta 3.5, and
// the common integer settings). Falls back to math.Pow for everything else.
//
// Complexity: O(1).
func fastPow(base, exp float64) float64 {
	switch exp {
	case 0.5:
		return math.Sqrt(base)
	case 1:
		return base
	case 1.5:
		return base * math.Sqrt(base)
	case 2:
		return base * base
	case 2.5:
		return base * base * math.Sqrt(base)
	case 3:
		return base * base * base
	case 3.5:
		return base * base * base * math.Sqrt(base)
	case 4:
		return base * base * base * base
	default:
		return math.Pow(base, exp)
	}
}
