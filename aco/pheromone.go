// Package aco - shared pheromone field.
//
// The field is owned by Colony: read-only to ants during tour construction,
// mutated only by seed (once) and update (once per iteration). It stays
// symmetric and non-negative with a zero diagonal throughout a run with a
// conventional evaporation rate.
package aco

import (
	"math"
	"math/rand"
)

// pheromoneField is the trail-strength matrix shared by the whole colony.
// Flat row-major storage, same layout as DistanceTable.
type pheromoneField struct {
	n    int
	data []float64
}

func newPheromoneField(n int) *pheromoneField {
	return &pheromoneField{n: n, data: make([]float64, n*n)}
}

// at returns the trail strength between cities i and j.
func (p *pheromoneField) at(i, j int) float64 { return p.data[i*p.n+j] }

// nearestNeighborTourLength walks a greedy tour from start: repeatedly move
// to the nearest unvisited city, then close the loop back to start. Ties on
// "nearest" resolve to the lowest index because candidates are scanned in
// ascending order under strict <.
//
// Complexity: O(n²) time, O(n) space.
func nearestNeighborTourLength(dist *DistanceTable, start int) float64 {
	var (
		n       = dist.N()
		visited = make([]bool, n)
		cur     = start
		total   float64
	)
	visited[cur] = true

	var (
		step    int
		j       int
		next    int
		nearest float64
		d       float64
	)
	for step = 1; step < n; step++ {
		next = -1
		nearest = math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = dist.at(cur, j)
			if d < nearest {
				nearest = d
				next = j
			}
		}
		total += nearest
		cur = next
		visited[cur] = true
	}
	return total + dist.at(cur, start)
}

// seed sets every off-diagonal entry to ants/seedTourLength, where
// seedTourLength is the length of a nearest-neighbor tour starting at a
// uniformly random city drawn from rng. Returns the seeding tour length.
//
// The uniform baseline keeps first-iteration probabilities non-degenerate;
// it carries no optimality claim about the greedy tour itself.
//
// Complexity: O(n²).
func (p *pheromoneField) seed(dist *DistanceTable, ants int, rng *rand.Rand) float64 {
	var total = nearestNeighborTourLength(dist, rng.Intn(p.n))

	var (
		level = float64(ants) / total
		i, j  int
	)
	for i = 0; i < p.n; i++ {
		for j = 0; j < p.n; j++ {
			if i != j {
				p.data[i*p.n+j] = level
			}
		}
	}
	return total
}

// update applies one evaporation+deposit cycle and returns the minimum tour
// length among the ants ("best of iteration").
//
// Evaporation multiplies the whole field by (1-rate) strictly before any
// deposit, so every ant deposits against the same post-evaporation
// baseline. Each ant then adds 1/pathLength to both directions of every leg
// of its closed tour, the closing leg included.
//
// Complexity: O(n² + ants·n).
func (p *pheromoneField) update(ants []*ant, rate float64) float64 {
	var (
		keep = 1 - rate
		i    int
	)
	for i = range p.data {
		p.data[i] *= keep
	}

	var (
		best    = math.Inf(1)
		a       *ant
		deposit float64
		k       int
		u, v    int
	)
	for _, a = range ants {
		deposit = 1 / a.pathLength
		for k = 0; k+1 < len(a.tour); k++ {
			u = a.tour[k]
			v = a.tour[k+1]
			p.data[u*p.n+v] += deposit
			p.data[v*p.n+u] += deposit
		}
		// Closing leg back to the start city.
		u = a.tour[len(a.tour)-1]
		v = a.tour[0]
		p.data[u*p.n+v] += deposit
		p.data[v*p.n+u] += deposit

		if a.pathLength < best {
			best = a.pathLength
		}
	}
	return best
}
