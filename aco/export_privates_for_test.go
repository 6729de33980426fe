package aco

// Test-bridge (white-box) for private kernels.
//
// Purpose:
//   - Expose unexported pieces (pheromone field, desirability table, ant,
//     RNG derivation) to aco_test without widening the production API.
//   - The _test.go suffix keeps this file out of production builds entirely.
//
// Conventions:
//   - *_TestOnly names for everything exported here.
//   - Probes wrap the internal tables; function bridges are direct references.

import "math/rand"

var (
	DeriveSeed_TestOnly                = deriveSeed
	RngFromSeed_TestOnly               = rngFromSeed
	AntStream_TestOnly                 = antStream
	FastPow_TestOnly                   = fastPow
	RouletteSelect_TestOnly            = rouletteSelect
	NearestNeighborTourLength_TestOnly = nearestNeighborTourLength
)

// PherProbe_TestOnly is a white-box handle on a pheromone field.
type PherProbe_TestOnly struct {
	f *pheromoneField
}

func NewPherProbe_TestOnly(n int) *PherProbe_TestOnly {
	return &PherProbe_TestOnly{f: newPheromoneField(n)}
}

// Seed forwards to the private seeding pass and returns the reference
// tour length.
func (p *PherProbe_TestOnly) Seed(dist *DistanceTable, ants int, rng *rand.Rand) float64 {
	return p.f.seed(dist, ants, rng)
}

func (p *PherProbe_TestOnly) At(i, j int) float64 { return p.f.at(i, j) }

// Set writes a symmetric pheromone level directly, bypassing seeding.
func (p *PherProbe_TestOnly) Set(i, j int, v float64) {
	p.f.data[i*p.f.n+j] = v
	p.f.data[j*p.f.n+i] = v
}

// Update assembles transient ants from open tours with the given lengths
// and applies one evaporation+deposit round. Returns the round's best.
func (p *PherProbe_TestOnly) Update(tours [][]int, lengths []float64, rate float64) float64 {
	ants := make([]*ant, len(tours))

	var k int
	for k = range tours {
		ants[k] = &ant{tour: tours[k], pathLength: lengths[k]}
	}
	return p.f.update(ants, rate)
}

// DesProbe_TestOnly is a white-box handle on a desirability table.
type DesProbe_TestOnly struct {
	t *desirabilityTable
}

func NewDesProbe_TestOnly(n int) *DesProbe_TestOnly {
	return &DesProbe_TestOnly{t: newDesirabilityTable(n)}
}

func (d *DesProbe_TestOnly) Recompute(p *PherProbe_TestOnly, dist *DistanceTable, alpha, beta float64) {
	d.t.recompute(p.f, dist, alpha, beta)
}

func (d *DesProbe_TestOnly) At(i, j int) float64 { return d.t.at(i, j) }

// AntProbe_TestOnly drives a single ant outside a colony.
type AntProbe_TestOnly struct {
	a *ant
}

func NewAntProbe_TestOnly(n int) *AntProbe_TestOnly {
	return &AntProbe_TestOnly{a: newAnt(n)}
}

// RunTour resets the ant with rng and constructs one tour against the
// given tables, exactly as one colony iteration would.
func (p *AntProbe_TestOnly) RunTour(des *DesProbe_TestOnly, dist *DistanceTable, rng *rand.Rand) {
	p.a.reset(rng)
	p.a.constructTour(des.t, dist, rng)
}

func (p *AntProbe_TestOnly) Tour() []int         { return CopyTour(p.a.tour) }
func (p *AntProbe_TestOnly) PathLength() float64 { return p.a.pathLength }
func (p *AntProbe_TestOnly) BestLength() float64 { return p.a.bestLength }
func (p *AntProbe_TestOnly) Start() int          { return p.a.start }

// PheromoneAt_TestOnly reads the colony's pheromone level between i and j.
func (c *Colony) PheromoneAt_TestOnly(i, j int) float64 { return c.pher.at(i, j) }
