// Package aco implements the Ant System metaheuristic for the Euclidean
// Traveling Salesman Problem.
//
// A colony of agents ("ants") repeatedly constructs closed tours over a set
// of cities. Each move is drawn from a roulette wheel weighted by
//
//	desirability(i,j) = pheromone(i,j)^Alpha · (1/distance(i,j))^Beta
//
// After every iteration the shared pheromone field evaporates at a fixed
// rate and each ant deposits 1/length on every leg of its tour, so the legs
// of shorter tours gain probability mass over time.
//
// One Colony.Run iteration performs:
//
//	recompute desirability → construct all tours → evaporate + deposit → record bests
//
// Termination is either a fixed iteration count or a target ratio against a
// known optimal length (see StopMode); the two modes are mutually exclusive.
//
// Determinism: every random draw derives from Options.Seed through an
// avalanche-mixed per-(iteration, ant) stream, so runs with equal seeds
// produce identical results, including under parallel construction
// (Options.Workers > 1).
//
// Complexity per iteration: tour construction dominates with O(n²·ants);
// the desirability recompute is O(n²) and the pheromone update O(n² + n·ants).
//
// No logging, no panics on user input - only sentinel errors from types.go.
package aco
