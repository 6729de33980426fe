// Package cities generates deterministic coordinate sets for the solver and
// the CLI: regular polygons, lattices and seeded uniform scatters.
//
// All generators are pure functions of their arguments: the same call
// produces the same points, in the same order, on every platform. Outputs
// are guaranteed duplicate-free, so downstream distance construction never
// sees a zero-length leg.
package cities
