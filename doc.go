// Package antsys is an Ant System toolkit for Euclidean travelling-salesman
// problems: a pheromone-guided colony, deterministic instance generators,
// and TSPLIB plumbing under one module.
//
// 🐜 What is antsys?
//
//	A reproducible Ant System implementation that brings together:
//		• Colony loop: nearest-neighbour seeding, roulette construction, evaporation & deposit
//		• Distance plane: validated Euclidean tables with exact tour arithmetic
//		• Termination: fixed iteration counts or target-ratio cutoffs against a known optimum
//		• Parallelism: worker-striped tour construction, bit-identical to sequential runs
//		• TSPLIB I/O: the EUC_2D coordinate subset, read and write
//		• Generators: circles, grids and random scatters with known structure
//
// ✨ Why choose antsys?
//
//   - Reproducible – one seed fixes every draw, whatever the worker count
//   - Observable – per-iteration Best/Mean/Worst stats streamed to your callback
//   - Pure algorithm core – the aco package keeps zero third-party imports
//   - Scriptable – the antsys CLI solves, generates and writes CSV series
//
// Under the hood, everything is organized under four packages:
//
//	aco/    — the colony: distance table, pheromone field, ants, run loop
//	cities/ — deterministic instance generators (circle, grid, random)
//	tsplib/ — TSPLIB EUC_2D parsing, writing & the classic-optimum catalog
//	cmd/    — the antsys command: solve and gen
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	four cities on a unit square; the perimeter tour A→B→C→D→A is optimal,
//	and the colony finds it in a handful of iterations.
//
// Dive into README.md for CLI walkthroughs and parameter guidance.
//
//	go get github.com/katalvlaran/antsys
package antsys
