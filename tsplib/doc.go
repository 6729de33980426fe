// Package tsplib reads and writes the coordinate subset of the TSPLIB95
// format: TYPE TSP, EDGE_WEIGHT_TYPE EUC_2D, NODE_COORD_SECTION rows.
// That subset is exactly what a Euclidean plane solver can consume; explicit
// weight matrices and non-Euclidean metrics are out of scope.
//
// Parsing is lenient about headers it does not understand and strict about
// the ones it does: an unknown "KEY : value" line is skipped, while an
// unsupported TYPE or EDGE_WEIGHT_TYPE, a missing DIMENSION, or a
// coordinate-count mismatch is a hard error. Errors wrap the package
// sentinels with the offending line number, so callers can both print them
// and branch on errors.Is.
//
// The package also carries a table of proven optima for classic Euclidean
// instances (KnownOptimal), which the CLI uses to resolve target-ratio runs
// by instance name.
package tsplib
