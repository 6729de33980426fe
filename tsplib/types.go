// Package tsplib - instance model and error set.
//
// Design notes:
//   - Instance keeps only what the solver needs: identity plus coordinates.
//     Header fields the parser tolerates but does not use are dropped.
//   - Sentinels are package-level and stable; Parse wraps them with the
//     line number of the offending input, WriteFile with the path.
package tsplib

import (
	"errors"

	"github.com/katalvlaran/antsys/aco"
)

// Instance is one parsed problem: a named set of points on the Euclidean
// plane. Points preserve file order, so index i in Points is node i+1 of
// the NODE_COORD_SECTION.
type Instance struct {
	Name    string      // NAME header, "" when absent
	Comment string      // COMMENT header, "" when absent
	Points  []aco.Point // one entry per coordinate row
}

// Dimension reports the number of points. It exists so callers reading an
// Instance do not reach into Points just to size things.
func (in *Instance) Dimension() int { return len(in.Points) }

var (
	// ErrBadHeader - a pre-section line that is neither "KEY : value" nor a
	// recognized section keyword.
	ErrBadHeader = errors.New("tsplib: malformed header line")
	// ErrUnsupportedType - TYPE present and not TSP.
	ErrUnsupportedType = errors.New("tsplib: unsupported problem type")
	// ErrUnsupportedWeightType - EDGE_WEIGHT_TYPE present and not EUC_2D.
	ErrUnsupportedWeightType = errors.New("tsplib: unsupported edge weight type")
	// ErrMissingDimension - DIMENSION absent, unparsable, or < 1.
	ErrMissingDimension = errors.New("tsplib: missing or invalid dimension")
	// ErrBadCoordinate - a NODE_COORD_SECTION row that is not "id x y".
	ErrBadCoordinate = errors.New("tsplib: malformed coordinate row")
	// ErrDimensionMismatch - coordinate row count differs from DIMENSION.
	ErrDimensionMismatch = errors.New("tsplib: coordinate count does not match dimension")
	// ErrEmptyInstance - Write called with no points to emit.
	ErrEmptyInstance = errors.New("tsplib: instance has no points")
)
