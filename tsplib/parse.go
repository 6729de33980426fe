// Package tsplib - reader for the EUC_2D coordinate subset.
//
// Contract:
//   - Parse consumes the whole reader and returns a fully validated Instance.
//   - Header phase: "KEY : value" lines until NODE_COORD_SECTION. Unknown
//     keys are skipped; known keys are validated in place.
//   - Coordinate phase: "id x y" rows until an EOF marker or end of input.
//     Node ids are checked for shape only, not for sequence.
//   - The row count must equal the DIMENSION header exactly.
//
// Complexity: O(L) over input lines, O(n) memory for the points.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/antsys/aco"
)

// Keywords of the supported subset. Header keys are matched after trimming,
// so both "NAME: x" and "NAME : x" spellings parse.
const (
	kwEOF          = "EOF"
	kwCoordSection = "NODE_COORD_SECTION"

	keyName       = "NAME"
	keyType       = "TYPE"
	keyComment    = "COMMENT"
	keyDimension  = "DIMENSION"
	keyWeightType = "EDGE_WEIGHT_TYPE"

	typeTSP     = "TSP"
	weightEuc2D = "EUC_2D"

	dimensionUnset = -1
	coordFields    = 3 // id x y
)

// Parse reads a single instance from r.
//
// The EOF marker and the TYPE, COMMENT and EDGE_WEIGHT_TYPE headers are
// optional; DIMENSION and NODE_COORD_SECTION are not. Every returned error
// wraps one of the package sentinels.
func Parse(r io.Reader) (*Instance, error) {
	var (
		inst      = &Instance{}         // accumulates headers, then points
		scanner   = bufio.NewScanner(r) // line-oriented input
		dimension = dimensionUnset      // DIMENSION header once seen
		inCoords  bool                  // true after NODE_COORD_SECTION
		lineNo    int                   // 1-based, for error context
		line      string                // current trimmed line
	)

	for scanner.Scan() {
		lineNo++
		line = strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == kwEOF {
			break
		}
		if inCoords {
			pt, err := parseCoordRow(line, lineNo)
			if err != nil {
				return nil, err
			}
			inst.Points = append(inst.Points, pt)
			continue
		}
		if line == kwCoordSection {
			inCoords = true
			continue
		}
		if err := parseHeader(inst, line, lineNo, &dimension); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tsplib: read: %w", err)
	}

	if dimension == dimensionUnset {
		return nil, fmt.Errorf("no DIMENSION header: %w", ErrMissingDimension)
	}
	if len(inst.Points) != dimension {
		return nil, fmt.Errorf("%d coordinate rows, DIMENSION %d: %w",
			len(inst.Points), dimension, ErrDimensionMismatch)
	}
	return inst, nil
}

// ParseFile opens path and parses it as one instance.
func ParseFile(path string) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// parseHeader handles one pre-section line. Known keys are validated,
// unknown keys (DISPLAY_DATA_TYPE and friends) are tolerated, and a line
// without a colon is malformed.
func parseHeader(inst *Instance, line string, lineNo int, dimension *int) error {
	key, value, found := strings.Cut(line, ":")
	if !found {
		return fmt.Errorf("line %d %q: %w", lineNo, line, ErrBadHeader)
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	switch key {
	case keyName:
		inst.Name = value
	case keyComment:
		inst.Comment = value
	case keyType:
		if value != typeTSP {
			return fmt.Errorf("line %d TYPE %q: %w", lineNo, value, ErrUnsupportedType)
		}
	case keyWeightType:
		if value != weightEuc2D {
			return fmt.Errorf("line %d EDGE_WEIGHT_TYPE %q: %w", lineNo, value, ErrUnsupportedWeightType)
		}
	case keyDimension:
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return fmt.Errorf("line %d DIMENSION %q: %w", lineNo, value, ErrMissingDimension)
		}
		*dimension = n
	}
	return nil
}

// parseCoordRow handles one "id x y" row of the coordinate section.
func parseCoordRow(line string, lineNo int) (aco.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != coordFields {
		return aco.Point{}, fmt.Errorf("line %d %q: %w", lineNo, line, ErrBadCoordinate)
	}
	if _, err := strconv.Atoi(fields[0]); err != nil {
		return aco.Point{}, fmt.Errorf("line %d id %q: %w", lineNo, fields[0], ErrBadCoordinate)
	}
	x, errX := strconv.ParseFloat(fields[1], 64)
	y, errY := strconv.ParseFloat(fields[2], 64)
	if errX != nil || errY != nil {
		return aco.Point{}, fmt.Errorf("line %d %q: %w", lineNo, line, ErrBadCoordinate)
	}
	return aco.Point{X: x, Y: y}, nil
}
