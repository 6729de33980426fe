// Package tsplib - writer for the same subset Parse accepts.
//
// Contract:
//   - Write emits NAME, optional COMMENT, TYPE, DIMENSION, EDGE_WEIGHT_TYPE,
//     NODE_COORD_SECTION, one "id x y" row per point, EOF.
//   - Coordinates are formatted with the shortest representation that parses
//     back to the identical float64, so Write then Parse is lossless.
//   - Node ids are emitted 1-based in point order.
package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// fallbackName is written when the instance carries no NAME, keeping the
// output parseable by strict readers.
const fallbackName = "unnamed"

// Write emits inst to w in TSPLIB form. An instance without points is
// rejected with ErrEmptyInstance; coordinates are written as-is, finite or
// not, since validation belongs to the solver.
func Write(w io.Writer, inst *Instance) error {
	if inst == nil || len(inst.Points) == 0 {
		return ErrEmptyInstance
	}

	// bufio.Writer keeps the first write error and reports it from Flush,
	// so the happy path needs no per-line checks.
	bw := bufio.NewWriter(w)

	name := inst.Name
	if name == "" {
		name = fallbackName
	}
	fmt.Fprintf(bw, "%s : %s\n", keyName, name)
	if inst.Comment != "" {
		fmt.Fprintf(bw, "%s : %s\n", keyComment, inst.Comment)
	}
	fmt.Fprintf(bw, "%s : %s\n", keyType, typeTSP)
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, len(inst.Points))
	fmt.Fprintf(bw, "%s : %s\n", keyWeightType, weightEuc2D)
	fmt.Fprintln(bw, kwCoordSection)

	var i int
	for i = 0; i < len(inst.Points); i++ {
		fmt.Fprintf(bw, "%d %s %s\n",
			i+1, formatCoord(inst.Points[i].X), formatCoord(inst.Points[i].Y))
	}
	fmt.Fprintln(bw, kwEOF)
	return bw.Flush()
}

// WriteFile creates path (truncating any existing file) and writes inst
// into it.
func WriteFile(path string, inst *Instance) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tsplib: %w", err)
	}
	if err = Write(f, inst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// formatCoord renders one coordinate with round-trip precision.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
