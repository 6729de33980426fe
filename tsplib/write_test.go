package tsplib_test

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antsys/aco"
	"github.com/katalvlaran/antsys/tsplib"
)

// Write formats coordinates with shortest round-trip precision, so parsing
// the output must reproduce the identical float64 values, irrational or not.
func TestWriteParse_RoundTrip(t *testing.T) {
	inst := &tsplib.Instance{
		Name:    "ripple3",
		Comment: "irrational coordinates survive the trip",
		Points: []aco.Point{
			{X: 0.1, Y: -0.3},
			{X: math.Sqrt2 * 1e3, Y: 1.0 / 3.0},
			{X: -7, Y: 2.5e-17},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, tsplib.Write(&buf, inst))

	back, err := tsplib.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, inst.Name, back.Name)
	require.Equal(t, inst.Comment, back.Comment)
	require.Equal(t, inst.Points, back.Points)
}

func TestWrite_EmptyRejected(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, tsplib.Write(&buf, &tsplib.Instance{}), tsplib.ErrEmptyInstance)
	require.ErrorIs(t, tsplib.Write(&buf, nil), tsplib.ErrEmptyInstance)
	require.Zero(t, buf.Len())
}

// A nameless instance still emits a NAME header, so strict readers keep
// working.
func TestWrite_FallbackName(t *testing.T) {
	inst := &tsplib.Instance{Points: []aco.Point{{X: 1, Y: 2}}}

	var buf bytes.Buffer
	require.NoError(t, tsplib.Write(&buf, inst))

	back, err := tsplib.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, "unnamed", back.Name)
}

func TestFileRoundTrip(t *testing.T) {
	inst := &tsplib.Instance{
		Name:   "triangle3",
		Points: []aco.Point{{X: 0, Y: 0}, {X: 3, Y: 0}, {X: 0, Y: 4}},
	}
	path := filepath.Join(t.TempDir(), "triangle3.tsp")

	require.NoError(t, tsplib.WriteFile(path, inst))

	back, err := tsplib.ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, inst.Name, back.Name)
	require.Equal(t, inst.Points, back.Points)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := tsplib.ParseFile(filepath.Join(t.TempDir(), "absent.tsp"))
	require.Error(t, err)
}
