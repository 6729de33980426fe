package aco_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antsys/aco"
	"github.com/stretchr/testify/require"
)

func TestDesirabilityRecompute_Formula(t *testing.T) {
	d := mustDist(t, unitSquare())

	p := aco.NewPherProbe_TestOnly(4)
	levels := map[[2]int]float64{
		{0, 1}: 2.0, {0, 2}: 1.5, {0, 3}: 3.0,
		{1, 2}: 0.5, {1, 3}: 1.0, {2, 3}: 4.0,
	}
	for ij, v := range levels {
		p.Set(ij[0], ij[1], v)
	}

	des := aco.NewDesProbe_TestOnly(4)
	des.Recompute(p, d, 1, 2) // α=1, β=2 keeps the expectation hand-checkable

	for ij, v := range levels {
		dist, err := d.At(ij[0], ij[1])
		require.NoError(t, err)
		inv := 1 / dist
		require.InDelta(t, v*(inv*inv), des.At(ij[0], ij[1]), epsTiny)
		require.Equal(t, des.At(ij[0], ij[1]), des.At(ij[1], ij[0]))
	}
	for i := 0; i < 4; i++ {
		require.Zero(t, des.At(i, i))
	}
}

func TestDesirability_DefaultExponents(t *testing.T) {
	d := mustDist(t, unitSquare())

	p := aco.NewPherProbe_TestOnly(4)
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			p.Set(i, j, 1.25)
		}
	}

	des := aco.NewDesProbe_TestOnly(4)
	des.Recompute(p, d, aco.DefaultAlpha, aco.DefaultBeta)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			dist, err := d.At(i, j)
			require.NoError(t, err)
			want := math.Pow(1.25, aco.DefaultAlpha) * math.Pow(1/dist, aco.DefaultBeta)
			require.InEpsilon(t, want, des.At(i, j), 1e-12)
		}
	}
}

func TestFastPow_MatchesPow(t *testing.T) {
	bases := []float64{0.125, 0.5, 1, 1.25, 2, 3.33, 10}
	exps := []float64{0.5, 1, 1.5, 2, 2.5, 3, 3.5, 4}

	for _, b := range bases {
		for _, e := range exps {
			require.InEpsilon(t, math.Pow(b, e), aco.FastPow_TestOnly(b, e), 1e-12,
				"base=%v exp=%v", b, e)
		}
	}

	// Exponents outside the fast paths fall through to math.Pow verbatim.
	require.Equal(t, math.Pow(1.25, 1.7), aco.FastPow_TestOnly(1.25, 1.7))
}
