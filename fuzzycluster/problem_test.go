package fuzzycluster_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/point"
	"github.com/kulub/abcclustering/rng"
)

func smallDataset() []point.Point {
	return []point.Point{{1, 2}, {5, 5}, {6, 5}, {0, 1}}
}

func TestNewProducesColumnStochasticMatrix(t *testing.T) {
	r := rng.New(7)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 3, Points: smallDataset()}, r)
	for i := 0; i < p.GeneCount(); i++ {
		g := p.GetGene(i)
		require.InDelta(t, 1.0, g.Sum(), 1e-9)
		for _, w := range g {
			require.GreaterOrEqual(t, w, 0.0)
			require.LessOrEqual(t, w, 1.0)
		}
	}
}

func TestGetSetGeneRoundTrip(t *testing.T) {
	r := rng.New(1)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 2, Points: smallDataset()}, r)
	g := p.GetGene(1)
	g[0], g[1] = 0.25, 0.75
	p.SetGene(1, g)
	require.Equal(t, g, p.GetGene(1))
}

func TestCloneDoesNotAliasWeights(t *testing.T) {
	r := rng.New(2)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 2, Points: smallDataset()}, r)
	clone := p.Clone()
	g := clone.GetGene(0)
	g[0] = 0
	g[1] = 1
	clone.SetGene(0, g)
	require.NotEqual(t, p.GetGene(0), clone.GetGene(0))
}

func TestKEqualsOneEveryMembershipIsOne(t *testing.T) {
	r := rng.New(3)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 1, Points: smallDataset()}, r)
	for i := 0; i < p.GeneCount(); i++ {
		g := p.GetGene(i)
		require.Len(t, g, 1)
		require.InDelta(t, 1.0, g[0], 1e-12)
	}
}

func TestKEqualsOneFitnessReducesToDistanceFromMean(t *testing.T) {
	pts := smallDataset()
	r := rng.New(4)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 1, Points: pts}, r)

	mean := point.Point{0, 0}
	for _, pt := range pts {
		mean.Add(pt)
	}
	mean.Scale(1 / float64(len(pts)))

	var want float64
	for _, pt := range pts {
		want += point.Distance(pt, mean)
	}
	want = 1 / want

	require.InDelta(t, want, p.ComputeFitness(), 1e-9)
}

func TestNEqualsOneSingleGeneOfLengthK(t *testing.T) {
	r := rng.New(5)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 4, Points: []point.Point{{1, 1}}}, r)
	require.Equal(t, 1, p.GeneCount())
	require.Len(t, p.GetGene(0), 4)
}

func TestComputeFitnessIsFinitePositive(t *testing.T) {
	r := rng.New(6)
	p := fuzzycluster.New(fuzzycluster.Params{NClusters: 3, Points: smallDataset()}, r)
	f := p.ComputeFitness()
	require.False(t, math.IsNaN(f))
	require.Greater(t, f, 0.0)
}

func TestValidateRejectsInconsistentDimension(t *testing.T) {
	params := fuzzycluster.Params{NClusters: 2, Points: []point.Point{{1, 2}, {1, 2, 3}}}
	require.Error(t, params.Validate())
}

func TestValidateRejectsNonFiniteComponents(t *testing.T) {
	params := fuzzycluster.Params{NClusters: 2, Points: []point.Point{{1, math.NaN()}}}
	require.Error(t, params.Validate())
}

func TestValidateRejectsZeroClusters(t *testing.T) {
	params := fuzzycluster.Params{NClusters: 0, Points: smallDataset()}
	require.Error(t, params.Validate())
}

func TestValidateRejectsEmptyDataset(t *testing.T) {
	params := fuzzycluster.Params{NClusters: 2, Points: nil}
	require.Error(t, params.Validate())
}

func TestValidateAcceptsWellFormedInput(t *testing.T) {
	params := fuzzycluster.Params{NClusters: 2, Points: smallDataset()}
	require.NoError(t, params.Validate())
}
