package abccluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulub/abcclustering"
	"github.com/kulub/abcclustering/rng"
)

func TestDEMutatesAtLeastOneColumn(t *testing.T) {
	swarm := buildSwarm(t, 6, 3)
	champion := swarm[0]
	r := rng.New(13)

	mixing := abccluster.DE{F: 0.8, MR: 0.0001}
	candidate := mixing.Mutate(2, swarm, champion, r)

	changed := 0
	original := swarm[2].Problem
	for i := 0; i < candidate.GeneCount(); i++ {
		if !genesEqual(original.GetGene(i), candidate.GetGene(i)) {
			changed++
		}
	}
	require.GreaterOrEqual(t, changed, 1)
}

func TestDEMutationRateOneMutatesEveryColumn(t *testing.T) {
	swarm := buildSwarm(t, 6, 3)
	champion := swarm[0]
	r := rng.New(14)

	mixing := abccluster.DE{F: 0.8, MR: 1}
	candidate := mixing.Mutate(2, swarm, champion, r)

	original := swarm[2].Problem
	for i := 0; i < candidate.GeneCount(); i++ {
		g := candidate.GetGene(i)
		require.False(t, genesEqual(original.GetGene(i), g))
		require.InDelta(t, 1.0, g.Sum(), 1e-9)
	}
}

func TestDEProducesColumnStochasticCandidate(t *testing.T) {
	swarm := buildSwarm(t, 6, 3)
	champion := swarm[0]
	r := rng.New(15)

	mixing := abccluster.DE{F: 0.8, MR: 0.3}
	candidate := mixing.Mutate(0, swarm, champion, r)

	for i := 0; i < candidate.GeneCount(); i++ {
		g := candidate.GetGene(i)
		require.InDelta(t, 1.0, g.Sum(), 1e-9)
		for _, w := range g {
			require.GreaterOrEqual(t, w, 0.0)
			require.LessOrEqual(t, w, 1.0)
		}
	}
}
