package abccluster_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulub/abcclustering"
	"github.com/kulub/abcclustering/rng"
)

func TestRouletteSelectNeverOutOfRange(t *testing.T) {
	var roulette abccluster.Roulette
	roulette.SetSize(10, 100)
	swarm := buildSwarm(t, 10, 2)
	r := rng.New(4)

	var allNectar float64
	for _, b := range swarm {
		allNectar += b.Fitness
	}

	for i := 0; i < 200; i++ {
		idx := roulette.Select(allNectar, swarm, 0, r)
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 10)
	}
}
