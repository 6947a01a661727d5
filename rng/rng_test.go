package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kulub/abcclustering/rng"
)

func TestUniformIntExceptNeverReturnsExcluded(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 1000; i++ {
		v := r.UniformIntExcept(0, 5, 3)
		require.NotEqual(t, 3, v)
		require.GreaterOrEqual(t, v, 0)
		require.LessOrEqual(t, v, 5)
	}
}

func TestUniformIntExceptOnlyLegalBuddy(t *testing.T) {
	r := rng.New(2)
	for i := 0; i < 100; i++ {
		v := r.UniformIntExcept(0, 1, 0)
		require.Equal(t, 1, v)
	}
}

func TestUniformIntsWithoutReplacementAreDistinct(t *testing.T) {
	r := rng.New(3)
	for i := 0; i < 200; i++ {
		draws := r.UniformIntsWithoutReplacement(4, 0, 9)
		require.Len(t, draws, 4)
		seen := map[int]bool{}
		for _, v := range draws {
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, 9)
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestUniformIntsExceptExcludesAndDistinct(t *testing.T) {
	r := rng.New(4)
	for i := 0; i < 200; i++ {
		draws := r.UniformIntsExcept(3, 0, 9, 5)
		require.Len(t, draws, 3)
		seen := map[int]bool{}
		for _, v := range draws {
			require.NotEqual(t, 5, v)
			require.GreaterOrEqual(t, v, 0)
			require.LessOrEqual(t, v, 9)
			require.False(t, seen[v])
			seen[v] = true
		}
	}
}

func TestRouletteReturnsFirstCrossingIndex(t *testing.T) {
	fitnesses := []float64{1, 1, 1, 1}
	require.Equal(t, 0, rng.Roulette(0.5, fitnesses))
	require.Equal(t, 1, rng.Roulette(1.5, fitnesses))
	require.Equal(t, 3, rng.Roulette(3.5, fitnesses))
}

func TestRouletteOvershootReturnsLastIndex(t *testing.T) {
	fitnesses := []float64{1, 1, 1}
	require.Equal(t, 2, rng.Roulette(10, fitnesses))
}

func TestRouletteNonpositiveTargetReturnsFirstIndex(t *testing.T) {
	fitnesses := []float64{1, 2, 3}
	require.Equal(t, 0, rng.Roulette(0, fitnesses))
	require.Equal(t, 0, rng.Roulette(-5, fitnesses))
}

func TestDeterministicGivenSameSeed(t *testing.T) {
	a := rng.New(42)
	b := rng.New(42)
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}
