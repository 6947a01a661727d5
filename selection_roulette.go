package abccluster

import (
	"github.com/kulub/abcclustering/rng"
)

// Roulette is fitness-proportional selection: the probability of picking
// bee i is proportional to its current fitness. Roulette holds no state and
// ignores SetSize.
type Roulette struct{}

// SetSize is a no-op; Roulette needs neither the population size nor the
// planned cycle budget.
func (Roulette) SetSize(population, maxIterations int) {}

// Select draws a target uniformly from [0, allNectar) and returns the
// fitness-weighted index via rng.Roulette.
func (Roulette) Select(allNectar float64, swarm []Bee, iteration int, r *rng.Rand) int {
	t := r.Float64() * allNectar

	fitnesses := make([]float64, len(swarm))
	for i, b := range swarm {
		fitnesses[i] = b.Fitness
	}
	return rng.Roulette(t, fitnesses)
}
