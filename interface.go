package abccluster

import (
	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/rng"
)

// Bee owns one candidate solution and its exhaustion counter. remainingCycles
// counts down from limit every cycle it is not improved by mutation; reaching
// zero triggers a scout re-randomization.
type Bee struct {
	Problem fuzzycluster.Problem
	Fitness float64

	limit           int
	remainingCycles int
}

// newBee constructs a freshly-randomized bee with its counter at limit.
func newBee(params fuzzycluster.Params, limit int, r *rng.Rand) Bee {
	p := fuzzycluster.New(params, r)
	return Bee{
		Problem:         p,
		Fitness:         p.ComputeFitness(),
		limit:           limit,
		remainingCycles: limit,
	}
}

// accept replaces the bee's problem with candidate if candidate's fitness
// exceeds the bee's current fitness, resetting the exhaustion counter. It
// returns the fitness delta added to all_nectar (zero if rejected).
func (b *Bee) accept(candidate fuzzycluster.Problem, fitness float64) float64 {
	if fitness <= b.Fitness {
		return 0
	}
	delta := fitness - b.Fitness
	b.Problem = candidate
	b.Fitness = fitness
	b.remainingCycles = b.limit
	return delta
}

// tire decrements the exhaustion counter, or re-randomizes the bee's problem
// once the counter reaches zero. It returns the signed fitness delta to fold
// into all_nectar (zero unless a scout re-randomization occurred).
func (b *Bee) tire(r *rng.Rand) float64 {
	if b.remainingCycles == 0 {
		old := b.Fitness
		b.Problem.RandomizeValue(r)
		b.Fitness = b.Problem.ComputeFitness()
		b.remainingCycles = b.limit
		return b.Fitness - old
	}
	b.remainingCycles--
	return 0
}

// snapshot returns an independent copy of b with its Problem detached via
// Clone. A bare struct copy still aliases Problem's weight buffer with the
// swarm; every stored champion must go through snapshot instead, or a later
// in-place RandomizeValue on the source bee corrupts the stored matrix.
func (b Bee) snapshot() Bee {
	b.Problem = b.Problem.Clone()
	return b
}

// MixingStrategy proposes a mutated candidate for the bee at index beeIdx,
// drawing on the rest of the swarm and the current champion. The returned
// Problem is always an independent copy with at least one column mutated
// and repaired; acceptance is decided by the colony, not the strategy.
type MixingStrategy interface {
	Mutate(beeIdx int, swarm []Bee, champion Bee, r *rng.Rand) fuzzycluster.Problem
}

// SelectionStrategy picks a bee index to target during the onlooker phase.
// SetSize is called once before a colony's cycle loop begins (and again at
// the start of any subsequent Fit/Optimize call), giving the strategy a
// chance to precompute anything that depends on the population size or the
// planned cycle budget.
type SelectionStrategy interface {
	SetSize(population, maxIterations int)
	Select(allNectar float64, swarm []Bee, iteration int, r *rng.Rand) int
}
