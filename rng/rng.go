// Package rng provides the colony's random number source plus the
// combinatorial sampling helpers every strategy threads it through:
// exclusion draws, sampling without replacement, and roulette-wheel lookup.
//
// Rand wraps golang.org/x/exp/rand instead of math/rand so that every
// stochastic operation in this module goes through one injectable,
// concretely-typed generator — the same generator family gonum's
// optimize.CmaEsChol accepts as its Src field.
package rng

import (
	"golang.org/x/exp/rand"
)

// Rand is the colony's random number source. It is not safe for concurrent
// use; a colony owns exactly one Rand and threads it by reference through
// every stochastic call, per spec.
type Rand struct {
	*rand.Rand
}

// New returns a Rand seeded deterministically from seed.
func New(seed uint64) *Rand {
	return &Rand{rand.New(rand.NewSource(seed))}
}

// UniformIntExcept returns a value in [min, max] that is never equal to
// excluded. excluded must lie in [min, max].
func (r *Rand) UniformIntExcept(min, max, excluded int) int {
	v := min + r.Intn(max-min)
	if v >= excluded {
		v++
	}
	return v
}

// UniformIntsWithoutReplacement returns count distinct values in [min, max]
// via partial Fisher-Yates. count must be <= max - min + 1.
func (r *Rand) UniformIntsWithoutReplacement(count, min, max int) []int {
	n := max - min + 1
	pool := make([]int, n)
	for i := range pool {
		pool[i] = min + i
	}

	result := make([]int, count)
	for i := 0; i < count; i++ {
		j := i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
		result[i] = pool[i]
	}
	return result
}

// UniformIntsExcept returns count distinct values from [min, max] \
// {excluded}, by sampling without replacement over [min, max-1] and then
// shifting any draw >= excluded up by one.
func (r *Rand) UniformIntsExcept(count, min, max, excluded int) []int {
	result := r.UniformIntsWithoutReplacement(count, min, max-1)
	for i, v := range result {
		if v >= excluded {
			result[i] = v + 1
		}
	}
	return result
}

// Roulette returns the smallest index i such that the running sum of
// fitnesses[0..i] is >= target. target is expected to be drawn uniformly
// from [0, sum(fitnesses)). A nonpositive target returns index 0. If target
// is never reached (floating-point overshoot of the total), the last index
// is returned. Roulette assumes fitnesses is never empty; an empty slice is a
// precondition violation, not a handled case (see the reference
// implementation's behavior for a never-empty swarm).
func Roulette(target float64, fitnesses []float64) int {
	winner := 0
	for _, f := range fitnesses {
		target -= f
		if target <= 0 {
			return winner
		}
		winner++
	}
	return winner - 1
}
