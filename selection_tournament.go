package abccluster

import (
	"github.com/kulub/abcclustering/rng"
)

// Tournament selects the fittest of a schedule-varying number of randomly
// sampled bees: a small tournament early (exploration), growing toward the
// full population late (exploitation). It owns its scratch permutation
// buffer as an instance field rather than a package-level cache, since the
// reference implementation's function-local static cache is process-global
// state that breaks under two concurrently-running colonies.
type Tournament struct {
	population    int
	maxIterations int
	scratch       []int
}

// SetSize records the population and cycle budget the schedule is computed
// against, and sizes the scratch permutation buffer. Must be called again
// if a colony is later Fit with a different maxIterations.
func (t *Tournament) SetSize(population, maxIterations int) {
	t.population = population
	t.maxIterations = maxIterations
	t.scratch = make([]int, population)
	for i := range t.scratch {
		t.scratch[i] = i
	}
}

// computeSize implements the piecewise tournament-size schedule of
// spec.md §4.4.2.
func (t *Tournament) computeSize(iteration int) int {
	p, T := t.population, t.maxIterations

	if p >= 20 {
		bucket := T / 10
		if bucket == 0 {
			bucket = 1
		}
		return p * (iteration/bucket + 1) / 10
	}

	fifth := T / 5
	fourFifths := 4 * T / 5

	if p > 10 {
		switch {
		case iteration <= fifth:
			return 2
		case iteration <= fourFifths:
			return 2 + p/5
		default:
			return p
		}
	}

	switch {
	case iteration <= fifth:
		return 2
	case iteration <= fourFifths:
		return 3
	default:
		return p
	}
}

// Select samples computeSize(iteration) distinct bee indices without
// replacement and returns the index of the fittest among them, ties broken
// by first occurrence. allNectar is unused; tournament selection is immune
// to all_nectar drift.
func (t *Tournament) Select(allNectar float64, swarm []Bee, iteration int, r *rng.Rand) int {
	size := t.computeSize(iteration)
	if size > t.population {
		size = t.population
	}
	if size < 1 {
		size = 1
	}

	for i := range t.scratch {
		t.scratch[i] = i
	}
	for i := 0; i < size; i++ {
		j := i + r.Intn(t.population-i)
		t.scratch[i], t.scratch[j] = t.scratch[j], t.scratch[i]
	}

	best := t.scratch[0]
	for _, idx := range t.scratch[1:size] {
		if swarm[idx].Fitness > swarm[best].Fitness {
			best = idx
		}
	}
	return best
}
