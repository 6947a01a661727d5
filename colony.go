package abccluster

import (
	"github.com/pkg/errors"

	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/rng"
)

// Colony owns the swarm, the champion, the running fitness total, and the
// RNG, and drives the employed/onlooker/scout cycle. It is generic over the
// mixing and selection strategies so the hot mutate/select path is
// monomorphized per variant instead of going through an interface call on
// every bee of every cycle.
type Colony[M MixingStrategy, S SelectionStrategy] struct {
	swarm     []Bee
	champion  Bee
	allNectar float64

	r         *rng.Rand
	mixing    M
	selection S
}

func newColony[M MixingStrategy, S SelectionStrategy](
	params fuzzycluster.Params, population, limit int, mixing M, selection S, r *rng.Rand,
) (*Colony[M, S], error) {
	if err := params.Validate(); err != nil {
		return nil, errors.Wrap(err, "abccluster: invalid dataset")
	}
	if population <= 0 {
		return nil, errors.Errorf("abccluster: population must be positive, got %d", population)
	}
	if limit <= 0 {
		return nil, errors.Errorf("abccluster: limit must be positive, got %d", limit)
	}

	swarm := make([]Bee, population)
	for i := range swarm {
		swarm[i] = newBee(params, limit, r)
	}

	champion := swarm[0].snapshot()
	var allNectar float64
	for _, b := range swarm {
		allNectar += b.Fitness
		if b.Fitness > champion.Fitness {
			champion = b.snapshot()
		}
	}

	return &Colony[M, S]{
		swarm:     swarm,
		champion:  champion,
		allNectar: allNectar,
		r:         r,
		mixing:    mixing,
		selection: selection,
	}, nil
}

// Champion returns an independent copy of the best candidate observed so
// far; mutating its Problem does not affect the colony.
func (c *Colony[M, S]) Champion() Bee {
	return c.champion.snapshot()
}

// Swarm returns the colony's current bees. The returned slice aliases the
// colony's internal storage and is meant for read-only inspection (e.g.
// diagnostics, tests); callers must not mutate it.
func (c *Colony[M, S]) Swarm() []Bee {
	return c.swarm
}

// Score returns the champion's fitness (higher is better).
func (c *Colony[M, S]) Score() float64 {
	return c.champion.Fitness
}

// Fit runs cycles cycles of the employed/onlooker/scout loop. It calls
// SetSize on the selection strategy before entering the loop, per spec —
// this must happen again on every call, since a caller may invoke Fit
// repeatedly with a different cycle budget.
func (c *Colony[M, S]) Fit(cycles int) {
	c.selection.SetSize(len(c.swarm), cycles)

	for iteration := 0; iteration < cycles; iteration++ {
		c.employedPhase()
		c.onlookerPhase(iteration)
		c.scoutPhase()
	}
}

// Optimize runs Fit(cycles) and returns the champion's membership matrix as
// result[k][i] = w[k,i].
func (c *Colony[M, S]) Optimize(cycles int) [][]float64 {
	c.Fit(cycles)

	n := c.champion.Problem.GeneCount()
	k := len(c.champion.Problem.GetGene(0))

	result := make([][]float64, k)
	for cluster := range result {
		result[cluster] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		g := c.champion.Problem.GetGene(i)
		for cluster, w := range g {
			result[cluster][i] = w
		}
	}
	return result
}

// employedPhase lets every bee attempt to improve itself once.
func (c *Colony[M, S]) employedPhase() {
	for i := range c.swarm {
		c.attempt(i)
	}
}

// onlookerPhase runs len(swarm) additional improvement attempts concentrated
// on bees the selection strategy favors.
func (c *Colony[M, S]) onlookerPhase(iteration int) {
	for n := 0; n < len(c.swarm); n++ {
		src := c.selection.Select(c.allNectar, c.swarm, iteration, c.r)
		c.attempt(src)
	}
}

// attempt mutates bee i via the mixing strategy and accepts the result if it
// improves the bee's fitness, folding the delta into allNectar.
func (c *Colony[M, S]) attempt(i int) {
	candidate := c.mixing.Mutate(i, c.swarm, c.champion, c.r)
	fitness := candidate.ComputeFitness()
	c.allNectar += c.swarm[i].accept(candidate, fitness)
}

// scoutPhase promotes the champion, tires every bee, and resynchronizes
// allNectar by full re-sum to bound floating-point drift.
func (c *Colony[M, S]) scoutPhase() {
	for i := range c.swarm {
		if c.swarm[i].Fitness > c.champion.Fitness {
			c.champion = c.swarm[i].snapshot()
		}
		c.allNectar += c.swarm[i].tire(c.r)
	}

	var resynced float64
	for _, b := range c.swarm {
		resynced += b.Fitness
	}
	c.allNectar = resynced
}

// SwarmStats folds the current fitness of every bee through FitnessStats,
// giving min/max/mean/stddev of the swarm without re-deriving Welford's
// algorithm at the call site.
func (c *Colony[M, S]) SwarmStats() FitnessStats {
	var s FitnessStats
	for _, b := range c.swarm {
		s = s.Insert(b.Fitness)
	}
	return s
}

func validateMixingParams(mr float64) error {
	if mr <= 0 || mr > 1 {
		return errors.Errorf("abccluster: mr must lie in (0, 1], got %v", mr)
	}
	return nil
}

// NewClassicRouletteColony builds the Classic-mixing, Roulette-selection
// configuration.
func NewClassicRouletteColony(params fuzzycluster.Params, population, limit int, r *rng.Rand) (*Colony[Classic, *Roulette], error) {
	return newColony[Classic, *Roulette](params, population, limit, Classic{}, &Roulette{}, r)
}

// NewDERouletteColony builds the DE-mixing, Roulette-selection configuration.
func NewDERouletteColony(params fuzzycluster.Params, population, limit int, f, mr float64, r *rng.Rand) (*Colony[DE, *Roulette], error) {
	if err := validateMixingParams(mr); err != nil {
		return nil, err
	}
	return newColony[DE, *Roulette](params, population, limit, DE{F: f, MR: mr}, &Roulette{}, r)
}

// NewClassicTournamentColony builds the Classic-mixing, Tournament-selection
// configuration.
func NewClassicTournamentColony(params fuzzycluster.Params, population, limit int, r *rng.Rand) (*Colony[Classic, *Tournament], error) {
	return newColony[Classic, *Tournament](params, population, limit, Classic{}, &Tournament{}, r)
}

// NewDETournamentColony builds the DE-mixing, Tournament-selection
// configuration.
func NewDETournamentColony(params fuzzycluster.Params, population, limit int, f, mr float64, r *rng.Rand) (*Colony[DE, *Tournament], error) {
	if err := validateMixingParams(mr); err != nil {
		return nil, err
	}
	return newColony[DE, *Tournament](params, population, limit, DE{F: f, MR: mr}, &Tournament{}, r)
}
