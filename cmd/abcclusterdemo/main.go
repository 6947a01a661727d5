// Command abcclusterdemo runs all four named ABC clustering variants
// against a small, hard-coded separation-recovery dataset, prints each
// variant's final score, and merges their swarm fitness statistics into one
// cross-variant summary.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kulub/abcclustering"
	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/point"
	"github.com/kulub/abcclustering/rng"
)

func main() {
	var (
		cycles     = pflag.Int("cycles", 1000, "number of colony cycles to run")
		seed       = pflag.Uint64("seed", 1, "RNG seed")
		population = pflag.Int("population", 20, "swarm size")
		limit      = pflag.Int("limit", 200, "bee exhaustion limit")
		nClusters  = pflag.Int("clusters", 4, "number of clusters")
	)
	pflag.Parse()

	params := fuzzycluster.Params{
		NClusters: *nClusters,
		Points:    toyDataset(),
	}

	fmt.Printf("abcclusterdemo: n=%d k=%d population=%d limit=%d cycles=%d seed=%d\n",
		len(params.Points), *nClusters, *population, *limit, *cycles, *seed)

	var combined abccluster.FitnessStats
	combined = combined.Merge(runClassicRoulette(params, *population, *limit, *cycles, *seed))
	combined = combined.Merge(runDERoulette(params, *population, *limit, *cycles, *seed))
	combined = combined.Merge(runClassicTournament(params, *population, *limit, *cycles, *seed))
	combined = combined.Merge(runDETournament(params, *population, *limit, *cycles, *seed))

	fmt.Println("across all four variants:", combined)
}

func toyDataset() []point.Point {
	return []point.Point{
		{1, 2}, {5, 5}, {6, 5}, {0, 1},
		{19, 20}, {26, 21}, {-1, -2}, {-3, -2},
	}
}

func runClassicRoulette(params fuzzycluster.Params, population, limit, cycles int, seed uint64) abccluster.FitnessStats {
	colony, err := abccluster.NewClassicRouletteColony(params, population, limit, rng.New(seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "classic/roulette:", err)
		return abccluster.FitnessStats{}
	}
	colony.Fit(cycles)
	fmt.Printf("classic/roulette   score=%f\n", colony.Score())
	return colony.SwarmStats()
}

func runDERoulette(params fuzzycluster.Params, population, limit, cycles int, seed uint64) abccluster.FitnessStats {
	colony, err := abccluster.NewDERouletteColony(params, population, limit, 0.8, 0.1, rng.New(seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "de/roulette:", err)
		return abccluster.FitnessStats{}
	}
	colony.Fit(cycles)
	fmt.Printf("de/roulette        score=%f\n", colony.Score())
	return colony.SwarmStats()
}

func runClassicTournament(params fuzzycluster.Params, population, limit, cycles int, seed uint64) abccluster.FitnessStats {
	colony, err := abccluster.NewClassicTournamentColony(params, population, limit, rng.New(seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "classic/tournament:", err)
		return abccluster.FitnessStats{}
	}
	colony.Fit(cycles)
	fmt.Printf("classic/tournament score=%f\n", colony.Score())
	return colony.SwarmStats()
}

func runDETournament(params fuzzycluster.Params, population, limit, cycles int, seed uint64) abccluster.FitnessStats {
	colony, err := abccluster.NewDETournamentColony(params, population, limit, 0.8, 0.1, rng.New(seed))
	if err != nil {
		fmt.Fprintln(os.Stderr, "de/tournament:", err)
		return abccluster.FitnessStats{}
	}
	colony.Fit(cycles)
	fmt.Printf("de/tournament      score=%f\n", colony.Score())
	return colony.SwarmStats()
}
