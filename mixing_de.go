package abccluster

import (
	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/rng"
)

// DE is the differential-evolution mixing rule: every column is
// independently eligible for mutation at rate MR, and an eligible column is
// replaced by the champion's column perturbed by a scaled, signed
// combination of the bee's own column and three buddy columns. This
// deviates from classical DE/current-to-best (the base vector is the
// champion, not the target bee) and must be preserved exactly.
type DE struct {
	F  float64 // perturbation scale, typically 0.8
	MR float64 // per-gene mutation rate, typically 0.1
}

// Mutate implements spec.md §4.3.2. At least one column is always mutated:
// if every per-column draw exceeds MR, one column is forced active.
func (d DE) Mutate(beeIdx int, swarm []Bee, champion Bee, r *rng.Rand) fuzzycluster.Problem {
	population := len(swarm)
	buddies := r.UniformIntsExcept(3, 0, population-1, beeIdx)
	b1, b2, b3 := swarm[buddies[0]].Problem, swarm[buddies[1]].Problem, swarm[buddies[2]].Problem
	bee := swarm[beeIdx].Problem

	n := bee.GeneCount()
	active := make([]bool, n)
	anyActive := false
	for j := 0; j < n; j++ {
		active[j] = r.Float64() <= d.MR
		anyActive = anyActive || active[j]
	}
	if !anyActive {
		active[r.Intn(n)] = true
	}

	candidate := bee.Clone()
	for j := 0; j < n; j++ {
		if !active[j] {
			continue
		}

		g := champion.Problem.GetGene(j)
		perturbation := bee.GetGene(j)
		perturbation.Subtract(b1.GetGene(j))
		perturbation.Add(b2.GetGene(j))
		perturbation.Subtract(b3.GetGene(j))
		perturbation.Scale(d.F)

		g.Add(perturbation)
		g.Repair()
		candidate.SetGene(j, g)
	}
	return candidate
}
