package abccluster

import (
	"github.com/kulub/abcclustering/fuzzycluster"
	"github.com/kulub/abcclustering/rng"
)

// Classic is the original ABC mixing rule: perturb one point's membership
// column toward or away from a single randomly chosen buddy bee's column.
// Classic holds no state and is safe to share across colonies.
type Classic struct{}

// Mutate picks a buddy distinct from beeIdx, perturbs one column of the
// target bee's gene along the line through the buddy's corresponding column,
// and repairs the result. Mirrors real/cross.go's ArithX composition of
// Vector Add/Subtract/Scale, specialized to a single gene column.
func (Classic) Mutate(beeIdx int, swarm []Bee, champion Bee, r *rng.Rand) fuzzycluster.Problem {
	population := len(swarm)
	buddyIdx := r.UniformIntExcept(0, population-1, beeIdx)

	candidate := swarm[beeIdx].Problem.Clone()
	j := r.Intn(candidate.GeneCount())

	g := candidate.GetGene(j)
	buddy := swarm[buddyIdx].Problem.GetGene(j)

	phi := r.Float64()*2 - 1
	diff := g.Copy()
	diff.Subtract(buddy)
	diff.Scale(phi)
	g.Add(diff)
	g.Repair()

	candidate.SetGene(j, g)
	return candidate
}
