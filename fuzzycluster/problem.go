// Package fuzzycluster encodes a single candidate solution to the fuzzy
// c-partition clustering problem: a column-stochastic membership matrix
// over a fixed, shared dataset of points, plus the fitness function the
// colony maximizes.
package fuzzycluster

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/kulub/abcclustering/gene"
	"github.com/kulub/abcclustering/point"
	"github.com/kulub/abcclustering/rng"
)

// Params bundles the cluster count and the shared dataset a Problem is
// built against. The dataset is captured by reference (a slice header) and
// never copied; every Problem constructed from the same Params shares one
// backing array, read-only, for the lifetime of the colony.
type Params struct {
	NClusters int
	Points    []point.Point
}

// Validate checks the constructor preconditions from spec §6/§7: a
// nonempty, dimensionally-consistent, finite dataset and a positive cluster
// count.
func (p Params) Validate() error {
	if p.NClusters <= 0 {
		return errors.Errorf("fuzzycluster: n_clusters must be positive, got %d", p.NClusters)
	}
	if len(p.Points) == 0 {
		return errors.New("fuzzycluster: dataset must contain at least one point")
	}

	d := len(p.Points[0])
	if d == 0 {
		return errors.New("fuzzycluster: points must have at least one dimension")
	}

	for i, pt := range p.Points {
		if len(pt) != d {
			return errors.Errorf("fuzzycluster: point %d has dimension %d, want %d", i, len(pt), d)
		}
		for j, v := range pt {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Errorf("fuzzycluster: point %d component %d is not a finite real number", i, j)
			}
		}
	}
	return nil
}

// Problem is a candidate solution: the flat K*N membership-weight buffer in
// cluster-major order (index k*N+i is the membership of point i in cluster
// k), alongside the shared dataset and cluster count it was built against.
type Problem struct {
	weights   []float64
	nClusters int
	points    []point.Point
}

// New constructs a Problem for the given params, drawing its initial
// membership matrix via RandomizeValue. params must already be valid; use
// Params.Validate before the first call in a colony's lifetime.
func New(params Params, r *rng.Rand) Problem {
	p := Problem{
		weights:   make([]float64, params.NClusters*len(params.Points)),
		nClusters: params.NClusters,
		points:    params.Points,
	}
	p.RandomizeValue(r)
	return p
}

// Clone returns an independent copy of p; its weight buffer does not alias
// the receiver's. Every mutating strategy must Clone before SetGene, since
// Problem's weights slice aliases its backing array on plain assignment.
func (p Problem) Clone() Problem {
	w := make([]float64, len(p.weights))
	copy(w, p.weights)
	return Problem{weights: w, nClusters: p.nClusters, points: p.points}
}

// RandomizeValue draws a fresh column-stochastic membership matrix: for
// each point, K independent Uniform[0,1) draws normalized to sum to 1.
func (p *Problem) RandomizeValue(r *rng.Rand) {
	n := p.GeneCount()
	for i := 0; i < n; i++ {
		g := gene.New(p.nClusters)
		for k := range g {
			g[k] = r.Float64()
		}
		sum := g.Sum()
		g.Scale(1 / sum)
		p.SetGene(i, g)
	}
}

// GeneCount returns N, the number of points (and so the number of genes).
func (p Problem) GeneCount() int {
	return len(p.points)
}

// GetGene returns a copy of column i: point i's membership across every
// cluster.
func (p Problem) GetGene(i int) gene.Gene {
	n := p.GeneCount()
	g := gene.New(p.nClusters)
	for k := range g {
		g[k] = p.weights[k*n+i]
	}
	return g
}

// SetGene overwrites column i with g.
func (p *Problem) SetGene(i int, g gene.Gene) {
	n := p.GeneCount()
	for k, v := range g {
		p.weights[k*n+i] = v
	}
}

// ComputeFitness returns 1/J, where J is the sum over clusters of the
// weighted Euclidean dispersion of every point from that cluster's weighted
// centroid:
//
//	J = sum_k sum_i w[k,i] * dist(x_i, c_k)
//	c_k = (sum_i w[k,i]*x_i) / (sum_i w[k,i])
//
// The weighting is linear in w, not w^m as in textbook fuzzy c-means; this
// is a deliberate property of this optimizer, preserved bit-for-bit. J == 0
// (every weight collapses onto a point coincident with its centroid) yields
// +Inf.
func (p Problem) ComputeFitness() float64 {
	n := p.GeneCount()
	d := len(p.points[0])

	var j float64
	for k := 0; k < p.nClusters; k++ {
		weightSum := 0.0
		centroid := make(point.Point, d)
		for i := 0; i < n; i++ {
			w := p.weights[k*n+i]
			weightSum += w
			floats.AddScaled(centroid, w, p.points[i])
		}
		centroid.Scale(1 / weightSum)

		for i := 0; i < n; i++ {
			w := p.weights[k*n+i]
			j += w * point.Distance(p.points[i], centroid)
		}
	}

	return 1 / j
}
