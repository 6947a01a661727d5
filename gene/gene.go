// Package gene implements the membership column — one point's partial
// memberships across every cluster — as a value type with componentwise
// arithmetic and the repair projection that keeps it column-stochastic.
package gene

import "math"

// Gene is a length-K column of the membership matrix: Gene[k] is a single
// point's membership weight in cluster k. Arithmetic methods mutate the
// receiver in place, mirroring the pack's convention for fixed-length
// numeric vectors (see real.Vector in the evolutionary-algorithm teacher
// this package is adapted from).
type Gene []float64

// New allocates a zeroed Gene of the given number of clusters.
func New(nClusters int) Gene {
	return make(Gene, nClusters)
}

// Copy returns an independent copy of g.
func (g Gene) Copy() Gene {
	c := make(Gene, len(g))
	copy(c, g)
	return c
}

// Add adds w to g componentwise, in place.
func (g Gene) Add(w Gene) {
	for i := range g {
		g[i] += w[i]
	}
}

// Subtract subtracts w from g componentwise, in place.
func (g Gene) Subtract(w Gene) {
	for i := range g {
		g[i] -= w[i]
	}
}

// Scale multiplies every component of g by s, in place.
func (g Gene) Scale(s float64) {
	for i := range g {
		g[i] *= s
	}
}

// Sum returns the sum of the components of g.
func (g Gene) Sum() float64 {
	var sum float64
	for _, v := range g {
		sum += v
	}
	return sum
}

// Repair projects g onto the set of valid membership columns: every
// component is clamped to [0, 1], then the column is divided by its sum so
// that it sums to 1. A column whose sum is already within 1e-12 of 1 is not
// rescaled, which makes Repair idempotent bit for bit. If clamping drives
// every component to zero (the sum is zero), the column falls back to the
// uniform distribution (1/K, ..., 1/K) — the one robustness rule the
// reference implementation leaves implicit.
func (g Gene) Repair() {
	for i, v := range g {
		switch {
		case v < 0:
			g[i] = 0
		case v > 1:
			g[i] = 1
		}
	}

	sum := g.Sum()
	if sum == 0 {
		uniform := 1 / float64(len(g))
		for i := range g {
			g[i] = uniform
		}
		return
	}

	if math.Abs(sum-1) <= 1e-12 {
		return
	}
	for i := range g {
		g[i] /= sum
	}
}
