// Package point implements the fixed-length dataset vectors clustered by
// the colony, plus the Euclidean distance used by the fitness function.
package point

import "gonum.org/v1/gonum/floats"

// Point is an ordered, fixed-length tuple of real numbers: one entry of the
// dataset. Every Point passed to a single fuzzycluster.Problem must share
// the same length D.
type Point []float64

// Copy returns an independent copy of p.
func (p Point) Copy() Point {
	c := make(Point, len(p))
	copy(c, p)
	return c
}

// Add adds q to p componentwise, in place.
func (p Point) Add(q Point) {
	for i := range p {
		p[i] += q[i]
	}
}

// Scale multiplies every component of p by s, in place.
func (p Point) Scale(s float64) {
	floats.Scale(s, p)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return floats.Distance(a, b, 2)
}

// SameDimension reports whether every point in pts has length d.
func SameDimension(pts []Point, d int) bool {
	for _, p := range pts {
		if len(p) != d {
			return false
		}
	}
	return true
}
