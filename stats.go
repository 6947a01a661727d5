package abccluster

import (
	"fmt"
	"math"
)

// FitnessStats is a streaming max/min/mean/variance collector over bee
// fitness values, built via Welford's online algorithm (adapted from the
// teacher's generic genome-fitness Stats type) so Colony.SwarmStats never
// needs to buffer a pass over the swarm, and so stats from independent
// colony runs can be combined after the fact with Merge without re-reading
// either swarm.
type FitnessStats struct {
	max, min float64
	mean     float64
	sumsq    float64 // sum of squares of deviation from the mean
	len      float64
}

// Insert folds one bee's fitness into the running statistics.
func (s FitnessStats) Insert(fitness float64) FitnessStats {
	if s.len == 0 {
		s.max = math.Inf(-1)
		s.min = math.Inf(+1)
	}

	delta := fitness - s.mean
	newlen := s.len + 1

	s.max = math.Max(s.max, fitness)
	s.min = math.Min(s.min, fitness)
	s.mean += delta / newlen
	s.sumsq += delta * delta * (s.len / newlen)
	s.len = newlen

	return s
}

// Merge combines statistics accumulated over two disjoint swarms (or, as in
// cmd/abcclusterdemo, two separate colony runs) into the statistics of their
// union, without re-inserting either swarm's fitness values.
func (s FitnessStats) Merge(t FitnessStats) FitnessStats {
	if t.len == 0 {
		return s
	}
	if s.len == 0 {
		s.max = math.Inf(-1)
		s.min = math.Inf(+1)
	}

	delta := t.mean - s.mean
	newlen := t.len + s.len

	s.max = math.Max(s.max, t.max)
	s.min = math.Min(s.min, t.min)
	s.mean += delta * (t.len / newlen)
	s.sumsq += t.sumsq
	s.sumsq += delta * delta * (t.len * s.len / newlen)
	s.len = newlen

	return s
}

// Max returns the fittest bee's fitness.
func (s FitnessStats) Max() float64 {
	return s.max
}

// Min returns the least fit bee's fitness.
func (s FitnessStats) Min() float64 {
	return s.min
}

// Range returns the spread between the fittest and least fit bee.
func (s FitnessStats) Range() float64 {
	return s.max - s.min
}

// Mean returns the swarm's average fitness.
func (s FitnessStats) Mean() float64 {
	return s.mean
}

// Variance returns the swarm's fitness variance.
func (s FitnessStats) Variance() float64 {
	return s.sumsq / s.len
}

// StdDeviation returns the swarm's fitness standard deviation.
func (s FitnessStats) StdDeviation() float64 {
	return math.Sqrt(s.sumsq / s.len)
}

// Len returns the number of bee fitness values folded into s.
func (s FitnessStats) Len() int {
	return int(s.len)
}

// String renders a one-line swarm fitness summary.
func (s FitnessStats) String() string {
	return fmt.Sprintf("swarm fitness: max %f | min %f | mean %f | sd %f",
		s.Max(), s.Min(), s.Mean(), s.StdDeviation())
}
