// Package abccluster implements an Artificial Bee Colony swarm optimizer
// specialized to fuzzy c-partition clustering. A colony owns a swarm of
// bees, each carrying a candidate membership matrix (a fuzzycluster.Problem),
// and drives them through the classic employed/onlooker/scout cycle toward
// higher fitness (lower intra-cluster dispersion).
//
// The swarm is parameterized over two independent axes: the MixingStrategy
// that proposes mutated candidates (Classic or DE) and the SelectionStrategy
// that picks onlooker targets (Roulette or Tournament). Colony is generic
// over both so the hot mutate/select path is monomorphized per variant
// rather than dispatched through an interface vtable on every bee, every
// cycle. Four package-level constructors realize the four named
// configurations; callers never instantiate Colony's type parameters by
// hand.
package abccluster
