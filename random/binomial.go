package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Binomial builds a lazy node that draws from a binomial distribution with
// n >= 0 trials and success probability p in [0, 1]. The output dtype is an
// integer type.
func Binomial(g *graph.Graph, state *State, n, p any, opts ...Option) *graph.Node {
	return build(g, state, DistBinomial, []any{n, p}, opts)
}
