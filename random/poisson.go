package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Poisson builds a lazy node that draws from a Poisson distribution with
// expectation lam >= 0. The output dtype is an integer type.
func Poisson(g *graph.Graph, state *State, lam any, opts ...Option) *graph.Node {
	return build(g, state, DistPoisson, []any{lam}, opts)
}
