package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// ChiSquare builds a lazy node that draws from a chi-square distribution
// with df degrees of freedom, df > 0.
func ChiSquare(g *graph.Graph, state *State, df any, opts ...Option) *graph.Node {
	return build(g, state, DistChiSquare, []any{df}, opts)
}
