package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Pareto builds a lazy node that draws from a Pareto distribution with
// shape parameter a > 0 and unit scale.
func Pareto(g *graph.Graph, state *State, a any, opts ...Option) *graph.Node {
	return build(g, state, DistPareto, []any{a}, opts)
}
