package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Beta builds a lazy node that draws from a beta distribution over [0, 1]
// with positive shape parameters a and b.
func Beta(g *graph.Graph, state *State, a, b any, opts ...Option) *graph.Node {
	return build(g, state, DistBeta, []any{a, b}, opts)
}
