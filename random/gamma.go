package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Gamma builds a lazy node that draws from a gamma distribution with the
// given shape and scale parameters, both of which must be positive.
func Gamma(g *graph.Graph, state *State, shape, scale any, opts ...Option) *graph.Node {
	return build(g, state, DistGamma, []any{shape, scale}, opts)
}
