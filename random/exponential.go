package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Exponential builds a lazy node that draws from an exponential distribution
// with the given scale (the inverse of the rate), which must be positive.
func Exponential(g *graph.Graph, state *State, scale any, opts ...Option) *graph.Node {
	return build(g, state, DistExponential, []any{scale}, opts)
}
