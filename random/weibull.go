package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Weibull builds a lazy node that draws from a 1-parameter Weibull
// distribution with shape parameter a, which must be greater than zero.
// The 2-parameter form with scale lambda is lambda*Weibull(a).
func Weibull(g *graph.Graph, state *State, a any, opts ...Option) *graph.Node {
	return build(g, state, DistWeibull, []any{a}, opts)
}
