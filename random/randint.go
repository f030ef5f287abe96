package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// RandInt builds a lazy node that draws integers uniformly from the
// half-open interval [low, high). When both bounds are concrete scalars,
// low < high is enforced at construction time.
func RandInt(g *graph.Graph, state *State, low, high any, opts ...Option) *graph.Node {
	return build(g, state, DistRandInt, []any{low, high}, opts)
}
