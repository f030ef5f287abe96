package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// RandomSample builds a lazy node of floats uniformly distributed over
// [0.0, 1.0). It takes no distribution parameters, so without WithSize the
// output is a scalar.
func RandomSample(g *graph.Graph, state *State, opts ...Option) *graph.Node {
	return build(g, state, DistRandomSample, nil, opts)
}
