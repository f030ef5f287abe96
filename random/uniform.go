package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Uniform builds a lazy node that draws samples uniformly distributed over
// the half-open interval [low, high) -- includes low, excludes high.
//
// low and high are floats, nested slices of floats, or upstream *graph.Node
// values. Without WithSize, the output shape is the broadcast of the
// parameter shapes. When high == low all samples equal low. The result for
// high < low is undefined: construction does not reject it, and the
// execution layer makes no promise about it.
func Uniform(g *graph.Graph, state *State, low, high any, opts ...Option) *graph.Node {
	return build(g, state, DistUniform, []any{low, high}, opts)
}
