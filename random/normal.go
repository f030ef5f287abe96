package random

import (
	"github.com/chunktensor/chunktensor/graph"
)

// Normal builds a lazy node that draws from a normal (Gaussian) distribution
// with mean loc and standard deviation scale. scale must be non-negative.
func Normal(g *graph.Graph, state *State, loc, scale any, opts ...Option) *graph.Node {
	return build(g, state, DistNormal, []any{loc, scale}, opts)
}

// LogNormal builds a lazy node that draws from a log-normal distribution:
// the log of the samples is normally distributed with the given mean and
// standard deviation sigma. sigma must be non-negative.
func LogNormal(g *graph.Graph, state *State, mean, sigma any, opts ...Option) *graph.Node {
	return build(g, state, DistLogNormal, []any{mean, sigma}, opts)
}
