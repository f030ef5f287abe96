// Package random is the operand layer for lazy random tensors: each public
// function turns "draw from distribution D with parameters P and shape S"
// into a graph node that the distributed runtime can later partition into
// independently computable chunks.
//
// Nothing samples at construction time. A call like
//
//	g := graph.New("")
//	state := random.NewState(42)
//	node := random.Uniform(g, state, -1.0, 0.0, random.WithSize(1000))
//
// only builds an immutable Operand (shape, dtype, device hint, parameters and
// random-state handle) and registers one lazy node for it. Array-like
// parameters -- nested Go slices or upstream *graph.Node values -- become
// declared inputs of the node, so the graph layer can broadcast and
// chunk-align them later; scalars are embedded as constants.
//
// When no dtype is requested it is inferred by running the equivalent eager
// sampling kernel (gonum's distuv) at size zero on the normalized parameters,
// with an isolated throwaway generator: the real numeric machinery decides
// the element type, and the operand's reproducible stream is never touched.
//
// Construction is synchronous and pure. All invalid-argument conditions are
// reported immediately by panicking with one of the typed errors
// (TypeConversionError, ParameterDomainError, shapes.InvalidShapeError,
// shapes.BroadcastShapeError); recover them with exceptions.TryFor. Nothing
// is deferred to execution time.
package random
