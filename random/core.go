package random

import (
	"reflect"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
	"golang.org/x/exp/rand"

	"github.com/chunktensor/chunktensor/graph"
	"github.com/chunktensor/chunktensor/types/shapes"
)

// probeSeed seeds the throwaway generator of the dtype probe. Any constant
// works: the probe draws zero samples, and it must never touch the operand's
// own reproducible stream.
const probeSeed uint64 = 0x70726f6265 // "probe"

// sizeSpec is the two-state output-size request: either an explicit
// dimension list or deferred to the broadcast of the array-like parameters.
// A deferred size is resolved exactly once, at graph-node-constructor time.
type sizeSpec struct {
	dims     []int
	explicit bool
}

type buildOptions struct {
	size   sizeSpec
	chunks []int
	gpu    bool
	dtype  dtypes.DType
}

// Option configures one public distribution function call.
type Option func(*buildOptions)

// WithSize requests an explicit output shape. WithSize(m, n, k) draws m*n*k
// samples into shape [m n k]; WithSize() with no arguments requests a scalar.
// Without this option the shape is derived from the broadcast of the
// array-like parameters.
func WithSize(dimensions ...int) Option {
	return func(o *buildOptions) {
		o.size = sizeSpec{dims: dimensions, explicit: true}
	}
}

// WithChunks requests chunk sizes per dimension. The hint is opaque here and
// passed through to the graph layer, which otherwise picks a default
// partitioning.
func WithChunks(chunks ...int) Option {
	return func(o *buildOptions) { o.chunks = chunks }
}

// WithDType sets the output element type explicitly, skipping inference.
func WithDType(dtype dtypes.DType) Option {
	return func(o *buildOptions) { o.dtype = dtype }
}

// OnGPU marks the node to be allocated on GPU at execution time.
func OnGPU() Option {
	return func(o *buildOptions) { o.gpu = true }
}

// build is the shared construction routine behind every public distribution
// function: normalize parameters, validate domains, infer the dtype, resolve
// the size, construct the immutable operand and register exactly one lazy
// node for it. No sampling happens here.
func build(g *graph.Graph, state *State, dist Distribution, args []any, opts []Option) *graph.Node {
	spec := distSpecs[dist]
	var options buildOptions
	for _, opt := range opts {
		opt(&options)
	}

	ps := make([]paramValue, len(args))
	for ii, arg := range args {
		ps[ii] = normalizeParam(spec.params[ii], arg)
	}
	if spec.validate != nil {
		spec.validate(dist, ps)
	}

	// The broadcast of the non-scalar parameters. Computed even when an
	// explicit size will win, so incompatible parameter shapes fail now and
	// not at execution time.
	var paramShapes []shapes.Shape
	for _, p := range ps {
		if !p.shape.IsScalar() {
			paramShapes = append(paramShapes, p.shape)
		}
	}
	broadcastDims := shapes.Broadcast(paramShapes...)

	dtype := options.dtype
	if dtype == dtypes.InvalidDType {
		dtype = probeDType(spec, ps)
	}

	dims := broadcastDims
	if options.size.explicit {
		dims = state.CanonicalSize(options.size.dims...)
	}
	shape := shapes.Make(dtype, dims...)

	op := &Operand{
		dist:     dist,
		shape:    shape,
		chunks:   slices.Clone(options.chunks),
		gpu:      options.gpu,
		stateRef: state.Ref(),
	}
	var inputs []*graph.Node
	op.params = make([]Param, len(ps))
	for ii, p := range ps {
		switch {
		case p.node != nil:
			op.params[ii] = Param{Name: p.name, Input: p.node}
			inputs = append(inputs, p.node)
		case p.isConstant():
			op.params[ii] = Param{Name: p.name, Const: p.scalar}
		default:
			node := g.Input(p.array, p.shape, p.inputKey())
			op.params[ii] = Param{Name: p.name, Input: node}
			inputs = append(inputs, node)
		}
	}
	return g.NewNode(op, shape, inputs, op.Chunks(), op.fingerprint())
}

// probeDType infers the output element type by invoking the eager kernel at
// size zero on the normalized parameters: the kernel's numeric machinery
// decides the element type without producing data. The source is a fresh,
// isolated generator, so no shared state is touched even transiently.
func probeDType(spec *distSpec, ps []paramValue) dtypes.DType {
	reps := make([]float64, len(ps))
	for ii, p := range ps {
		reps[ii] = representative(p)
	}
	sample := spec.sample(rand.NewSource(probeSeed), reps, 0)
	return dtypes.FromGoType(reflect.TypeOf(sample).Elem())
}

// ConstAs returns the embedded scalar constant cast to the given dtype.
// The execution layer uses it to feed kernels at each chunk's compute dtype;
// Float16 and BFloat16 round through float32.
func (p Param) ConstAs(dtype dtypes.DType) any {
	return shapes.CastAsDType(p.Const, dtype)
}
