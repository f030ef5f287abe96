package random_test

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/chunktensor/chunktensor/graph"
	"github.com/chunktensor/chunktensor/random"
	"github.com/chunktensor/chunktensor/types/shapes"
)

func TestDTypeInference(t *testing.T) {
	g := graph.New("dtype")
	state := random.NewState(42)

	// Without an explicit dtype, the zero-size probe of the eager kernel
	// decides: continuous families are Float64, discrete ones Int64.
	require.Equal(t, dtypes.Float64, random.Uniform(g, state, 0.0, 1.0).DType())
	require.Equal(t, dtypes.Float64, random.Weibull(g, state, 5.0).DType())
	require.Equal(t, dtypes.Float64, random.Normal(g, state, 0.0, 1.0).DType())
	require.Equal(t, dtypes.Float64, random.RandomSample(g, state).DType())
	require.Equal(t, dtypes.Int64, random.Poisson(g, state, 3.0).DType())
	require.Equal(t, dtypes.Int64, random.Binomial(g, state, 10, 0.5).DType())
	require.Equal(t, dtypes.Int64, random.RandInt(g, state, 0, 10).DType())

	// Integer parameters do not change the inferred float dtype.
	require.Equal(t, dtypes.Float64, random.Uniform(g, state, 0, 1).DType())

	// An explicit dtype skips inference.
	node := random.Uniform(g, state, 0.0, 1.0, random.WithDType(dtypes.Float32), random.WithSize(4))
	require.Equal(t, dtypes.Float32, node.DType())
}

func TestExplicitSize(t *testing.T) {
	g := graph.New("size")
	state := random.NewState(0)

	node := random.Uniform(g, state, 0.0, 1.0, random.WithSize(3, 4))
	require.Equal(t, []int{3, 4}, node.Shape().Dimensions)
	require.Equal(t, 12, node.Shape().Size())

	node = random.Uniform(g, state, 0.0, 1.0, random.WithSize(10))
	require.Equal(t, []int{10}, node.Shape().Dimensions)

	// WithSize() with no dimensions requests a scalar.
	node = random.Uniform(g, state, 0.0, 1.0, random.WithSize())
	require.True(t, node.IsScalar())

	// No size and scalar parameters also yield a scalar.
	node = random.Normal(g, state, 0.0, 1.0)
	require.True(t, node.IsScalar())

	// Zero-size output is valid.
	node = random.Uniform(g, state, 0.0, 1.0, random.WithSize(0))
	require.Equal(t, 0, node.Shape().Size())
}

func TestNegativeSize(t *testing.T) {
	g := graph.New("size")
	state := random.NewState(0)
	err := exceptions.TryCatch[*shapes.InvalidShapeError](func() {
		random.Uniform(g, state, 0.0, 1.0, random.WithSize(-1))
	})
	require.NotNil(t, err)
	require.Equal(t, 0, g.NumNodes())
}

func TestShapeFromParameterBroadcast(t *testing.T) {
	g := graph.New("broadcast")
	state := random.NewState(7)

	low := [][]float64{{0}, {1}, {2}}     // shape (3, 1)
	high := [][]float64{{10, 20, 30, 40}} // shape (1, 4)
	node := random.Uniform(g, state, low, high)
	require.Equal(t, []int{3, 4}, node.Shape().Dimensions)
	require.Len(t, node.Inputs(), 2)

	// A 1-d parameter broadcast against a scalar keeps its own shape.
	node = random.Weibull(g, state, []float64{1, 2, 3})
	require.Equal(t, []int{3}, node.Shape().Dimensions)
}

func TestBroadcastShapeError(t *testing.T) {
	g := graph.New("broadcast")
	state := random.NewState(7)
	err := exceptions.TryCatch[*shapes.BroadcastShapeError](func() {
		random.Uniform(g, state, []float64{0, 0}, []float64{1, 1, 1})
	})
	require.NotNil(t, err)
	require.Equal(t, []int{2}, err.Lhs)
	require.Equal(t, []int{3}, err.Rhs)
	require.Equal(t, 0, g.NumNodes())
}

func TestNodeReuseOnIdenticalConstruction(t *testing.T) {
	g := graph.New("idempotence")
	state := random.NewState(11)

	n1 := random.Uniform(g, state, 0.0, 1.0, random.WithSize(100))
	n2 := random.Uniform(g, state, 0.0, 1.0, random.WithSize(100))
	require.Same(t, n1, n2)
	require.Equal(t, 1, g.NumNodes())

	op1 := n1.Op().(*random.Operand)
	op2 := n2.Op().(*random.Operand)
	require.True(t, op1.Equal(op2))

	// Value-equal array parameters reuse both the input node and the
	// random node, independent of call order.
	a1 := random.Weibull(g, state, []float64{1, 2, 3})
	b1 := random.Weibull(g, state, []float64{4, 5, 6})
	a2 := random.Weibull(g, state, []float64{1, 2, 3})
	require.Same(t, a1, a2)
	require.NotSame(t, a1, b1)

	// Constants of different Go types that print identically are not the
	// same value once cast for execution: float32(0.1) widens to
	// 0.10000000149..., not 0.1. They must build distinct nodes.
	f32 := random.Uniform(g, state, float32(0.1), 1.0, random.WithSize(100))
	f64 := random.Uniform(g, state, 0.1, 1.0, random.WithSize(100))
	require.NotSame(t, f32, f64)
	require.False(t, f32.Op().(*random.Operand).Equal(f64.Op().(*random.Operand)))
	require.NotEqual(t,
		f32.Op().(*random.Operand).Params()[0].ConstAs(dtypes.Float64),
		f64.Op().(*random.Operand).Params()[0].ConstAs(dtypes.Float64))

	// Different state, same parameters: distinct nodes.
	other := random.NewState(12)
	n3 := random.Uniform(g, other, 0.0, 1.0, random.WithSize(100))
	require.NotSame(t, n1, n3)

	// Different chunk hints: distinct nodes too.
	n4 := random.Uniform(g, state, 0.0, 1.0, random.WithSize(100), random.WithChunks(10))
	require.NotSame(t, n1, n4)
}

func TestUniformDegenerateInterval(t *testing.T) {
	g := graph.New("degenerate")
	state := random.NewState(3)
	// high == low is valid; that all samples then equal low is the
	// execution layer's business, not checked here.
	node := random.Uniform(g, state, 5.0, 5.0, random.WithSize(10))
	require.Equal(t, []int{10}, node.Shape().Dimensions)
}

func TestWeibullScenario(t *testing.T) {
	g := graph.New("weibull")
	state := random.NewState(5)
	node := random.Weibull(g, state, 5.0, random.WithSize(1000))
	require.Equal(t, []int{1000}, node.Shape().Dimensions)
	require.True(t, node.DType().IsFloat())

	again := random.Weibull(g, state, 5.0, random.WithSize(1000))
	op := node.Op().(*random.Operand)
	require.Equal(t, state.Ref(), op.StateRef())
	require.Same(t, node, again)

	// Nothing materialized: only the one lazy node exists, with no payload.
	require.Equal(t, 1, g.NumNodes())
	require.Nil(t, node.InputValue())
}

func TestParameterDomainErrors(t *testing.T) {
	g := graph.New("domain")
	state := random.NewState(9)

	for name, fn := range map[string]func(){
		"weibull negative a":     func() { random.Weibull(g, state, -1.0) },
		"normal negative scale":  func() { random.Normal(g, state, 0.0, -2.0) },
		"exponential zero scale": func() { random.Exponential(g, state, 0.0) },
		"gamma zero shape":       func() { random.Gamma(g, state, 0.0, 1.0) },
		"beta zero b":            func() { random.Beta(g, state, 1.0, 0.0) },
		"chisquare zero df":      func() { random.ChiSquare(g, state, 0.0) },
		"pareto zero a":          func() { random.Pareto(g, state, 0.0) },
		"poisson negative lam":   func() { random.Poisson(g, state, -0.5) },
		"binomial p above one":   func() { random.Binomial(g, state, 10, 1.5) },
		"randint empty interval": func() { random.RandInt(g, state, 3, 3) },
		"weibull bad element":    func() { random.Weibull(g, state, []float64{1, -2, 3}) },
	} {
		err := exceptions.TryCatch[*random.ParameterDomainError](fn)
		require.NotNil(t, err, "case %q", name)
	}
	// No partially-constructed node escaped.
	require.Equal(t, 0, g.NumNodes())
}

func TestTypeConversionErrors(t *testing.T) {
	g := graph.New("conversion")
	state := random.NewState(9)

	for name, fn := range map[string]func(){
		"string parameter": func() { random.Uniform(g, state, "zero", 1.0) },
		"nil parameter":    func() { random.Weibull(g, state, nil) },
		"bool parameter":   func() { random.Weibull(g, state, true) },
		"irregular nested": func() { random.Weibull(g, state, [][]float64{{1, 2}, {3}}) },
	} {
		err := exceptions.TryCatch[*random.TypeConversionError](fn)
		require.NotNil(t, err, "case %q", name)
	}
	require.Equal(t, 0, g.NumNodes())
}

func TestLazyParameterPassThrough(t *testing.T) {
	g := graph.New("lazy")
	state := random.NewState(21)

	// An upstream lazy node used as a parameter becomes a dependency edge;
	// only its declared shape is consulted.
	rates := random.Uniform(g, state, 0.5, 2.0, random.WithSize(3, 1))
	node := random.Normal(g, state, 0.0, rates)
	require.Equal(t, []int{3, 1}, node.Shape().Dimensions)
	require.Contains(t, node.Inputs(), rates)

	op := node.Op().(*random.Operand)
	params := op.Params()
	require.Equal(t, "loc", params[0].Name)
	require.Equal(t, 0.0, params[0].Const)
	require.Same(t, rates, params[1].Input)
}

func TestChunksAndGPU(t *testing.T) {
	g := graph.New("hints")
	state := random.NewState(2)

	node := random.Uniform(g, state, 0.0, 1.0,
		random.WithSize(100, 100), random.WithChunks(10, 50), random.OnGPU())
	require.Equal(t, []int{10, 50}, node.Chunks())
	op := node.Op().(*random.Operand)
	require.True(t, op.GPU())
	require.Equal(t, []int{10, 50}, op.Chunks())

	// Hints default to absent.
	plain := random.Uniform(g, state, 0.0, 1.0, random.WithSize(100, 100))
	require.Empty(t, plain.Chunks())
	require.False(t, plain.Op().(*random.Operand).GPU())
}

func TestOperandDescription(t *testing.T) {
	g := graph.New("describe")
	state := random.NewState(1)
	node := random.Uniform(g, state, 0.0, 1.0, random.WithSize(10))
	op := node.Op().(*random.Operand)
	require.Equal(t, random.DistUniform, op.Distribution())
	require.Equal(t, "RandomUniform", op.OpName())
	require.Contains(t, op.String(), "low=0")
	require.Contains(t, node.String(), "(Float64)[10]")
	require.Equal(t, shapes.Make(dtypes.Float64, 10), op.Shape())
}

func TestConstAs(t *testing.T) {
	g := graph.New("const")
	state := random.NewState(1)
	node := random.Uniform(g, state, 0.5, 1.5, random.WithDType(dtypes.Float16), random.WithSize(2))
	op := node.Op().(*random.Operand)
	require.Equal(t, dtypes.Float16, op.DType())
	params := op.Params()
	require.Equal(t, float16.Fromfloat32(0.5), params[0].ConstAs(dtypes.Float16))
	require.Equal(t, float32(1.5), params[1].ConstAs(dtypes.Float32))
}
