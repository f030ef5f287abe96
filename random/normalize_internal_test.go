package random

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/chunktensor/chunktensor/graph"
	"github.com/chunktensor/chunktensor/types/shapes"
)

func TestNormalizeParam(t *testing.T) {
	p := normalizeParam("low", 0.5)
	require.True(t, p.isConstant())
	require.True(t, p.shape.IsScalar())
	require.Equal(t, dtypes.Float64, p.shape.DType)

	p = normalizeParam("low", int32(3))
	require.Equal(t, dtypes.Int32, p.shape.DType)

	p = normalizeParam("a", [][]float32{{1, 2, 3}, {4, 5, 6}})
	require.False(t, p.isConstant())
	require.Equal(t, shapes.Make(dtypes.Float32, 2, 3), p.shape)
	require.NotNil(t, p.array)
	require.Nil(t, p.node)

	// Empty slices still resolve dtype and shape from the static type.
	p = normalizeParam("a", []float64{})
	require.Equal(t, shapes.Make(dtypes.Float64, 0), p.shape)

	// Lazy nodes pass through with only their declared shape read.
	g := graph.New("normalize")
	node := g.Input([]float64{1, 2}, shapes.Make(dtypes.Float64, 2), "k")
	p = normalizeParam("a", node)
	require.Same(t, node, p.node)
	require.Equal(t, shapes.Make(dtypes.Float64, 2), p.shape)

	err := exceptions.TryCatch[*TypeConversionError](func() {
		normalizeParam("a", map[string]int{})
	})
	require.NotNil(t, err)
	require.Equal(t, "a", err.Param)
}

func TestRepresentativeAndWalk(t *testing.T) {
	var seen []float64
	forEachConcreteValue(normalizeParam("a", [][]int{{1, 2}, {3, 4}}), func(v float64) {
		seen = append(seen, v)
	})
	require.Equal(t, []float64{1, 2, 3, 4}, seen)

	require.Equal(t, 1.0, representative(normalizeParam("a", [][]int{{1, 2}, {3, 4}})))
	require.Equal(t, 2.5, representative(normalizeParam("a", 2.5)))
	require.Equal(t, 0.0, representative(normalizeParam("a", []float64{})))
}

func TestProbeDTypePerFamily(t *testing.T) {
	for dist, want := range map[Distribution]dtypes.DType{
		DistUniform:      dtypes.Float64,
		DistWeibull:      dtypes.Float64,
		DistNormal:       dtypes.Float64,
		DistLogNormal:    dtypes.Float64,
		DistExponential:  dtypes.Float64,
		DistGamma:        dtypes.Float64,
		DistBeta:         dtypes.Float64,
		DistChiSquare:    dtypes.Float64,
		DistPareto:       dtypes.Float64,
		DistRandomSample: dtypes.Float64,
		DistPoisson:      dtypes.Int64,
		DistBinomial:     dtypes.Int64,
		DistRandInt:      dtypes.Int64,
	} {
		spec := distSpecs[dist]
		ps := make([]paramValue, len(spec.params))
		for ii, name := range spec.params {
			ps[ii] = normalizeParam(name, 1.0)
		}
		require.Equal(t, want, probeDType(spec, ps), "distribution %s", dist)
	}
}

func TestSampleKernelDrawsTypedSamples(t *testing.T) {
	src := rand.NewSource(1)
	got := SampleKernel(DistUniform, src, []float64{10, 11}, 5).([]float64)
	require.Len(t, got, 5)
	for _, v := range got {
		require.GreaterOrEqual(t, v, 10.0)
		require.Less(t, v, 11.0)
	}

	ints := SampleKernel(DistRandInt, src, []float64{5, 7}, 8).([]int64)
	require.Len(t, ints, 8)
	for _, v := range ints {
		require.GreaterOrEqual(t, v, int64(5))
		require.Less(t, v, int64(7))
	}

	// Zero-size draws produce empty, correctly typed slices and consume
	// nothing from the source.
	require.Empty(t, SampleKernel(DistBinomial, src, []float64{10, 0.5}, 0).([]int64))
	require.Empty(t, SampleKernel(DistWeibull, src, []float64{5}, 0).([]float64))
}

func TestFingerprintDistinguishesOperands(t *testing.T) {
	g := graph.New("fingerprint")
	state := NewState(4)
	n1 := Uniform(g, state, 0.0, 1.0, WithSize(10))
	n2 := Uniform(g, state, 0.0, 2.0, WithSize(10))
	n3 := Uniform(g, state, 0.0, 1.0, WithSize(10), OnGPU())
	op1 := n1.Op().(*Operand)
	op2 := n2.Op().(*Operand)
	op3 := n3.Op().(*Operand)
	require.NotEqual(t, op1.fingerprint(), op2.fingerprint())
	require.NotEqual(t, op1.fingerprint(), op3.fingerprint())
	require.False(t, op1.Equal(op2))
	require.Equal(t, op1.fingerprint(), op1.fingerprint())

	// Same printed value, different Go type: fingerprints must differ,
	// matching what Equal already says about the two operands.
	n4 := Uniform(g, state, float32(0.1), 1.0, WithSize(10))
	n5 := Uniform(g, state, 0.1, 1.0, WithSize(10))
	op4 := n4.Op().(*Operand)
	op5 := n5.Op().(*Operand)
	require.NotEqual(t, op4.fingerprint(), op5.fingerprint())
	require.False(t, op4.Equal(op5))
}
