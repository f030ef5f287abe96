package random

import (
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"golang.org/x/exp/rand"

	"github.com/chunktensor/chunktensor/graph"
	"github.com/chunktensor/chunktensor/types/shapes"
)

// Distribution tags the closed set of supported distribution families. Each
// tag carries its own parameter schema, domain validation and sampling kernel
// in distSpecs; all of them are dispatched through the one shared
// construction routine in core.go.
type Distribution int

const (
	DistInvalid Distribution = iota
	DistUniform
	DistWeibull
	DistNormal
	DistLogNormal
	DistExponential
	DistGamma
	DistBeta
	DistChiSquare
	DistPareto
	DistRandomSample
	DistPoisson
	DistBinomial
	DistRandInt
)

// String implements fmt.Stringer.
func (d Distribution) String() string {
	if spec, found := distSpecs[d]; found {
		return spec.name
	}
	return fmt.Sprintf("Distribution(%d)", int(d))
}

// distSpec is the schema of one distribution family.
type distSpec struct {
	name string

	// params are the ordered parameter names of the public signature.
	params []string

	// validate checks distribution-specific domain constraints on concrete
	// parameter values, throwing *ParameterDomainError. nil means no
	// constraints.
	validate func(dist Distribution, ps []paramValue)

	// sample is the eager kernel, also used at n=0 by the dtype probe.
	sample func(src rand.Source, params []float64, n int) any
}

var distSpecs = map[Distribution]*distSpec{
	// Uniform deliberately has no high/low ordering check: the result for
	// high < low is documented as undefined and left to the execution layer.
	DistUniform:      {name: "Uniform", params: []string{"low", "high"}, sample: sampleUniform},
	DistWeibull:      {name: "Weibull", params: []string{"a"}, validate: checks(positive(0)), sample: sampleWeibull},
	DistNormal:       {name: "Normal", params: []string{"loc", "scale"}, validate: checks(nonNegative(1)), sample: sampleNormal},
	DistLogNormal:    {name: "LogNormal", params: []string{"mean", "sigma"}, validate: checks(nonNegative(1)), sample: sampleLogNormal},
	DistExponential:  {name: "Exponential", params: []string{"scale"}, validate: checks(positive(0)), sample: sampleExponential},
	DistGamma:        {name: "Gamma", params: []string{"shape", "scale"}, validate: checks(positive(0), positive(1)), sample: sampleGamma},
	DistBeta:         {name: "Beta", params: []string{"a", "b"}, validate: checks(positive(0), positive(1)), sample: sampleBeta},
	DistChiSquare:    {name: "ChiSquare", params: []string{"df"}, validate: checks(positive(0)), sample: sampleChiSquare},
	DistPareto:       {name: "Pareto", params: []string{"a"}, validate: checks(positive(0)), sample: samplePareto},
	DistRandomSample: {name: "RandomSample", sample: sampleRandomSample},
	DistPoisson:      {name: "Poisson", params: []string{"lam"}, validate: checks(nonNegative(0)), sample: samplePoisson},
	DistBinomial:     {name: "Binomial", params: []string{"n", "p"}, validate: checks(nonNegative(0), probability(1)), sample: sampleBinomial},
	DistRandInt:      {name: "RandInt", params: []string{"low", "high"}, validate: validateRandInt, sample: sampleRandInt},
}

// paramCheck is an element-wise domain constraint on one parameter.
type paramCheck struct {
	index      int
	constraint string
	ok         func(v float64) bool
}

func positive(index int) paramCheck {
	return paramCheck{index: index, constraint: "> 0", ok: func(v float64) bool { return v > 0 }}
}

func nonNegative(index int) paramCheck {
	return paramCheck{index: index, constraint: ">= 0", ok: func(v float64) bool { return v >= 0 }}
}

func probability(index int) paramCheck {
	return paramCheck{index: index, constraint: "in [0, 1]", ok: func(v float64) bool { return v >= 0 && v <= 1 }}
}

// checks combines element-wise constraints into a validate function. Only
// concrete values are checked: lazy node parameters have nothing to inspect
// at construction time.
func checks(cs ...paramCheck) func(Distribution, []paramValue) {
	return func(dist Distribution, ps []paramValue) {
		for _, c := range cs {
			p := ps[c.index]
			forEachConcreteValue(p, func(v float64) {
				if !c.ok(v) {
					panic(&ParameterDomainError{
						Distribution: dist,
						Param:        p.name,
						Value:        v,
						Constraint:   c.constraint,
					})
				}
			})
		}
	}
}

// validateRandInt requires low < high when both bounds are concrete scalars;
// array or lazy bounds are checked element-wise at execution time.
func validateRandInt(dist Distribution, ps []paramValue) {
	low, high := ps[0], ps[1]
	if !low.isConstant() || !high.isConstant() {
		return
	}
	lowV := representative(low)
	if lowV >= representative(high) {
		panic(&ParameterDomainError{
			Distribution: dist,
			Param:        low.name,
			Value:        lowV,
			Constraint:   "< high",
		})
	}
}

// Param is one named entry of an operand's parameter list: either a scalar
// constant embedded in the operand (Const set, kept at the caller's Go type;
// see ConstAs for casting) or a reference to a registered graph input (Input
// set). Const stays uncast because a parameter's domain is independent of
// the output dtype: Binomial's p lives in [0, 1] even when the output is an
// integer type.
type Param struct {
	Name  string
	Const any
	Input *graph.Node
}

// Operand is the immutable descriptor of a single distribution-sampling
// operation before execution. It is created inside a public distribution
// function, consumed by the graph node constructor to produce exactly one
// lazy node, and owned by that node from then on.
//
// It implements graph.Op.
type Operand struct {
	dist     Distribution
	shape    shapes.Shape
	chunks   []int
	gpu      bool
	params   []Param
	stateRef StateRef
}

// Distribution family of the operand.
func (op *Operand) Distribution() Distribution { return op.dist }

// Shape is the resolved output shape. Never ambiguous: by the time the
// operand exists, a deferred size has already been resolved to the broadcast
// of its parameters, and the dtype is always set.
func (op *Operand) Shape() shapes.Shape { return op.shape }

// DType of the output.
func (op *Operand) DType() dtypes.DType { return op.shape.DType }

// GPU is the device hint; false by default.
func (op *Operand) GPU() bool { return op.gpu }

// Chunks is the pass-through chunk-size hint, nil when absent.
func (op *Operand) Chunks() []int { return slices.Clone(op.chunks) }

// Params returns the ordered named parameters.
func (op *Operand) Params() []Param { return slices.Clone(op.params) }

// StateRef is the reproducible random-state handle to draw from at
// execution time.
func (op *Operand) StateRef() StateRef { return op.stateRef }

// OpName implements graph.Op.
func (op *Operand) OpName() string { return "Random" + distSpecs[op.dist].name }

// String implements graph.Op and fmt.Stringer.
func (op *Operand) String() string {
	parts := make([]string, 0, len(op.params))
	for _, p := range op.params {
		if p.Input != nil {
			parts = append(parts, fmt.Sprintf("%s=#%d", p.Name, p.Input.Id()))
		} else {
			parts = append(parts, fmt.Sprintf("%s=%v", p.Name, p.Const))
		}
	}
	return fmt.Sprintf("%s(%s)", op.dist, strings.Join(parts, ", "))
}

// Equal reports field-wise value equality of two operands. Parameters
// referencing inputs compare by node identity, which itself is value-driven
// (value-equal array-likes dedupe to the same input node).
func (op *Operand) Equal(other *Operand) bool {
	if op == nil || other == nil {
		return op == other
	}
	if op.dist != other.dist || !op.shape.Equal(other.shape) ||
		op.gpu != other.gpu || op.stateRef != other.stateRef ||
		!slices.Equal(op.chunks, other.chunks) ||
		len(op.params) != len(other.params) {
		return false
	}
	for ii, p := range op.params {
		q := other.params[ii]
		if p.Name != q.Name || p.Input != q.Input || !reflect.DeepEqual(p.Const, q.Const) {
			return false
		}
	}
	return true
}

// fingerprint is the cache key establishing graph-node identity: operands
// with equal fingerprints are eligible for node reuse.
func (op *Operand) fingerprint() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%s|%s|gpu=%v|chunks=%v|state=%x", op.OpName(), op.shape, op.gpu, op.chunks, op.stateRef)
	for _, p := range op.params {
		if p.Input != nil {
			_, _ = fmt.Fprintf(&sb, "|%s=#%d", p.Name, p.Input.Id())
		} else {
			// Constants are kept at their original Go type, so the type is
			// part of the identity: float32(0.1) and float64(0.1) print the
			// same but are different values once cast for execution.
			_, _ = fmt.Fprintf(&sb, "|%s=%T(%v)", p.Name, p.Const, p.Const)
		}
	}
	return sb.String()
}
