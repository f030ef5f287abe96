package random

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"

	"github.com/chunktensor/chunktensor/graph"
	"github.com/chunktensor/chunktensor/types/shapes"
)

// paramValue is the canonical view of one distribution parameter after
// normalization: a scalar constant, a concrete array-like, or a lazy upstream
// node. Exactly one of scalar, array and node is set.
//
// Normalization never copies or materializes data: for concrete array-likes
// only the declared geometry is probed and the original value kept as an
// opaque reference; for lazy nodes only their declared shape is read.
type paramValue struct {
	name   string
	shape  shapes.Shape
	scalar any
	array  any
	node   *graph.Node
}

func (p *paramValue) isConstant() bool { return p.scalar != nil }

// inputKey fingerprints a concrete array-like by value, so that value-equal
// parameters resolve to the same graph input node.
func (p *paramValue) inputKey() string {
	return fmt.Sprintf("%s|%v", p.shape, p.array)
}

// normalizeParam converts a parameter of unknown type -- a Go numeric scalar,
// a (possibly nested) slice, or a *graph.Node -- into its canonical form.
// It panics with a *TypeConversionError if value is not numeric array-like.
func normalizeParam(name string, value any) paramValue {
	if value == nil {
		panic(&TypeConversionError{Param: name, Value: value, Reason: "value is nil"})
	}
	if node, ok := value.(*graph.Node); ok {
		// Already-lazy upstream tensor: passed through unmaterialized.
		return paramValue{name: name, shape: node.Shape(), node: node}
	}
	shape := shapes.Shape{}
	probeValueShape(name, value, &shape, reflect.ValueOf(value))
	if shape.IsScalar() {
		return paramValue{name: name, shape: shape, scalar: value}
	}
	return paramValue{name: name, shape: shape, array: value}
}

// probeValueShape walks nested slices collecting dimensions and the element
// dtype, without copying data. Sub-slices must be regular: every sibling has
// to produce the same sub-shape.
func probeValueShape(name string, root any, shape *shapes.Shape, v reflect.Value) {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		panic(&TypeConversionError{Param: name, Value: root, Reason: "contains a nil element"})
	}
	if v.Kind() != reflect.Slice {
		dtype := numericDType(v.Type())
		if dtype == dtypes.InvalidDType {
			panic(&TypeConversionError{Param: name, Value: root,
				Reason: fmt.Sprintf("element type %s is not numeric", v.Type())})
		}
		shape.DType = dtype
		return
	}

	shape.Dimensions = append(shape.Dimensions, v.Len())
	if v.Len() == 0 {
		// Zero-size axis: the element dtype must be decidable from the
		// static type alone.
		elem := v.Type().Elem()
		for elem.Kind() == reflect.Slice {
			shape.Dimensions = append(shape.Dimensions, 0)
			elem = elem.Elem()
		}
		dtype := numericDType(elem)
		if dtype == dtypes.InvalidDType {
			panic(&TypeConversionError{Param: name, Value: root,
				Reason: fmt.Sprintf("cannot infer a numeric dtype for empty %s", v.Type())})
		}
		shape.DType = dtype
		return
	}

	prefix := len(shape.Dimensions)
	probeValueShape(name, root, shape, v.Index(0))
	for ii := 1; ii < v.Len(); ii++ {
		sibling := shapes.Shape{Dimensions: slices.Clone(shape.Dimensions[:prefix])}
		probeValueShape(name, root, &sibling, v.Index(ii))
		if !sibling.Equal(*shape) {
			panic(&TypeConversionError{Param: name, Value: root,
				Reason: fmt.Sprintf("nested slices are irregular: found sub-shapes %s and %s", shape, sibling)})
		}
	}
}

// numericDType maps a Go type to its dtype, rejecting non-numeric types
// (bool included: it is not a valid distribution parameter).
func numericDType(t reflect.Type) dtypes.DType {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return dtypes.FromGoType(t)
	}
	return dtypes.InvalidDType
}

// floatOf converts any numeric reflect value to float64, for domain checks
// and probe representatives. Complex values contribute their real part.
func floatOf(v reflect.Value) float64 {
	switch {
	case v.CanFloat():
		return v.Float()
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	case v.CanComplex():
		return real(v.Complex())
	}
	return 0
}

// forEachConcreteValue calls fn on every concrete element of the parameter.
// Lazy node parameters have no concrete elements and are skipped.
func forEachConcreteValue(p paramValue, fn func(v float64)) {
	if p.scalar != nil {
		fn(floatOf(reflect.ValueOf(p.scalar)))
		return
	}
	if p.array == nil {
		return
	}
	var walk func(v reflect.Value)
	walk = func(v reflect.Value) {
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if v.Kind() == reflect.Slice {
			for ii := 0; ii < v.Len(); ii++ {
				walk(v.Index(ii))
			}
			return
		}
		fn(floatOf(v))
	}
	walk(reflect.ValueOf(p.array))
}

// representative returns one concrete value of the parameter for the
// zero-size dtype probe, where values are irrelevant but a well-typed
// argument is still needed. Lazy or empty parameters contribute zero.
func representative(p paramValue) float64 {
	found := false
	rep := 0.0
	forEachConcreteValue(p, func(v float64) {
		if !found {
			rep = v
			found = true
		}
	})
	return rep
}
