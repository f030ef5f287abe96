package shapes

import (
	"reflect"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// CastAsDType casts a numeric Go value to the Go type backing the given
// DType. Slices are converted to newly allocated slices, recursively. Values
// already of the target type are returned unchanged.
//
// Float16 and BFloat16 have no native Go kind, so they are converted through
// float32 using github.com/x448/float16 and gopjrt's bfloat16.
//
// It panics if value is not numeric.
func CastAsDType(value any, dtype dtypes.DType) any {
	valueOf := reflect.ValueOf(value)
	if valueOf.Kind() == reflect.Slice {
		out := reflect.MakeSlice(sliceTypeForDType(valueOf.Type(), dtype), valueOf.Len(), valueOf.Len())
		for ii := 0; ii < valueOf.Len(); ii++ {
			elem := CastAsDType(valueOf.Index(ii).Interface(), dtype)
			out.Index(ii).Set(reflect.ValueOf(elem))
		}
		return out.Interface()
	}

	switch dtype {
	case dtypes.Float16:
		return float16.Fromfloat32(float32(valueOf.Convert(float64Type).Float()))
	case dtypes.BFloat16:
		return bfloat16.FromFloat32(float32(valueOf.Convert(float64Type).Float()))
	case dtypes.Bool:
		return !valueOf.IsZero()
	}
	return valueOf.Convert(goTypeForDType(dtype)).Interface()
}

var float64Type = reflect.TypeOf(float64(0))

func goTypeForDType(dtype dtypes.DType) reflect.Type {
	switch dtype {
	case dtypes.Int8:
		return reflect.TypeOf(int8(0))
	case dtypes.Int16:
		return reflect.TypeOf(int16(0))
	case dtypes.Int32:
		return reflect.TypeOf(int32(0))
	case dtypes.Int64:
		return reflect.TypeOf(int64(0))
	case dtypes.Uint8:
		return reflect.TypeOf(uint8(0))
	case dtypes.Uint16:
		return reflect.TypeOf(uint16(0))
	case dtypes.Uint32:
		return reflect.TypeOf(uint32(0))
	case dtypes.Uint64:
		return reflect.TypeOf(uint64(0))
	case dtypes.Float16:
		return reflect.TypeOf(float16.Float16(0))
	case dtypes.BFloat16:
		return reflect.TypeOf(bfloat16.BFloat16(0))
	case dtypes.Float32:
		return reflect.TypeOf(float32(0))
	case dtypes.Float64:
		return float64Type
	case dtypes.Complex64:
		return reflect.TypeOf(complex64(0))
	case dtypes.Complex128:
		return reflect.TypeOf(complex128(0))
	case dtypes.Bool:
		return reflect.TypeOf(false)
	}
	panic(errors.Errorf("dtype %s has no Go representation to cast to", dtype))
}

func sliceTypeForDType(valueType reflect.Type, dtype dtypes.DType) reflect.Type {
	if valueType.Kind() != reflect.Slice {
		return goTypeForDType(dtype)
	}
	return reflect.SliceOf(sliceTypeForDType(valueType.Elem(), dtype))
}
