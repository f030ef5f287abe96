// Package shapes defines Shape and associated tools.
//
// A Shape represents the logical form of a lazy tensor: its element type
// (DType, from github.com/gomlx/gopjrt/dtypes) and its dimensions. Shapes are
// resolved at graph-building time, before any data exists, so all validation
// here is about declared geometry, never about values.
//
// Dimensions of size zero are legal: zero-size shapes are how dtype probing
// runs the real numeric machinery without materializing data.
//
// Glossary:
//   - Rank: number of axes of a tensor.
//   - Scalar: a shape with no axes (rank 0), a single value of the DType.
//   - Broadcast: NumPy-style shape compatibility, where axes of dimension 1
//     stretch to match any dimension. See Broadcast and BroadcastDimensions.
package shapes

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
)

// Shape of either a concrete tensor or the declared output of a lazy graph
// node. Use Make to create one.
type Shape struct {
	DType      dtypes.DType
	Dimensions []int
}

// HasShape is anything that can report its own Shape. Both Shape itself and
// graph nodes implement it.
type HasShape interface {
	Shape() Shape
}

// Make returns a Shape with the given dtype and dimensions.
//
// Dimensions must be non-negative -- zero is allowed, negative panics with an
// *InvalidShapeError.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	s := Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
	for _, dim := range dimensions {
		if dim < 0 {
			panic(&InvalidShapeError{
				Dimensions: slices.Clone(dimensions),
				Reason:     fmt.Sprintf("axis dimension %d is negative", dim),
			})
		}
	}
	return s
}

// Scalar returns a rank-0 Shape for the given Go type.
func Scalar[T dtypes.Supported]() Shape {
	return Shape{DType: dtypes.FromGenericsType[T]()}
}

// Invalid returns an invalid Shape: Invalid().Ok() == false.
func Invalid() Shape { return Shape{DType: dtypes.InvalidDType} }

// Ok returns whether this is a valid Shape. The zero value Shape{} is not.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, the number of axes.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsScalar returns whether the shape has rank 0.
func (s Shape) IsScalar() bool { return s.Ok() && s.Rank() == 0 }

// Dim returns the dimension of the given axis. Negative axes count from the
// end, so Dim(-1) is the last axis. Out-of-bounds axes panic.
func (s Shape) Dim(axis int) int {
	adjusted := axis
	if adjusted < 0 {
		adjusted += s.Rank()
	}
	if adjusted < 0 || adjusted >= s.Rank() {
		panic(&InvalidShapeError{
			Dimensions: slices.Clone(s.Dimensions),
			Reason:     fmt.Sprintf("axis %d out-of-bounds for rank %d", axis, s.Rank()),
		})
	}
	return s.Dimensions[adjusted]
}

// Shape returns itself. It implements the HasShape interface.
func (s Shape) Shape() Shape { return s }

// Size is the total number of elements, the product of all dimensions.
// A scalar has size 1; any zero dimension makes the size 0.
func (s Shape) Size() int {
	size := 1
	for _, dim := range s.Dimensions {
		size *= dim
	}
	return size
}

// Memory is the number of bytes needed to materialize the shape.
func (s Shape) Memory() uintptr {
	return s.DType.Memory() * uintptr(s.Size())
}

// Equal compares dtype and dimensions.
func (s Shape) Equal(other Shape) bool {
	return s.DType == other.DType && slices.Equal(s.Dimensions, other.Dimensions)
}

// EqualDimensions compares dimensions only, ignoring dtypes.
func (s Shape) EqualDimensions(other Shape) bool {
	return slices.Equal(s.Dimensions, other.Dimensions)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	return Shape{DType: s.DType, Dimensions: slices.Clone(s.Dimensions)}
}

// WithDType returns a copy of the shape with the dtype replaced.
func (s Shape) WithDType(dtype dtypes.DType) Shape {
	s2 := s.Clone()
	s2.DType = dtype
	return s2
}

// String implements fmt.Stringer, pretty-printing as "(dtype)[dims]".
func (s Shape) String() string {
	if !s.Ok() {
		return "(invalid)"
	}
	if s.IsScalar() {
		return fmt.Sprintf("(%s)", s.DType)
	}
	return fmt.Sprintf("(%s)%v", s.DType, s.Dimensions)
}
