package shapes

import "slices"

// BroadcastDimensions returns the NumPy-style broadcast of two dimension
// lists. Ranks may differ: the shorter one is aligned to the right, missing
// leading axes behave as dimension 1. At each axis the dimensions must either
// match or one of them be 1; otherwise it panics with a *BroadcastShapeError.
//
// Examples: [3 1] x [1 4] -> [3 4]; [5] x [2 5] -> [2 5]; [2] x [3] panics.
func BroadcastDimensions(lhs, rhs []int) []int {
	rank := max(len(lhs), len(rhs))
	out := make([]int, rank)
	for axis := rank - 1; axis >= 0; axis-- {
		lhsDim, rhsDim := 1, 1
		if fromEnd := rank - 1 - axis; fromEnd < len(lhs) {
			lhsDim = lhs[len(lhs)-1-fromEnd]
		}
		if fromEnd := rank - 1 - axis; fromEnd < len(rhs) {
			rhsDim = rhs[len(rhs)-1-fromEnd]
		}
		if lhsDim != 1 && rhsDim != 1 && lhsDim != rhsDim {
			panic(&BroadcastShapeError{Lhs: slices.Clone(lhs), Rhs: slices.Clone(rhs)})
		}
		out[axis] = max(lhsDim, rhsDim)
	}
	return out
}

// Broadcast folds BroadcastDimensions over the dimensions of all the given
// shapes and returns the resulting dimension list. With no arguments it
// returns nil, the dimensions of a scalar.
//
// Only dimensions participate; dtypes are not promoted here.
func Broadcast(shapes ...Shape) []int {
	var dims []int
	for _, s := range shapes {
		dims = BroadcastDimensions(dims, s.Dimensions)
	}
	return dims
}
