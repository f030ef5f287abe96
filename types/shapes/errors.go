package shapes

import "fmt"

// InvalidShapeError reports a malformed size or shape specification, for
// example a negative dimension. It is thrown (panicked) at graph-building
// time; recover it with exceptions.TryFor.
type InvalidShapeError struct {
	Dimensions []int
	Reason     string
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("invalid shape %v: %s", e.Dimensions, e.Reason)
}

// BroadcastShapeError reports that two shapes cannot be broadcast together
// under NumPy rules: at some axis both dimensions differ and neither is 1.
type BroadcastShapeError struct {
	Lhs, Rhs []int
}

func (e *BroadcastShapeError) Error() string {
	return fmt.Sprintf("shapes %v and %v cannot be broadcast together", e.Lhs, e.Rhs)
}
