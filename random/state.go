package random

import (
	"slices"
	"time"

	"golang.org/x/exp/rand"

	"github.com/chunktensor/chunktensor/types/shapes"
)

// StateRef is the opaque, reproducible random-state handle an Operand draws
// from at execution time. It is a plain comparable value: two operands built
// from the same State carry equal refs, which is what makes re-chunked
// re-execution reproduce the single-machine stream.
type StateRef [3]uint64

// State is the random-state collaborator handed to the public distribution
// functions. It never draws numbers during graph building; construction only
// reads its handle.
type State struct {
	ref StateRef
}

// NewState creates a State deterministically derived from seed.
func NewState(seed int64) *State {
	rng := rand.New(rand.NewSource(uint64(seed)))
	s := &State{}
	for ii := range s.ref {
		s.ref[ii] = rng.Uint64()
	}
	return s
}

// New creates a State seeded from the nanosecond clock.
func New() *State {
	return NewState(time.Now().UTC().UnixNano())
}

// Ref returns the reproducible handle of this state.
func (s *State) Ref() StateRef { return s.ref }

// CanonicalSize normalizes a user output-size request into a canonical
// dimension list: CanonicalSize(n) means shape (n,), CanonicalSize(m, n)
// means (m, n), and CanonicalSize() a scalar. Dimensions must be
// non-negative; violations panic with a *shapes.InvalidShapeError.
//
// The absent-size case ("derive from the broadcast of the parameters") is not
// represented here: callers that want it simply never pass a size.
func (s *State) CanonicalSize(size ...int) []int {
	for _, dim := range size {
		if dim < 0 {
			panic(&shapes.InvalidShapeError{
				Dimensions: slices.Clone(size),
				Reason:     "size dimensions must be non-negative",
			})
		}
	}
	return slices.Clone(size)
}

// DeriveChunk deterministically derives an independent random source for the
// chunk with the given index. Chunks of the same operand get disjoint
// sub-streams, so re-partitioning a node never changes what it samples.
// Consumed by the execution layer; never used during graph building.
func (r StateRef) DeriveChunk(index int) rand.Source {
	const mix = 0x9e3779b97f4a7c15 // golden-ratio increment, splitmix64 style
	seed := r[0] ^ (r[1] + mix*(uint64(index)+1)) ^ (r[2] << 1)
	return rand.NewSource(seed)
}
