package graph

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"

	"github.com/chunktensor/chunktensor/types/shapes"
)

// NodeId is a unique node id within a Graph.
type NodeId int

// InvalidNodeId indicates a node that failed to be created.
const InvalidNodeId = NodeId(-1)

// Op describes the operation a Node stands for. Concrete op types live in
// the packages that define operations (e.g. the random package's Operand);
// the graph only needs a name for dispatch and a description for printing.
type Op interface {
	// OpName identifies the kind of operation, e.g. "Input" or "RandomUniform".
	OpName() string

	// String prints a descriptive representation of the operation and its
	// static parameters.
	String() string
}

// inputOp is the graph's own op for declared inputs: it carries the
// registered array-like as an opaque payload for the executor.
type inputOp struct {
	value any
}

func (op *inputOp) OpName() string { return "Input" }
func (op *inputOp) String() string { return fmt.Sprintf("Input(%T)", op.value) }

// Node is a lazily-evaluated unit of the computation graph. It carries no
// data until the external scheduler executes it.
//
// Nodes are immutable once registered: shape, op and dependencies never
// change after construction.
type Node struct {
	graph      *Graph
	id         NodeId
	op         Op
	shape      shapes.Shape
	inputNodes []*Node
	chunks     []int
}

// Graph that holds this Node.
func (n *Node) Graph() *Graph {
	if n == nil {
		return nil
	}
	return n.graph
}

// Id is the unique id of this node within its Graph.
func (n *Node) Id() NodeId {
	if n == nil {
		return InvalidNodeId
	}
	return n.id
}

// Op of the node.
func (n *Node) Op() Op { return n.op }

// Shape of the Node's advertised output.
func (n *Node) Shape() shapes.Shape {
	if n == nil {
		return shapes.Shape{}
	}
	return n.shape
}

// DType of the node's shape.
func (n *Node) DType() dtypes.DType { return n.shape.DType }

// Rank of the node's shape.
func (n *Node) Rank() int { return n.shape.Rank() }

// IsScalar returns whether the node's shape is a scalar.
func (n *Node) IsScalar() bool { return n.shape.IsScalar() }

// Inputs are the nodes this node depends on, the edges of the graph.
func (n *Node) Inputs() []*Node { return n.inputNodes }

// Chunks is the user-requested chunk-size hint per dimension, or nil when the
// downstream graph layer should choose a default partitioning. Opaque here.
func (n *Node) Chunks() []int { return slices.Clone(n.chunks) }

// IsInput returns whether this node is a declared graph input.
func (n *Node) IsInput() bool {
	_, ok := n.op.(*inputOp)
	return ok
}

// InputValue returns the array-like payload registered for an input node, or
// nil for any other node kind.
func (n *Node) InputValue() any {
	if op, ok := n.op.(*inputOp); ok {
		return op.value
	}
	return nil
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	if n == nil {
		return "Node(nil)"
	}
	return fmt.Sprintf("%s -> %s", n.op, n.shape)
}
