// Package graph holds the lazy computation graph that chunktensor operations
// build into.
//
// A Graph is a collection of Nodes. Nothing is computed while a graph is
// being built: each Node only declares the operation it stands for (an Op),
// the Shape of its eventual output and its data dependencies. Partitioning
// the nodes into chunks and actually executing them belongs to the scheduler,
// not to this package.
//
// Graph building is safe to call from multiple goroutines: registration of
// nodes and inputs is guarded by a per-graph mutex, and all other state of a
// construction call is local to that call.
//
// Shape incompatibilities and other construction errors are reported by
// panicking with typed errors (see types/shapes), following the
// github.com/gomlx/exceptions discipline: recover them at the end of graph
// building with exceptions.Try or exceptions.TryFor.
package graph

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/gomlx/exceptions"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/chunktensor/chunktensor/types/shapes"
)

// Graph with the lazy nodes built so far. Create one with New.
type Graph struct {
	name string

	mu    sync.Mutex
	nodes []*Node

	// inputByKey dedupes value-equal input registrations, so that two
	// operations parameterized by equal array-likes share the same input
	// node (a precondition for operation-level node reuse).
	inputByKey map[string]*Node

	// nodeByKey maps operation fingerprints to already-built nodes.
	nodeByKey map[string]*Node
}

// New creates an empty Graph. If name is empty a unique one is generated.
func New(name string) *Graph {
	if name == "" {
		name = "graph-" + uuid.NewString()[:8]
	}
	return &Graph{
		name:       name,
		inputByKey: make(map[string]*Node),
		nodeByKey:  make(map[string]*Node),
	}
}

// Name of the graph, set at construction.
func (g *Graph) Name() string { return g.name }

// NumNodes returns the number of nodes registered so far.
func (g *Graph) NumNodes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// NodeById returns the node with the given id, or nil if out of range.
func (g *Graph) NodeById(id NodeId) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Inputs returns the input nodes of the graph, in registration order.
func (g *Graph) Inputs() []*Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	inputs := make([]*Node, 0, len(g.inputByKey))
	for _, node := range g.nodes {
		if node.IsInput() {
			inputs = append(inputs, node)
		}
	}
	return inputs
}

// Input registers value as a declared input of the graph, with the given
// declared shape, and returns its node. The value itself is kept as an opaque
// payload for the executor; it is never copied or materialized here.
//
// cacheKey identifies value-equal inputs: registering the same key twice
// returns the same node. An empty cacheKey always registers a fresh node.
func (g *Graph) Input(value any, shape shapes.Shape, cacheKey string) *Node {
	g.mu.Lock()
	defer g.mu.Unlock()
	if cacheKey != "" {
		if node, found := g.inputByKey[cacheKey]; found {
			return node
		}
	}
	node := g.registerNode(&inputOp{value: value}, shape, nil, nil)
	if cacheKey != "" {
		g.inputByKey[cacheKey] = node
	}
	return node
}

// NewNode registers a lazy node for op with the given declared output shape,
// dependency edges and optional chunk-size hint.
//
// cacheKey, if not empty, is the fingerprint of the operation: when a node
// with the same fingerprint was already built, that node is returned and no
// new one is created. This is what makes value-equal operations share graph
// node identity.
func (g *Graph) NewNode(op Op, shape shapes.Shape, inputs []*Node, chunks []int, cacheKey string) *Node {
	for _, input := range inputs {
		if input.Graph() != g {
			exceptions.Panicf("input node %s belongs to graph %q, not to graph %q", input, input.Graph().Name(), g.name)
		}
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if cacheKey != "" {
		if node, found := g.nodeByKey[cacheKey]; found {
			return node
		}
	}
	node := g.registerNode(op, shape, inputs, chunks)
	if cacheKey != "" {
		g.nodeByKey[cacheKey] = node
	}
	return node
}

// registerNode appends the node. Callers must hold g.mu.
func (g *Graph) registerNode(op Op, shape shapes.Shape, inputs []*Node, chunks []int) *Node {
	node := &Node{
		graph:      g,
		id:         NodeId(len(g.nodes)),
		op:         op,
		shape:      shape,
		inputNodes: inputs,
		chunks:     chunks,
	}
	g.nodes = append(g.nodes, node)
	if klog.V(2).Enabled() {
		klog.Infof("graph %q: registered node #%d %s", g.name, node.id, node)
	}
	return node
}

// String returns a multi-line summary of the graph, with the memory each
// node's output would take once materialized.
func (g *Graph) String() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Graph %q: %d nodes\n", g.name, len(g.nodes))
	for _, node := range g.nodes {
		_, _ = fmt.Fprintf(&sb, "\t#%d\t%s\t[%s]\n", node.id, node,
			humanize.Bytes(uint64(node.shape.Memory())))
	}
	return sb.String()
}
