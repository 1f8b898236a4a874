// Package dag provides directed-acyclic-graph operations over a workflow:
// structural validation, cycle detection, and the in-degree bookkeeping the
// runner's scheduler consumes directly.
package dag

import (
	"sort"

	"github.com/wovenflow/runtime/internal/schema"
)

// Graph is a validated view over a workflow's nodes and edges. Construct one
// with New and call Validate before handing it to the runner; the runner
// trusts a Graph it receives to already be acyclic and dangling-edge-free.
type Graph struct {
	nodes    []schema.Node
	edges    []schema.Edge
	byID     map[string]*schema.Node
	outEdges map[string][]schema.Edge
	inEdges  map[string][]schema.Edge
}

// New builds a Graph from a node and edge list. It does not validate; call
// Validate to check structural soundness before scheduling.
func New(nodes []schema.Node, edges []schema.Edge) *Graph {
	g := &Graph{
		nodes:    nodes,
		edges:    edges,
		byID:     make(map[string]*schema.Node, len(nodes)),
		outEdges: make(map[string][]schema.Edge, len(nodes)),
		inEdges:  make(map[string][]schema.Edge, len(nodes)),
	}
	for i := range g.nodes {
		g.byID[g.nodes[i].ID] = &g.nodes[i]
	}
	for _, e := range edges {
		g.outEdges[e.Source] = append(g.outEdges[e.Source], e)
		g.inEdges[e.Target] = append(g.inEdges[e.Target], e)
	}
	return g
}

// Validate checks the graph is non-empty, free of duplicate node IDs and
// dangling edges, has every node's type in the closed set, and is acyclic.
// Checks run in that order since later checks (cycle detection) assume the
// earlier ones already hold.
func (g *Graph) Validate() error {
	if len(g.nodes) == 0 {
		return ErrEmptyGraph
	}

	seen := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		if seen[n.ID] {
			return ErrDuplicateNode
		}
		seen[n.ID] = true
		if !n.Type.IsValid() {
			return schema.ErrUnknownNodeType(n.Type)
		}
	}

	for _, e := range g.edges {
		if _, ok := g.byID[e.Source]; !ok {
			return &DanglingEdgeError{EdgeID: e.ID, Endpoint: "source", NodeID: e.Source}
		}
		if _, ok := g.byID[e.Target]; !ok {
			return &DanglingEdgeError{EdgeID: e.ID, Endpoint: "target", NodeID: e.Target}
		}
	}

	if err := g.DetectCycle(); err != nil {
		return err
	}

	return nil
}

// GetNode retrieves a node by ID, or nil if it doesn't exist.
func (g *Graph) GetNode(nodeID string) *schema.Node {
	return g.byID[nodeID]
}

// Nodes returns the graph's nodes in their original declaration order.
func (g *Graph) Nodes() []schema.Node {
	return g.nodes
}

// InputEdges returns all edges where nodeID is the target.
func (g *Graph) InputEdges(nodeID string) []schema.Edge {
	return g.inEdges[nodeID]
}

// OutputEdges returns all edges where nodeID is the source.
func (g *Graph) OutputEdges(nodeID string) []schema.Edge {
	return g.outEdges[nodeID]
}

// InDegrees returns the initial in-degree (number of incoming edges) of
// every node, keyed by node ID. The runner's scheduler owns a mutable copy
// of this map and decrements it as nodes complete.
func (g *Graph) InDegrees() map[string]int {
	deg := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		deg[n.ID] = 0
	}
	for _, e := range g.edges {
		deg[e.Target]++
	}
	return deg
}

// ReadyNodes returns the IDs of nodes with zero in-degree, sorted for
// deterministic iteration order. This is the scheduler's initial ready set.
func (g *Graph) ReadyNodes() []string {
	deg := g.InDegrees()
	ready := make([]string, 0, len(g.nodes))
	for id, d := range deg {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)
	return ready
}

// GetTerminalNodes returns the IDs of nodes with no outgoing edges. Used as
// the fallback result selection when a workflow declares no output nodes.
func (g *Graph) GetTerminalNodes() []string {
	terminal := make(map[string]bool, len(g.nodes))
	for _, n := range g.nodes {
		terminal[n.ID] = true
	}
	for _, e := range g.edges {
		terminal[e.Source] = false
	}
	result := make([]string, 0, len(terminal))
	for id, isTerminal := range terminal {
		if isTerminal {
			result = append(result, id)
		}
	}
	sort.Strings(result)
	return result
}

// TopologicalSort performs Kahn's algorithm and returns a valid sequential
// execution order. Neither the runner (it tracks in-degree directly to
// dispatch ready batches concurrently) nor Validate calls it; it is a
// deterministic ordering helper exercised by tests.
func (g *Graph) TopologicalSort() ([]string, error) {
	if len(g.nodes) == 0 {
		return []string{}, nil
	}

	inDegree := g.InDegrees()
	queue := g.ReadyNodes()
	order := make([]string, 0, len(g.nodes))

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		order = append(order, current)

		next := make([]string, 0)
		for _, e := range g.outEdges[current] {
			inDegree[e.Target]--
			if inDegree[e.Target] == 0 {
				next = append(next, e.Target)
			}
		}
		sort.Strings(next)
		queue = append(queue, next...)
	}

	if len(order) != len(g.nodes) {
		if cycleErr := g.DetectCycle(); cycleErr != nil {
			return nil, cycleErr
		}
		return nil, ErrCycleDetected
	}

	return order, nil
}

// DetectCycle runs a DFS with an explicit recursion stack to find a cycle,
// if one exists, and reports its exact path. Unlike TopologicalSort's
// leftover-node check, this identifies which nodes actually form the cycle,
// which the validator surfaces to the caller as a precise error.
func (g *Graph) DetectCycle() error {
	const (
		white = 0 // unvisited
		gray  = 1 // on the current recursion stack
		black = 2 // fully explored
	)

	color := make(map[string]int, len(g.nodes))
	for _, n := range g.nodes {
		color[n.ID] = white
	}

	// Visit nodes in a stable order so the reported cycle is deterministic.
	ids := make([]string, 0, len(g.nodes))
	for _, n := range g.nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	var stack []string
	var visit func(id string) error
	visit = func(id string) error {
		color[id] = gray
		stack = append(stack, id)

		neighbors := make([]string, 0, len(g.outEdges[id]))
		for _, e := range g.outEdges[id] {
			neighbors = append(neighbors, e.Target)
		}
		sort.Strings(neighbors)

		for _, next := range neighbors {
			switch color[next] {
			case white:
				if err := visit(next); err != nil {
					return err
				}
			case gray:
				// Found the back edge; trim the stack to the cycle itself.
				start := 0
				for i, v := range stack {
					if v == next {
						start = i
						break
					}
				}
				path := append([]string{}, stack[start:]...)
				path = append(path, next)
				return &CycleError{Path: path}
			}
		}

		stack = stack[:len(stack)-1]
		color[id] = black
		return nil
	}

	for _, id := range ids {
		if color[id] == white {
			if err := visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}
