package dag

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wovenflow/runtime/internal/schema"
)

// randomDAG builds a graph over n nodes ("na", "nb", ...) with an edge from
// node i to node j only when i < j, for every (i, j) flagged true in bits —
// guaranteeing the generated graph is acyclic by construction.
func randomDAG(n int, bits []bool) *Graph {
	nodes := make([]schema.Node, n)
	for i := 0; i < n; i++ {
		nodes[i] = numNode(nodeID(i))
	}

	var edges []schema.Edge
	idx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if idx < len(bits) && bits[idx] {
				edges = append(edges, schema.Edge{
					ID:     nodeID(i) + "-" + nodeID(j),
					Source: nodeID(i),
					Target: nodeID(j),
				})
			}
			idx++
		}
	}
	return New(nodes, edges)
}

func nodeID(i int) string {
	return "n" + string(rune('a'+i))
}

// TestTopologicalSortProperty checks that, for any acyclic graph built this
// way, TopologicalSort always produces a permutation of every node where
// each edge's source precedes its target — the ordering guarantee the
// runner's scheduler relies on indirectly via InDegrees/ReadyNodes.
func TestTopologicalSortProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	const n = 6
	numPairs := n * (n - 1) / 2

	properties.Property("topological order respects every edge", prop.ForAll(
		func(bits []bool) bool {
			g := randomDAG(n, bits)
			order, err := g.TopologicalSort()
			if err != nil {
				return false
			}
			if len(order) != n {
				return false
			}
			position := make(map[string]int, n)
			for i, id := range order {
				position[id] = i
			}
			for _, e := range g.edges {
				if position[e.Source] >= position[e.Target] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(numPairs, gen.Bool()),
	))

	properties.TestingRun(t)
}
