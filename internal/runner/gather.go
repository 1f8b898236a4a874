package runner

import (
	"sort"

	"github.com/wovenflow/runtime/internal/schema"
)

// displayLabel returns a node's display label, falling back to its id when
// no label was set — the rule spec.md's fan-in section applies uniformly to
// both input-key selection and result-mapping selection.
func (r *Runner) displayLabel(nodeID string) string {
	if n := r.graph.GetNode(nodeID); n != nil && n.Label != "" {
		return n.Label
	}
	return nodeID
}

// gatherInput implements the runner's fan-in rule for dispatching nodeID:
//   - zero incoming edges: the execution's raw input record, unconditionally
//     — a root node is a root node regardless of its type, not just
//     input-kind nodes (those also get it pre-seeded into outputs, but any
//     other root-node type has nothing in outputs to fall back on)
//   - exactly one upstream: that upstream's output, verbatim
//   - multiple upstreams: a mapping keyed by each upstream's display label,
//     later insertion wins on key collision
//
// Edges are walked in a stable (sorted by source id) order so collisions
// resolve deterministically.
func (r *Runner) gatherInput(nodeID string) interface{} {
	edges := r.graph.InputEdges(nodeID)
	if len(edges) == 0 {
		return r.rawInput
	}
	if len(edges) == 1 {
		return r.outputs[edges[0].Source]
	}

	sources := make([]string, 0, len(edges))
	for _, e := range edges {
		sources = append(sources, e.Source)
	}
	sort.Strings(sources)

	merged := make(schema.FanInInput, len(sources))
	for _, src := range sources {
		merged[r.displayLabel(src)] = r.outputs[src]
	}
	return merged
}

// selectResult implements the runner's result-selection rule on clean
// termination: a single output-kind node's value, a label-keyed mapping
// across several, or the same rule applied to the graph's terminal nodes
// when no output-kind node exists at all.
func (r *Runner) selectResult() interface{} {
	var outputNodes []string
	for _, n := range r.graph.Nodes() {
		if n.Type == schema.NodeTypeOutput {
			outputNodes = append(outputNodes, n.ID)
		}
	}
	if len(outputNodes) == 0 {
		outputNodes = r.graph.GetTerminalNodes()
	}

	if len(outputNodes) == 0 {
		return nil
	}
	if len(outputNodes) == 1 {
		return r.outputs[outputNodes[0]]
	}

	sort.Strings(outputNodes)
	merged := make(map[string]interface{}, len(outputNodes))
	for _, id := range outputNodes {
		merged[r.displayLabel(id)] = r.outputs[id]
	}
	return merged
}
