package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wovenflow/runtime/internal/schema"
)

// generator is the pluggable natural-language-to-DAG producer the
// `generate` command calls. The runtime only validates what a generator
// returns — it never implements one itself; that's an external
// collaborator's responsibility. offlineGenerator below exists purely so
// `generate` has something to exercise without a network call.
type generator interface {
	Generate(ctx context.Context, prompt, provider string) (*schema.Workflow, error)
}

// offlineGenerator produces a fixed one-node-in, one-node-out skeleton
// workflow labeled with the prompt, so `generate` is exercisable offline
// and in tests. It is not a natural-language understanding system.
type offlineGenerator struct{}

func (offlineGenerator) Generate(_ context.Context, prompt, _ string) (*schema.Workflow, error) {
	if prompt == "" {
		return nil, fmt.Errorf("prompt must not be empty")
	}
	return &schema.Workflow{
		Name:        truncateLabel(prompt),
		Description: "generated offline from: " + prompt,
		Nodes: []schema.Node{
			{ID: "input", Type: schema.NodeTypeInput, Label: "Input", Data: schema.InputData{Name: "input"}},
			{ID: "output", Type: schema.NodeTypeOutput, Label: "Output", Data: schema.OutputData{}},
		},
		Edges: []schema.Edge{{ID: "e1", Source: "input", Target: "output"}},
	}, nil
}

func truncateLabel(prompt string) string {
	const max = 60
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max] + "..."
}

func marshalWorkflow(wf *schema.Workflow) ([]byte, error) {
	return json.MarshalIndent(wf, "", "  ")
}
