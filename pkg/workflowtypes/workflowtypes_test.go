package workflowtypes

import "testing"

func TestAliasesBuildWorkflowAndNarrowData(t *testing.T) {
	wf := Workflow{
		Name: "demo",
		Nodes: []Node{
			{ID: "a", Type: NodeTypeInput, Data: InputData{Name: "a"}},
			{ID: "b", Type: NodeTypeOutput, Data: OutputData{}},
		},
		Edges: []Edge{{ID: "e1", Source: "a", Target: "b"}},
	}
	if wf.Nodes[0].Type != NodeTypeInput {
		t.Fatalf("expected node type %q, got %q", NodeTypeInput, wf.Nodes[0].Type)
	}
	data, err := AsInputData(wf.Nodes[0].Data)
	if err != nil {
		t.Fatalf("AsInputData: %v", err)
	}
	if data.Name != "a" {
		t.Fatalf("expected input name %q, got %q", "a", data.Name)
	}
}
