package dag

import (
	"errors"
	"testing"

	"github.com/wovenflow/runtime/internal/schema"
)

func numNode(id string) schema.Node {
	return schema.Node{ID: id, Type: schema.NodeTypeTransform, Data: schema.TransformData{Expression: "1"}}
}

func TestValidate_Empty(t *testing.T) {
	g := New(nil, nil)
	if err := g.Validate(); !errors.Is(err, ErrEmptyGraph) {
		t.Fatalf("expected ErrEmptyGraph, got %v", err)
	}
}

func TestValidate_DuplicateNode(t *testing.T) {
	nodes := []schema.Node{numNode("a"), numNode("a")}
	g := New(nodes, nil)
	if err := g.Validate(); !errors.Is(err, ErrDuplicateNode) {
		t.Fatalf("expected ErrDuplicateNode, got %v", err)
	}
}

func TestValidate_DanglingEdge(t *testing.T) {
	nodes := []schema.Node{numNode("a"), numNode("b")}
	edges := []schema.Edge{{ID: "e1", Source: "a", Target: "missing"}}
	g := New(nodes, edges)
	var danglingErr *DanglingEdgeError
	err := g.Validate()
	if !errors.As(err, &danglingErr) {
		t.Fatalf("expected DanglingEdgeError, got %v", err)
	}
	if danglingErr.NodeID != "missing" {
		t.Fatalf("expected missing node id 'missing', got %q", danglingErr.NodeID)
	}
}

func TestValidate_Cycle(t *testing.T) {
	nodes := []schema.Node{numNode("a"), numNode("b"), numNode("c")}
	edges := []schema.Edge{
		{ID: "e1", Source: "a", Target: "b"},
		{ID: "e2", Source: "b", Target: "c"},
		{ID: "e3", Source: "c", Target: "a"},
	}
	g := New(nodes, edges)
	var cycleErr *CycleError
	err := g.Validate()
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if len(cycleErr.Path) < 2 || cycleErr.Path[0] != cycleErr.Path[len(cycleErr.Path)-1] {
		t.Fatalf("cycle path must start and end on the same node, got %v", cycleErr.Path)
	}
}

func TestValidate_UnknownNodeType(t *testing.T) {
	nodes := []schema.Node{{ID: "a", Type: schema.NodeType("bogus")}}
	g := New(nodes, nil)
	if err := g.Validate(); err == nil {
		t.Fatal("expected an error for an unrecognized node type")
	}
}

func TestTopologicalSort_Linear(t *testing.T) {
	nodes := []schema.Node{numNode("1"), numNode("2"), numNode("3")}
	edges := []schema.Edge{
		{Source: "1", Target: "2"},
		{Source: "2", Target: "3"},
	}
	g := New(nodes, edges)
	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "2", "3"}
	for i, id := range want {
		if order[i] != id {
			t.Fatalf("order mismatch at %d: want %s, got %s", i, id, order[i])
		}
	}
}

func TestTopologicalSort_Diamond(t *testing.T) {
	nodes := []schema.Node{numNode("1"), numNode("2"), numNode("3"), numNode("4")}
	edges := []schema.Edge{
		{Source: "1", Target: "2"},
		{Source: "1", Target: "3"},
		{Source: "2", Target: "4"},
		{Source: "3", Target: "4"},
	}
	g := New(nodes, edges)
	order, err := g.TopologicalSort()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	if pos["1"] > pos["2"] || pos["1"] > pos["3"] || pos["2"] > pos["4"] || pos["3"] > pos["4"] {
		t.Fatalf("dependency order violated: %v", order)
	}
}

func TestInDegreesAndReadyNodes(t *testing.T) {
	nodes := []schema.Node{numNode("1"), numNode("2"), numNode("3")}
	edges := []schema.Edge{
		{Source: "1", Target: "3"},
		{Source: "2", Target: "3"},
	}
	g := New(nodes, edges)
	deg := g.InDegrees()
	if deg["1"] != 0 || deg["2"] != 0 || deg["3"] != 2 {
		t.Fatalf("unexpected in-degrees: %v", deg)
	}
	ready := g.ReadyNodes()
	if len(ready) != 2 || ready[0] != "1" || ready[1] != "2" {
		t.Fatalf("unexpected ready set: %v", ready)
	}
}

func TestGetTerminalNodes(t *testing.T) {
	nodes := []schema.Node{numNode("1"), numNode("2"), numNode("3")}
	edges := []schema.Edge{
		{Source: "1", Target: "2"},
		{Source: "1", Target: "3"},
	}
	g := New(nodes, edges)
	terminal := g.GetTerminalNodes()
	if len(terminal) != 2 || terminal[0] != "2" || terminal[1] != "3" {
		t.Fatalf("unexpected terminal nodes: %v", terminal)
	}
}

func TestGetNode(t *testing.T) {
	nodes := []schema.Node{numNode("1")}
	g := New(nodes, nil)
	if g.GetNode("1") == nil {
		t.Fatal("expected node 1 to be found")
	}
	if g.GetNode("missing") != nil {
		t.Fatal("expected nil for missing node")
	}
}
