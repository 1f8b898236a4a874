package dag

import (
	"testing"

	"github.com/wovenflow/runtime/internal/schema"
)

func httpNode(id, url string) schema.Node {
	return schema.Node{ID: id, Type: schema.NodeTypeHTTP, Data: schema.HTTPData{Method: "GET", URL: url}}
}

func TestValidateHTTPTargets_BlocksLocalhostByDefault(t *testing.T) {
	g := New([]schema.Node{httpNode("h", "http://127.0.0.1:8080/internal")}, nil)
	cfg := schema.Config{AllowHTTP: true}
	if err := g.ValidateHTTPTargets(cfg); err == nil {
		t.Fatal("expected localhost target to be rejected by default")
	}
}

func TestValidateHTTPTargets_AllowsLocalhostWhenPermitted(t *testing.T) {
	g := New([]schema.Node{httpNode("h", "http://127.0.0.1:8080/internal")}, nil)
	cfg := schema.Config{AllowHTTP: true, AllowLocalhost: true, AllowPrivateIPs: true}
	if err := g.ValidateHTTPTargets(cfg); err != nil {
		t.Fatalf("expected localhost target to pass once explicitly allowed, got %v", err)
	}
}

func TestValidateHTTPTargets_SkipsInterpolatedURLs(t *testing.T) {
	g := New([]schema.Node{httpNode("h", "http://{{host}}/path")}, nil)
	cfg := schema.Config{AllowHTTP: true}
	if err := g.ValidateHTTPTargets(cfg); err != nil {
		t.Fatalf("expected an interpolated URL to be skipped, got %v", err)
	}
}

func TestValidateHTTPTargets_AllowsPublicHTTPS(t *testing.T) {
	g := New([]schema.Node{httpNode("h", "https://api.example.com/v1/resource")}, nil)
	cfg := schema.Config{AllowHTTP: true}
	if err := g.ValidateHTTPTargets(cfg); err != nil {
		t.Fatalf("expected a public https target to pass, got %v", err)
	}
}
