package toolregistry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/httpclient"
)

func newTestHTTPTool(t *testing.T) *HTTPTool {
	t.Helper()
	builder := httpclient.NewBuilder(*config.Testing())
	tool, err := NewHTTPTool(builder)
	if err != nil {
		t.Fatalf("NewHTTPTool: %v", err)
	}
	return tool
}

func TestHTTPTool_GetParsesJSONResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	tool := newTestHTTPTool(t)
	out, err := tool.Invoke(context.Background(), map[string]interface{}{"url": server.URL}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	m := out.(map[string]interface{})
	if m["status"] != 200 {
		t.Fatalf("status = %v, want 200", m["status"])
	}
	body := m["body"].(map[string]interface{})
	if body["ok"] != true {
		t.Fatalf("body[ok] = %v, want true", body["ok"])
	}
}

func TestHTTPTool_MissingURLErrors(t *testing.T) {
	tool := newTestHTTPTool(t)
	_, err := tool.Invoke(context.Background(), map[string]interface{}{}, &fakeExecutionContext{})
	if err == nil {
		t.Fatal("expected error for missing url")
	}
}

func TestHTTPTool_SendsMethodAndHeaders(t *testing.T) {
	var gotMethod, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotHeader = r.Header.Get("X-Test")
		w.Write([]byte("plain"))
	}))
	defer server.Close()

	tool := newTestHTTPTool(t)
	_, err := tool.Invoke(context.Background(), map[string]interface{}{
		"url":     server.URL,
		"method":  "post",
		"headers": map[string]interface{}{"X-Test": "yes"},
	}, &fakeExecutionContext{})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if gotMethod != "POST" {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotHeader != "yes" {
		t.Fatalf("header = %q, want yes", gotHeader)
	}
}
