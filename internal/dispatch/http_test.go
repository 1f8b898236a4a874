package dispatch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/wovenflow/runtime/internal/config"
	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/schema"
)

func newTestHTTPExecutor() *HTTPExecutor {
	builder := httpclient.NewBuilder(*config.Testing())
	return NewHTTPExecutor(httpclient.NewRegistry(), builder)
}

func TestHTTPExecutor_InterpolatesURLAndBody(t *testing.T) {
	var gotPath, gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	exec := newTestHTTPExecutor()
	node := schema.Node{ID: "h", Type: schema.NodeTypeHTTP, Data: schema.HTTPData{
		Method: "POST",
		URL:    srv.URL + "/users/{{id}}",
		Body:   `{"name":"{{name}}"}`,
	}}

	input := map[string]interface{}{"id": "42", "name": "ada"}
	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, input)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if gotPath != "/users/42" {
		t.Errorf("gotPath = %q, want /users/42", gotPath)
	}
	if gotBody != `{"name":"ada"}` {
		t.Errorf("gotBody = %q, want interpolated JSON body", gotBody)
	}
	if gotContentType != "application/json" {
		t.Errorf("gotContentType = %q, want application/json to be auto-set", gotContentType)
	}
	m, ok := out.(map[string]interface{})
	if !ok || m["ok"] != true {
		t.Errorf("Execute() = %v, want parsed JSON response", out)
	}
}

func TestHTTPExecutor_ParsesTextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	exec := newTestHTTPExecutor()
	node := schema.Node{ID: "h", Type: schema.NodeTypeHTTP, Data: schema.HTTPData{Method: "GET", URL: srv.URL}}

	out, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "hello" {
		t.Errorf("Execute() = %v, want %q", out, "hello")
	}
}

func TestHTTPExecutor_ResponseTooLargeErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		big := make([]byte, 20*1024*1024)
		w.Write(big)
	}))
	defer srv.Close()

	exec := newTestHTTPExecutor()
	node := schema.Node{ID: "h", Type: schema.NodeTypeHTTP, Data: schema.HTTPData{Method: "GET", URL: srv.URL}}

	if _, err := exec.Execute(context.Background(), &fakeExecutionContext{}, node, nil); err == nil {
		t.Error("expected ErrResponseTooLarge")
	}
}
