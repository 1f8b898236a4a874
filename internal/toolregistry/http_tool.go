package toolregistry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wovenflow/runtime/internal/dispatch"
	"github.com/wovenflow/runtime/internal/httpclient"
)

// HTTPTool is the general-purpose http tool: it issues one HTTP request
// per invocation, distinct from internal/dispatch's HTTPExecutor (which
// handles http-kind *nodes* with {{name}} placeholder interpolation). Each
// has its own client, built by an internal/httpclient.Builder.
type HTTPTool struct {
	client *http.Client
}

// NewHTTPTool builds an http tool over a client constructed by the given
// Builder (so it honors the process's SSRF configuration).
func NewHTTPTool(builder *httpclient.Builder) (*HTTPTool, error) {
	c, err := builder.Build(&httpclient.ClientConfig{Name: "tool-http"})
	if err != nil {
		return nil, fmt.Errorf("building http tool client: %w", err)
	}
	return &HTTPTool{client: c.GetHTTPClient()}, nil
}

func (t *HTTPTool) ID() string          { return "http" }
func (t *HTTPTool) DisplayName() string { return "HTTP Request" }
func (t *HTTPTool) Description() string {
	return "Issues a single HTTP request and returns the parsed response."
}
func (t *HTTPTool) Category() string { return "network" }

func (t *HTTPTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"method": {"type": "string"},
			"url": {"type": "string"},
			"headers": {"type": "object"},
			"body": {"type": "string"}
		},
		"required": ["url"]
	}`
}

func (t *HTTPTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	url, _ := input["url"].(string)
	if url == "" {
		return nil, fmt.Errorf("http tool: missing url")
	}
	method, _ := input["method"].(string)
	if method == "" {
		method = "GET"
	}
	body, _ := input["body"].(string)

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(method), url, bytes.NewBufferString(body))
	if err != nil {
		return nil, fmt.Errorf("http tool: %w", err)
	}
	if headers, ok := input["headers"].(map[string]interface{}); ok {
		for k, v := range headers {
			if s, ok := v.(string); ok {
				req.Header.Set(k, s)
			}
		}
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http tool: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("http tool: reading response: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/json") {
		var parsed interface{}
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return nil, fmt.Errorf("http tool: parsing JSON response: %w", err)
		}
		return map[string]interface{}{"status": resp.StatusCode, "body": parsed}, nil
	}
	return map[string]interface{}{"status": resp.StatusCode, "body": string(respBody)}, nil
}
