package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wovenflow/runtime/internal/httpclient"
	"github.com/wovenflow/runtime/internal/schema"
)

// HTTPExecutor executes http nodes: interpolates {{name}} placeholders in
// the URL and body from gathered-input-record fields, sets
// Content-Type: application/json when absent and the body is an object,
// and parses the response as JSON or text depending on its content type.
//
// The http tool (internal/toolregistry) sends its requests through its
// own client, built by the same internal/httpclient.Builder and so under
// the same SSRF guard, without placeholder interpolation.
type HTTPExecutor struct {
	registry *httpclient.Registry
	builder  *httpclient.Builder
}

// NewHTTPExecutor builds an HTTP executor that resolves named clients
// through registry and falls back to a client built from the engine's
// default SSRF configuration via builder.
func NewHTTPExecutor(registry *httpclient.Registry, builder *httpclient.Builder) *HTTPExecutor {
	return &HTTPExecutor{registry: registry, builder: builder}
}

func (e *HTTPExecutor) Execute(ctx context.Context, ec ExecutionContext, node schema.Node, input interface{}) (interface{}, error) {
	data, err := schema.AsHTTPData(node.Data)
	if err != nil {
		return nil, err
	}

	record := asRecord(input)
	url := interpolateRecord(data.URL, record)
	body := data.Body
	if body != "" {
		body = interpolateRecord(body, record)
	}

	headers := make(map[string]string, len(data.Headers))
	for k, v := range data.Headers {
		headers[k] = v
	}
	if _, set := headers["Content-Type"]; !set && looksLikeJSONObject(body) {
		headers["Content-Type"] = "application/json"
	}

	client, maxResponseSize, err := e.resolveClient(data.HTTPClientUID)
	if err != nil {
		return nil, fmt.Errorf("http node %q: %w", node.ID, err)
	}

	req, err := http.NewRequestWithContext(ctx, strings.ToUpper(data.Method), url, bytes.NewBufferString(body))
	if err != nil {
		return nil, fmt.Errorf("http node %q: %w", node.ID, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http node %q: %w: %v", node.ID, ErrHTTPRequestFailed, err)
	}
	defer resp.Body.Close()

	limited := io.LimitReader(resp.Body, maxResponseSize)
	respBody, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("http node %q: reading response: %w", node.ID, err)
	}
	if int64(len(respBody)) >= maxResponseSize {
		return nil, fmt.Errorf("http node %q: %w", node.ID, ErrResponseTooLarge)
	}

	return parseResponse(resp.Header.Get("Content-Type"), respBody)
}

func (e *HTTPExecutor) resolveClient(clientUID string) (*http.Client, int64, error) {
	if clientUID != "" && e.registry != nil {
		return e.registry.GetHTTPClient(clientUID)
	}
	client, err := e.builder.Build(&httpclient.ClientConfig{Name: "default"})
	if err != nil {
		return nil, 0, err
	}
	return client.GetHTTPClient(), client.GetConfig().MaxResponseSize, nil
}

func (e *HTTPExecutor) NodeType() schema.NodeType { return schema.NodeTypeHTTP }

func (e *HTTPExecutor) Validate(node schema.Node) error {
	_, err := schema.AsHTTPData(node.Data)
	return err
}

// interpolateRecord substitutes {{name}} placeholders with record[name],
// leaving unknown placeholders untouched.
func interpolateRecord(s string, record map[string]interface{}) string {
	if record == nil {
		return s
	}
	return templatePlaceholder.ReplaceAllStringFunc(s, func(match string) string {
		name := templatePlaceholder.FindStringSubmatch(match)[1]
		val, ok := record[name]
		if !ok {
			return match
		}
		out, err := stringifyForPrompt(val)
		if err != nil {
			return match
		}
		return out
	})
}

func looksLikeJSONObject(body string) bool {
	trimmed := strings.TrimSpace(body)
	return strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")
}

func parseResponse(contentType string, body []byte) (interface{}, error) {
	if strings.Contains(contentType, "application/json") {
		var parsed interface{}
		if err := json.Unmarshal(body, &parsed); err != nil {
			return nil, fmt.Errorf("parsing JSON response: %w", err)
		}
		return parsed, nil
	}
	return string(body), nil
}
