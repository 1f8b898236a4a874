package toolregistry

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// BrowserTool fetches a page's rendered markup. It does not drive a real
// browser engine — no headless-Chrome dependency exists anywhere in the
// example pack this runtime draws on, so this is a plain HTTP GET that
// returns the response body as-is.
type BrowserTool struct {
	client *http.Client
}

func (t *BrowserTool) ID() string          { return "browser" }
func (t *BrowserTool) DisplayName() string { return "Browser Fetch" }
func (t *BrowserTool) Description() string {
	return "Fetches a URL's document body over HTTP."
}
func (t *BrowserTool) Category() string { return "network" }

func (t *BrowserTool) Schema() string {
	return `{"type": "object", "properties": {"url": {"type": "string"}}, "required": ["url"]}`
}

func (t *BrowserTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	url, _ := input["url"].(string)
	if url == "" {
		return nil, fmt.Errorf("browser tool: missing url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("browser tool: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("browser tool: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("browser tool: reading response: %w", err)
	}
	return map[string]interface{}{"status": resp.StatusCode, "html": string(body)}, nil
}
