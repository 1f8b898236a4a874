package toolregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wovenflow/runtime/internal/dispatch"
)

// GitHubTool issues a GET against the GitHub REST API. No GitHub SDK is
// present anywhere in the example pack, and the v3 API is plain JSON over
// HTTPS, so this is built directly on the shared *http.Client rather than
// adding an unexercised dependency.
type GitHubTool struct {
	client *http.Client
}

func (t *GitHubTool) ID() string          { return "github" }
func (t *GitHubTool) DisplayName() string { return "GitHub API" }
func (t *GitHubTool) Description() string {
	return "Issues a GET request against the GitHub REST API."
}
func (t *GitHubTool) Category() string { return "network" }

func (t *GitHubTool) Schema() string {
	return `{
		"type": "object",
		"properties": {
			"path": {"type": "string"},
			"token": {"type": "string"}
		},
		"required": ["path"]
	}`
}

func (t *GitHubTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	path, _ := input["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("github tool: missing path")
	}
	if path[0] != '/' {
		path = "/" + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://api.github.com"+path, nil)
	if err != nil {
		return nil, fmt.Errorf("github tool: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if token, _ := input["token"].(string); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github tool: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("github tool: reading response: %w", err)
	}

	var parsed interface{}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("github tool: parsing response: %w", err)
	}
	return map[string]interface{}{"status": resp.StatusCode, "body": parsed}, nil
}
