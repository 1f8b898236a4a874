package toolregistry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/wovenflow/runtime/internal/dispatch"
)

var (
	scriptOrStyleTag = regexp.MustCompile(`(?is)<(script|style)[^>]*>.*?</(script|style)>`)
	htmlTag          = regexp.MustCompile(`(?s)<[^>]+>`)
	whitespaceRun    = regexp.MustCompile(`\s+`)
)

// ScraperTool fetches a URL and returns its tag-stripped text content.
// This is a regexp-based strip, not a tree-walking HTML parser — no HTML
// parsing library is present anywhere in the example pack, so this stays
// on the standard library rather than fabricating a dependency.
type ScraperTool struct {
	client *http.Client
}

func (t *ScraperTool) ID() string          { return "scraper" }
func (t *ScraperTool) DisplayName() string { return "Page Scraper" }
func (t *ScraperTool) Description() string {
	return "Fetches a URL and extracts its visible text content."
}
func (t *ScraperTool) Category() string { return "network" }

func (t *ScraperTool) Schema() string {
	return `{"type": "object", "properties": {"url": {"type": "string"}}, "required": ["url"]}`
}

func (t *ScraperTool) Invoke(ctx context.Context, input map[string]interface{}, ec dispatch.ExecutionContext) (interface{}, error) {
	url, _ := input["url"].(string)
	if url == "" {
		return nil, fmt.Errorf("scraper tool: missing url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("scraper tool: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scraper tool: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("scraper tool: reading response: %w", err)
	}

	text := extractText(string(body))
	return map[string]interface{}{"status": resp.StatusCode, "text": text}, nil
}

func extractText(html string) string {
	stripped := scriptOrStyleTag.ReplaceAllString(html, "")
	stripped = htmlTag.ReplaceAllString(stripped, " ")
	stripped = whitespaceRun.ReplaceAllString(stripped, " ")
	return strings.TrimSpace(stripped)
}
