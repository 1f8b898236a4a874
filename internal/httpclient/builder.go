package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wovenflow/runtime/internal/schema"
)

// Client wraps an HTTP client with its configuration
type Client struct {
	*http.Client
	config *ClientConfig
}

// GetConfig returns the client configuration
func (c *Client) GetConfig() *ClientConfig {
	return c.config
}

// GetHTTPClient returns the underlying *http.Client.
func (c *Client) GetHTTPClient() *http.Client {
	return c.Client
}

// Builder creates named HTTP clients, applying the engine's global SSRF
// defaults to any client config that doesn't set its own.
type Builder struct {
	engineConfig schema.Config
}

// NewBuilder creates a new HTTP client builder seeded with the engine's
// global resource-limit configuration.
func NewBuilder(engineConfig schema.Config) *Builder {
	return &Builder{engineConfig: engineConfig}
}

// Build creates an HTTP client from the given configuration.
func (b *Builder) Build(config *ClientConfig) (*Client, error) {
	b.applyEngineDefaults(config)

	httpClient, err := New(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("building http client %q: %w", config.Name, err)
	}

	return &Client{Client: httpClient, config: config}, nil
}

// applyEngineDefaults fills SSRF settings from the engine config onto a
// client config that left them at their zero value, so a workflow author
// who doesn't set per-client SSRF fields still gets the engine's defaults.
func (b *Builder) applyEngineDefaults(config *ClientConfig) {
	if !config.BlockPrivateIPs && !config.BlockLocalhost && !config.BlockLinkLocal && !config.BlockCloudMetadata && len(config.AllowedDomains) == 0 {
		config.BlockPrivateIPs = !b.engineConfig.AllowPrivateIPs
		config.BlockLocalhost = !b.engineConfig.AllowLocalhost
		config.BlockLinkLocal = !b.engineConfig.AllowLinkLocal
		config.BlockCloudMetadata = !b.engineConfig.AllowCloudMetadata
		config.AllowedDomains = b.engineConfig.AllowedDomains
	}
}
