package httpclient

import (
	"fmt"
	"time"
)

// AuthType represents the type of authentication to use
type AuthType string

const (
	// AuthTypeNone represents no authentication (default)
	AuthTypeNone AuthType = "none"
	// AuthTypeBasic represents HTTP Basic Authentication
	AuthTypeBasic AuthType = "basic"
	// AuthTypeBearer represents Bearer Token Authentication
	AuthTypeBearer AuthType = "bearer"
)

// ClientConfig represents the configuration for a named HTTP client,
// covering both connection tuning and the SSRF guard rails applied to
// every request (and every redirect) the client follows.
type ClientConfig struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	AuthType AuthType     `json:"auth_type,omitempty" yaml:"auth_type,omitempty"`
	Username string       `json:"username,omitempty" yaml:"username,omitempty"`
	Password SecureString `json:"password,omitempty" yaml:"password,omitempty"`
	Token    SecureString `json:"token,omitempty" yaml:"token,omitempty"`

	Timeout             time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	MaxIdleConns        int           `json:"max_idle_conns,omitempty" yaml:"max_idle_conns,omitempty"`
	MaxIdleConnsPerHost int           `json:"max_idle_conns_per_host,omitempty" yaml:"max_idle_conns_per_host,omitempty"`
	MaxConnsPerHost     int           `json:"max_conns_per_host,omitempty" yaml:"max_conns_per_host,omitempty"`
	IdleConnTimeout     time.Duration `json:"idle_conn_timeout,omitempty" yaml:"idle_conn_timeout,omitempty"`
	TLSHandshakeTimeout time.Duration `json:"tls_handshake_timeout,omitempty" yaml:"tls_handshake_timeout,omitempty"`
	DisableKeepAlives   bool          `json:"disable_keep_alives,omitempty" yaml:"disable_keep_alives,omitempty"`

	MaxRedirects    int   `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty"`
	MaxResponseSize int64 `json:"max_response_size,omitempty" yaml:"max_response_size,omitempty"`
	FollowRedirects bool  `json:"follow_redirects,omitempty" yaml:"follow_redirects,omitempty"`

	// SSRF guard configuration, applied both to the initial request and to
	// every redirect hop.
	BlockPrivateIPs    bool     `json:"block_private_ips,omitempty" yaml:"block_private_ips,omitempty"`
	BlockLocalhost     bool     `json:"block_localhost,omitempty" yaml:"block_localhost,omitempty"`
	BlockLinkLocal     bool     `json:"block_link_local,omitempty" yaml:"block_link_local,omitempty"`
	BlockCloudMetadata bool     `json:"block_cloud_metadata,omitempty" yaml:"block_cloud_metadata,omitempty"`
	AllowedDomains     []string `json:"allowed_domains,omitempty" yaml:"allowed_domains,omitempty"`

	DefaultHeaders     map[string]string `json:"default_headers,omitempty" yaml:"default_headers,omitempty"`
	DefaultQueryParams map[string]string `json:"default_query_params,omitempty" yaml:"default_query_params,omitempty"`

	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
}

// Validate checks if the client configuration is valid
func (c *ClientConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("client name is required")
	}

	if c.AuthType != "" && c.AuthType != AuthTypeNone && c.AuthType != AuthTypeBasic && c.AuthType != AuthTypeBearer {
		return fmt.Errorf("invalid auth_type: %s (must be one of: none, basic, bearer)", c.AuthType)
	}

	if c.AuthType == AuthTypeBasic {
		if c.Username == "" {
			return fmt.Errorf("username is required for basic auth")
		}
		if c.Password.IsEmpty() {
			return fmt.Errorf("password is required for basic auth")
		}
	}

	if c.AuthType == AuthTypeBearer {
		if c.Token.IsEmpty() {
			return fmt.Errorf("token is required for bearer auth")
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("max_idle_conns cannot be negative")
	}
	if c.MaxIdleConnsPerHost < 0 {
		return fmt.Errorf("max_idle_conns_per_host cannot be negative")
	}
	if c.MaxConnsPerHost < 0 {
		return fmt.Errorf("max_conns_per_host cannot be negative")
	}
	if c.IdleConnTimeout < 0 {
		return fmt.Errorf("idle_conn_timeout cannot be negative")
	}
	if c.TLSHandshakeTimeout < 0 {
		return fmt.Errorf("tls_handshake_timeout cannot be negative")
	}
	if c.MaxRedirects < 0 {
		return fmt.Errorf("max_redirects cannot be negative")
	}
	if c.MaxResponseSize < 0 {
		return fmt.Errorf("max_response_size cannot be negative")
	}

	return nil
}

// ApplyDefaults fills in default values for unset fields
func (c *ClientConfig) ApplyDefaults() {
	if c.AuthType == "" {
		c.AuthType = AuthTypeNone
	}
	if c.Timeout == 0 {
		c.Timeout = 30 * time.Second
	}
	if c.MaxIdleConns == 0 {
		c.MaxIdleConns = 100
	}
	if c.MaxIdleConnsPerHost == 0 {
		c.MaxIdleConnsPerHost = 10
	}
	if c.MaxConnsPerHost == 0 {
		c.MaxConnsPerHost = 100
	}
	if c.IdleConnTimeout == 0 {
		c.IdleConnTimeout = 90 * time.Second
	}
	if c.TLSHandshakeTimeout == 0 {
		c.TLSHandshakeTimeout = 10 * time.Second
	}
	if c.MaxRedirects == 0 {
		c.MaxRedirects = 10
	}
	if c.MaxResponseSize == 0 {
		c.MaxResponseSize = 10 * 1024 * 1024
	}
}

// Clone creates a deep copy of the client configuration
func (c *ClientConfig) Clone() *ClientConfig {
	clone := *c

	if c.AllowedDomains != nil {
		clone.AllowedDomains = append([]string{}, c.AllowedDomains...)
	}
	if c.DefaultHeaders != nil {
		clone.DefaultHeaders = make(map[string]string, len(c.DefaultHeaders))
		for k, v := range c.DefaultHeaders {
			clone.DefaultHeaders[k] = v
		}
	}
	if c.DefaultQueryParams != nil {
		clone.DefaultQueryParams = make(map[string]string, len(c.DefaultQueryParams))
		for k, v := range c.DefaultQueryParams {
			clone.DefaultQueryParams[k] = v
		}
	}

	return &clone
}
