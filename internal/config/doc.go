// Package config provides configuration management for the workflow runtime.
//
// # Overview
//
// The config package centralizes all configuration for the workflow engine
// in one plain struct, with preset constructors, validation, and deep copy.
//
// # Features
//
//   - Centralized configuration: Single source of truth
//   - Type-safe: Strongly typed configuration options
//   - Validation: Validate rejects negative limits and durations
//   - Defaults: Default, Development, Production and Testing presets
//   - Copying: Clone returns a deep copy
//
// The package does not read environment variables or files and has no
// reload mechanism; callers build a Config in code (the CLI's persisted
// settings live in internal/cliconfig).
//
// # Configuration Structure
//
// The configuration is organized into logical sections:
//
//   - Execution limits: Timeouts and iteration limits
//   - HTTP settings: HTTP request configuration
//   - Security: Network access control and restrictions
//   - Cache settings: Cache TTL and size limits
//   - Resource limits: Memory and size constraints
//   - Retry settings: Retry and backoff configuration
//
// # Basic Usage
//
// import "github.com/wovenflow/runtime/internal/config"
//
// // Create default configuration
// cfg := config.Default()
//
// // Use in engine
// eng := engine.New(st, registry, *cfg, sink)
//
// # Custom Configuration
//
// cfg := config.Default()
// cfg.MaxExecutionTime = 10 * time.Minute
// cfg.HTTPTimeout = 30 * time.Second
// cfg.MaxNodes = 1000
// if err := cfg.Validate(); err != nil { ... }
//
// # Default Configuration
//
// The default configuration provides secure, production-ready defaults:
//
// MaxExecutionTime: 5 minutes
// MaxNodeExecutionTime: 30 seconds
// MaxIterations: 10000
// MaxWhileIterations: 100000
// HTTPTimeout: 30 seconds
// MaxHTTPRedirects: 10
// MaxResponseSize: 10MB
// AllowHTTP: false (HTTPS only)
// AllowPrivateIPs: false
// AllowLocalhost: false
// AllowLinkLocal: false
// AllowCloudMetadata: false
// DefaultCacheTTL: 1 hour
// MaxCacheSize: 1000
// MaxNodes: 1000
// MaxEdges: 5000
// DefaultMaxAttempts: 3
// DefaultBackoff: 1 second
//
// # Thread Safety
//
// Configuration objects are safe for concurrent read access.
package config
