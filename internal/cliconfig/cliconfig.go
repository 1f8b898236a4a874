package cliconfig

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Document keys, matching the single JSON configuration document named in
// the CLI surface: provider credentials, default provider/model, ollama
// host, engine limits, and log level.
const (
	KeyDefaultProvider        = "defaultProvider"
	KeyDefaultModel           = "defaultModel"
	KeyOllamaHost             = "ollamaHost"
	KeyMaxConcurrentExecution = "maxConcurrentExecutions"
	KeyMaxRetries             = "maxRetries"
	KeyRetryDelay             = "retryDelay"
	KeyLogLevel               = "logLevel"
)

// Store wraps a viper.Viper bound to a single config file, persisted as
// JSON (viper infers the format from the file extension).
type Store struct {
	v    *viper.Viper
	path string
}

// DefaultPath returns the platform config directory's wovenflow/config.json.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "wovenflow", "config.json")
}

// Load reads path if it exists, or starts from an empty document if it
// doesn't — a missing config file is not an error, matching `init`'s job
// of creating one on first use.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}
	return &Store{v: v, path: path}, nil
}

// Save writes the current in-memory document to disk, creating parent
// directories as needed.
func (s *Store) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config %s: %w", s.path, err)
	}
	return nil
}

// Set assigns a dotted key (e.g. "defaultProvider" or "maxRetries") to
// value, parsed as JSON-ish: "true"/"false" become bool, an integer
// string becomes int, everything else stays a string.
func (s *Store) Set(key, value string) {
	s.v.Set(key, parseScalar(value))
}

// Get returns the raw value stored at key, or nil if unset. A whole number
// read back from the JSON file is returned as int, the same type Set stores.
func (s *Store) Get(key string) interface{} {
	if !s.v.IsSet(key) {
		return nil
	}
	v := s.v.Get(key)
	if f, ok := v.(float64); ok && f == math.Trunc(f) {
		return int(f)
	}
	return v
}

// SetAPIKey stores provider's API key under apiKeys.<provider>.
func (s *Store) SetAPIKey(provider, value string) {
	s.v.Set("apiKeys."+provider, value)
}

// APIKey returns provider's API key, preferring the explicitly configured
// value over the {PROVIDER}_API_KEY environment variable — explicit
// configuration takes precedence per the CLI's configuration contract.
func (s *Store) APIKey(provider string) string {
	key := "apiKeys." + provider
	if s.v.IsSet(key) {
		return s.v.GetString(key)
	}
	return os.Getenv(strings.ToUpper(provider) + "_API_KEY")
}

// AllSettings returns every configured key/value, for the `config --show`
// surface.
func (s *Store) AllSettings() map[string]interface{} {
	return s.v.AllSettings()
}

func parseScalar(value string) interface{} {
	switch strings.ToLower(value) {
	case "true":
		return true
	case "false":
		return false
	}
	var n int
	if _, err := fmt.Sscanf(value, "%d", &n); err == nil && fmt.Sprintf("%d", n) == value {
		return n
	}
	return value
}
