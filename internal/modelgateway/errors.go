package modelgateway

import "errors"

// Sentinel errors for the model gateway.
var (
	// ErrProviderUnconfigured means no credential is present for a
	// requested provider.
	ErrProviderUnconfigured = errors.New("model provider is not configured")

	// ErrUnknownProvider means the provider name isn't one of the four
	// wired adapters.
	ErrUnknownProvider = errors.New("unknown model provider")

	// ErrProviderError wraps any failure of a provider call other than a
	// deadline overrun; the gateway does not retry.
	ErrProviderError = errors.New("model provider returned an error")

	// ErrProviderTimeout means the provider call exceeded its deadline.
	ErrProviderTimeout = errors.New("model provider call timed out")
)
