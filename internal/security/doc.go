// Package security implements SSRF protection for http-kind nodes and
// tools that dial a caller-supplied URL.
//
// # Overview
//
// The engine runs under a zero-trust network policy: every config.Config
// defaults to denying HTTP entirely, plus private, loopback, link-local,
// and cloud-metadata addresses. SSRFProtection enforces that policy by
// resolving a URL's hostname and rejecting it when the resolved address
// (or the literal hostname, for names that never resolve) falls into a
// blocked category.
//
// # Two call sites, one policy
//
// internal/dag.Graph.ValidateHTTPTargets builds an SSRFProtection straight
// from the workflow's config.Config via NewSSRFProtectionFromConfig and
// rejects a workflow at save/validate time if any http-kind node's
// literal (non-templated) URL is already disallowed. internal/httpclient
// enforces the same policy again at dispatch time, after template
// interpolation has filled in the real target and for every redirect hop
// a response produces — the pre-flight check here catches an obviously
// bad workflow early, but it is not a substitute for the dispatch-time
// guard since a node's URL can depend on upstream output.
//
//	protection := security.NewSSRFProtectionFromConfig(cfg)
//	if err := protection.ValidateURL(data.URL); err != nil {
//	    return fmt.Errorf("disallowed http target: %w", err)
//	}
//
// # Errors
//
// ValidateURL returns one of the sentinel errors in errors.go
// (ErrLocalhostBlocked, ErrPrivateIPBlocked, ErrLinkLocalBlocked,
// ErrMetadataBlocked, ErrURLNotAllowed, ErrInvalidProtocol) wrapped with
// the offending hostname, so callers can use errors.Is to branch on the
// blocked category rather than parsing the message.
package security
