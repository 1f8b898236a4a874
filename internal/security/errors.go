package security

import "errors"

// Sentinel errors returned by SSRFProtection.ValidateURL, so callers can
// branch on the blocked category with errors.Is instead of parsing the
// message.
var (
	ErrInvalidFormat    = errors.New("invalid URL format")
	ErrInvalidProtocol  = errors.New("invalid or disallowed protocol")
	ErrURLNotAllowed    = errors.New("URL not allowed by security policy")
	ErrPrivateIPBlocked = errors.New("access to private IP blocked")
	ErrLocalhostBlocked = errors.New("access to localhost blocked")
	ErrLinkLocalBlocked = errors.New("access to link-local address blocked")
	ErrMetadataBlocked  = errors.New("access to cloud metadata blocked")
)
