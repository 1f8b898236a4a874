package httpclient

import (
	"net/http"
)

// Middleware is a function that wraps an http.RoundTripper
type Middleware func(http.RoundTripper) http.RoundTripper

// Chain creates a chain of middlewares
func Chain(middlewares ...Middleware) Middleware {
	return func(base http.RoundTripper) http.RoundTripper {
		for i := len(middlewares) - 1; i >= 0; i-- {
			base = middlewares[i](base)
		}
		return base
	}
}

// authMiddleware adds authentication headers to requests
func authMiddleware(config *ClientConfig) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &authRoundTripper{next: next, config: config}
	}
}

type authRoundTripper struct {
	next   http.RoundTripper
	config *ClientConfig
}

func (t *authRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())

	switch t.config.AuthType {
	case AuthTypeBasic:
		clonedReq.SetBasicAuth(t.config.Username, t.config.Password.Value())
	case AuthTypeBearer:
		clonedReq.Header.Set("Authorization", "Bearer "+t.config.Token.Value())
	}

	return t.next.RoundTrip(clonedReq)
}

// headersMiddleware adds default headers to requests, without overriding
// headers the request already sets.
func headersMiddleware(headers map[string]string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &headersRoundTripper{next: next, headers: headers}
	}
}

type headersRoundTripper struct {
	next    http.RoundTripper
	headers map[string]string
}

func (t *headersRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	for key, value := range t.headers {
		if clonedReq.Header.Get(key) == "" {
			clonedReq.Header.Set(key, value)
		}
	}
	return t.next.RoundTrip(clonedReq)
}

// queryParamsMiddleware adds default query parameters to requests, without
// overriding parameters the request already sets.
func queryParamsMiddleware(params map[string]string) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &queryParamsRoundTripper{next: next, params: params}
	}
}

type queryParamsRoundTripper struct {
	next   http.RoundTripper
	params map[string]string
}

func (t *queryParamsRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clonedReq := req.Clone(req.Context())
	q := clonedReq.URL.Query()
	for key, value := range t.params {
		if !q.Has(key) {
			q.Set(key, value)
		}
	}
	clonedReq.URL.RawQuery = q.Encode()
	return t.next.RoundTrip(clonedReq)
}

// ssrfProtectionMiddleware validates the request URL (and, via the
// client's CheckRedirect, every redirect hop) against the SSRF guard rules
// in config before the request is allowed to proceed.
func ssrfProtectionMiddleware(config *ClientConfig) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return &ssrfProtectionRoundTripper{next: next, config: config}
	}
}

type ssrfProtectionRoundTripper struct {
	next   http.RoundTripper
	config *ClientConfig
}

func (t *ssrfProtectionRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := validateURL(req.URL.String(), t.config); err != nil {
		return nil, err
	}
	return t.next.RoundTrip(req)
}
