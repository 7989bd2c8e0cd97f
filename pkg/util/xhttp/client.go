// Package xhttp provides common http client helpers.
package xhttp

import (
	"net/http"
	"time"
)

// DefaultTimeout is the total request timeout applied by NewClient when the
// caller does not provide one.
const DefaultTimeout = 30 * time.Second

// Client is the interface of a http client.
type Client interface {
	Do(*http.Request) (*http.Response, error)
}

// NewClient returns a *http.Client with the given total timeout and a
// transport that sets the User-Agent header on outgoing requests.
func NewClient(timeout time.Duration, userAgent string) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: NewUserAgentTransport(nil, userAgent),
	}
}

// NewUserAgentTransport wraps base with a transport that sets the User-Agent
// header when the request does not carry one. A nil base means
// http.DefaultTransport.
func NewUserAgentTransport(base http.RoundTripper, userAgent string) http.RoundTripper {
	return &userAgentTransport{base: base, userAgent: userAgent}
}

type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

// RoundTrip implements http.RoundTripper.
func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.userAgent == "" || req.Header.Get("User-Agent") != "" {
		return base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.userAgent)
	return base.RoundTrip(clone)
}
