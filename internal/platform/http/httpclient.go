// Package http provides the outbound HTTP client shared by the provider adapters.
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout bounds a whole provider call when the caller passes no timeout.
const DefaultTimeout = 10 * time.Second

// UserAgent identifies this service to upstream providers.
const UserAgent = "dividend-backend/1.0"

// NewHTTPClient creates the client used for provider calls.
//
// Settings:
//   - Proxy: honours HTTP_PROXY and friends
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - MaxIdleConns / IdleConnTimeout: keep-alive pool towards the few provider hosts
//   - TLSHandshakeTimeout / ResponseHeaderTimeout: fail fast on a stalled provider
//   - Client.Timeout: whole-request bound; DefaultTimeout when timeout <= 0
//
// http.DefaultClient has no timeout, so providers must never use it.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
		ForceAttemptHTTP2:     true,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: &userAgentTransport{base: t, userAgent: UserAgent},
	}
}

// userAgentTransport sets a User-Agent on requests that do not carry one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	// RoundTrippers must not modify the caller's request
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
