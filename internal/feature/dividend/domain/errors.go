// Package domain defines domain-level errors for the dividend feature.
package domain

import (
	"errors"
	"fmt"
)

// Domain errors for dividend lookups.
// Upper layers classify them with errors.Is; nothing below the handler maps them to HTTP.
var (
	// ErrMissingAPIKey indicates that the configured provider has no API key.
	// This is a server misconfiguration, not an upstream fault.
	ErrMissingAPIKey = errors.New("provider API key is missing")

	// ErrMissingTicker indicates that the ticker was absent or blank after trimming.
	ErrMissingTicker = errors.New("ticker parameter is missing")

	// ErrRateLimited indicates that the provider refused the call because of its quota.
	ErrRateLimited = errors.New("provider rate limit reached")

	// ErrInvalidSymbol indicates that the provider rejected the ticker.
	ErrInvalidSymbol = errors.New("invalid or unsupported symbol")

	// ErrMalformedResponse indicates that the provider body could not be parsed.
	ErrMalformedResponse = errors.New("invalid provider response")

	// ErrUpstreamHTTP indicates a non-2xx provider status without a recognizable error body.
	ErrUpstreamHTTP = errors.New("provider returned an error status")

	// ErrUpstreamTransport indicates that the provider could not be reached.
	ErrUpstreamTransport = errors.New("provider unreachable")

	// ErrNoDividend indicates that the provider answered but no dividend could be selected.
	ErrNoDividend = errors.New("no recent dividend found")
)

// SignalKind tags the variant carried by a ProviderError.
type SignalKind int

const (
	SignalRateLimited SignalKind = iota + 1
	SignalInvalidSymbol
	SignalEmpty
	SignalMalformed
	SignalHTTPError
	SignalTransport
)

// String returns a short lowercase name for logs.
func (k SignalKind) String() string {
	switch k {
	case SignalRateLimited:
		return "rate_limited"
	case SignalInvalidSymbol:
		return "invalid_symbol"
	case SignalEmpty:
		return "empty"
	case SignalMalformed:
		return "malformed"
	case SignalHTTPError:
		return "http_error"
	case SignalTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// ProviderError is a provider-level failure signal.
// Detail holds the provider's own message (rate-limit note, error text), Status the upstream
// HTTP status when one was received, and Raw a snippet of an unparseable body.
type ProviderError struct {
	Kind     SignalKind
	Provider string
	Detail   string
	Status   int
	Raw      string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Provider, e.sentinel().Error())
	if e.Status != 0 {
		msg += fmt.Sprintf(" (http %d)", e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel for Kind and the underlying cause.
func (e *ProviderError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.sentinel(), e.Err}
	}
	return []error{e.sentinel()}
}

func (e *ProviderError) sentinel() error {
	switch e.Kind {
	case SignalRateLimited:
		return ErrRateLimited
	case SignalInvalidSymbol:
		return ErrInvalidSymbol
	case SignalEmpty:
		return ErrNoDividend
	case SignalMalformed:
		return ErrMalformedResponse
	case SignalHTTPError:
		return ErrUpstreamHTTP
	case SignalTransport:
		return ErrUpstreamTransport
	default:
		return errors.New("unknown provider error")
	}
}

// MissingKeyError reports which provider lacks a key and how to configure it.
type MissingKeyError struct {
	Provider string
	Hint     string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s: %s", e.Provider, ErrMissingAPIKey.Error())
}

func (e *MissingKeyError) Unwrap() error { return ErrMissingAPIKey }
