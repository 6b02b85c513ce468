package adapters

import (
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/feature/dividend/normalizer"
	httpx "dividend_backend/internal/platform/http"
)

// stringAt returns the non-blank string found at path in a decoded JSON document.
func stringAt(doc any, path string) (string, bool) {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

func isObject(doc any) bool {
	_, ok := doc.(map[string]any)
	return ok
}

func transportError(provider string, err error) error {
	return &domain.ProviderError{Kind: domain.SignalTransport, Provider: provider, Detail: err.Error(), Err: err}
}

func httpError(provider string, res *httpx.Response, detail string) error {
	return &domain.ProviderError{Kind: domain.SignalHTTPError, Provider: provider, Status: res.StatusCode, Detail: detail}
}

func malformedBody(provider string, res *httpx.Response) error {
	return &domain.ProviderError{
		Kind:     domain.SignalMalformed,
		Provider: provider,
		Status:   res.StatusCode,
		Raw:      normalizer.Snippet(res.Body, normalizer.SnippetLimit),
	}
}
