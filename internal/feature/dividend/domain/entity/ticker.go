package entity

import (
	"strings"

	"dividend_backend/internal/feature/dividend/domain"
)

// NormalizeTicker trims and upper-cases raw user input.
// Only emptiness is checked; unknown symbols are reported by the provider itself.
func NormalizeTicker(raw string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if t == "" {
		return "", domain.ErrMissingTicker
	}
	return t, nil
}
