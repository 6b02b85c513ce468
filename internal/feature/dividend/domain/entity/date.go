package entity

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used by providers and responses.
const DateLayout = "2006-01-02"

// ParseDate parses a provider calendar date.
// Placeholders such as "None", "-" or "0000-00-00" are treated as absent.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null", "-", "n/a", "0000-00-00":
		return nil
	}
	if len(s) > len(DateLayout) {
		// "2024-02-08 00:00:00" or RFC3339
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

// FormatDate renders a date as YYYY-MM-DD, or nil when absent.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(DateLayout)
	return &s
}
