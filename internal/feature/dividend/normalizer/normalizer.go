// Package normalizer converts provider-specific JSON bodies into a canonical DividendRecord.
//
// Each Shape is one response layout. Providers pick the shape that matches the endpoint they call,
// so a single handler serves every provider.
package normalizer

import (
	"fmt"
	"regexp"
	"time"

	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/feature/dividend/domain/entity"
)

// Shape identifies a provider response layout.
type Shape string

const (
	// ShapeMonthlySeries is Alpha Vantage TIME_SERIES_MONTHLY_ADJUSTED.
	ShapeMonthlySeries Shape = "monthly-series"
	// ShapeDailySeries is Alpha Vantage TIME_SERIES_DAILY_ADJUSTED.
	ShapeDailySeries Shape = "daily-series"
	// ShapeOverview is Alpha Vantage OVERVIEW.
	ShapeOverview Shape = "overview"
	// ShapeEvents is an array of dividend events such as Finnhub /stock/dividend.
	ShapeEvents Shape = "events"
)

// Input carries the request context a parser needs besides the body.
type Input struct {
	Ticker    string
	Source    string
	FetchedAt time.Time
}

// Normalize parses body according to shape.
// Failures wrap domain.ErrNoDividend or are *domain.ProviderError values.
func Normalize(shape Shape, in Input, body []byte) (entity.DividendRecord, error) {
	var (
		rec entity.DividendRecord
		err error
	)
	switch shape {
	case ShapeMonthlySeries:
		rec, err = fromTimeSeries(in, body, monthlySeriesKey, true)
	case ShapeDailySeries:
		rec, err = fromTimeSeries(in, body, dailySeriesKey, false)
	case ShapeOverview:
		rec, err = fromOverview(in, body)
	case ShapeEvents:
		rec, err = fromEvents(in, body)
	default:
		return entity.DividendRecord{}, fmt.Errorf("normalizer: unknown shape %q", shape)
	}
	if err != nil {
		return entity.DividendRecord{}, err
	}
	rec.EstimatePaymentDate()
	return rec, nil
}

// numberedKey matches the "7. " style prefixes Alpha Vantage puts on JSON keys.
// Only object keys match: the closing quote must be followed by a colon.
var numberedKey = regexp.MustCompile(`"[0-9]+\. ([^"\\]*)"(\s*):`)

// cleanKeys strips numeric key prefixes so DTOs can use stable names.
func cleanKeys(body []byte) []byte {
	return numberedKey.ReplaceAll(body, []byte(`"$1"$2:`))
}

func malformed(in Input, body []byte, err error) error {
	return &domain.ProviderError{
		Kind:     domain.SignalMalformed,
		Provider: in.Source,
		Raw:      Snippet(body, SnippetLimit),
		Err:      err,
	}
}

func empty(in Input, detail string) error {
	return &domain.ProviderError{
		Kind:     domain.SignalEmpty,
		Provider: in.Source,
		Detail:   detail,
	}
}

func noDividend(in Input) error {
	return fmt.Errorf("%w for %s (source: %s)", domain.ErrNoDividend, in.Ticker, in.Source)
}

// SnippetLimit bounds raw bodies echoed back to clients.
const SnippetLimit = 200

// Snippet returns at most n bytes of body as a string.
func Snippet(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n])
}
