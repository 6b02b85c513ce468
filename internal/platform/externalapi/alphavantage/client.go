package alphavantage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	httpx "dividend_backend/internal/platform/http"
)

// Function is an Alpha Vantage API function name.
type Function string

const (
	MonthlyAdjusted Function = "TIME_SERIES_MONTHLY_ADJUSTED"
	DailyAdjusted   Function = "TIME_SERIES_DAILY_ADJUSTED"
	Overview        Function = "OVERVIEW"
)

// Client issues Alpha Vantage queries. It does not interpret the reply.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.cfg.APIKey != ""
}

// Query calls /query for fn and symbol.
// Alpha Vantage reports quota and symbol errors with HTTP 200, so the caller inspects the body.
func (c *Client) Query(ctx context.Context, fn Function, symbol string) (*httpx.Response, error) {
	return httpx.GetJSON(ctx, c.client, c.queryURL(fn, symbol))
}

func (c *Client) queryURL(fn Function, symbol string) string {
	q := url.Values{}
	q.Set("function", string(fn))
	q.Set("symbol", symbol)
	q.Set("apikey", c.cfg.APIKey)
	q.Set("datatype", "json")
	if fn == DailyAdjusted && c.cfg.OutputSize != "" {
		q.Set("outputsize", c.cfg.OutputSize)
	}
	return fmt.Sprintf("%s/query?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())
}
