package finnhub

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	httpx "dividend_backend/internal/platform/http"
)

const dateLayout = "2006-01-02"

// Client issues Finnhub requests. It does not interpret the reply.
type Client struct {
	cfg    Config
	client *http.Client
	now    func() time.Time
}

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = DefaultLookbackDays
	}
	return &Client{cfg: cfg, client: client, now: time.Now}
}

// HasKey reports whether an API key is configured.
func (c *Client) HasKey() bool {
	return c.cfg.APIKey != ""
}

// Dividends calls /stock/dividend for symbol over the configured lookback window ending today.
func (c *Client) Dividends(ctx context.Context, symbol string) (*httpx.Response, error) {
	return httpx.GetJSON(ctx, c.client, c.dividendURL(symbol))
}

func (c *Client) dividendURL(symbol string) string {
	to := c.now().UTC()
	from := to.AddDate(0, 0, -c.cfg.LookbackDays)

	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("from", from.Format(dateLayout))
	q.Set("to", to.Format(dateLayout))
	q.Set("token", c.cfg.APIKey)
	return fmt.Sprintf("%s/stock/dividend?%s", strings.TrimRight(c.cfg.BaseURL, "/"), q.Encode())
}
