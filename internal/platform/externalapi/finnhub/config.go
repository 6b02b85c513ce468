// Package finnhub provides a client for the Finnhub stock API.
package finnhub

import (
	"os"
	"strconv"
	"time"
)

const (
	// DefaultBaseURL is the public Finnhub v1 endpoint.
	DefaultBaseURL = "https://finnhub.io/api/v1"
	// DefaultLookbackDays covers two years so semi-annual and annual payers are found.
	DefaultLookbackDays = 730
)

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey       string
	BaseURL      string
	Timeout      time.Duration
	LookbackDays int // width of the from..to window sent to /stock/dividend
}

// LoadConfig loads Finnhub configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FINNHUB_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	cfg := Config{
		APIKey:       os.Getenv("FINNHUB_API_KEY"),
		BaseURL:      base,
		Timeout:      10 * time.Second,
		LookbackDays: DefaultLookbackDays,
	}
	if d, err := time.ParseDuration(os.Getenv("FINNHUB_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}
	if n, err := strconv.Atoi(os.Getenv("FINNHUB_LOOKBACK_DAYS")); err == nil && n > 0 {
		cfg.LookbackDays = n
	}
	return cfg
}
