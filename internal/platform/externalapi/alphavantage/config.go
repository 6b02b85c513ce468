// Package alphavantage provides a client for the Alpha Vantage query API.
package alphavantage

import (
	"os"
	"time"
)

const (
	// DefaultBaseURL is the public Alpha Vantage endpoint.
	DefaultBaseURL = "https://www.alphavantage.co"
	// DefaultOutputSize asks for the full daily history so older dividends stay visible.
	DefaultOutputSize = "full"
)

// Config holds configuration for the Alpha Vantage API client.
type Config struct {
	APIKey     string        // API key for authentication
	BaseURL    string        // Base URL for the API (e.g., "https://www.alphavantage.co")
	Timeout    time.Duration // HTTP request timeout
	OutputSize string        // "full" or "compact", daily series only
}

// LoadConfig loads Alpha Vantage configuration from environment variables.
// ALPHA_VANTAGE_KEY wins over the shorter AV_KEY.
func LoadConfig() Config {
	key := os.Getenv("ALPHA_VANTAGE_KEY")
	if key == "" {
		key = os.Getenv("AV_KEY")
	}
	base := os.Getenv("ALPHA_VANTAGE_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	size := os.Getenv("ALPHA_VANTAGE_OUTPUTSIZE")
	if size != "compact" {
		size = DefaultOutputSize
	}
	return Config{
		APIKey:     key,
		BaseURL:    base,
		Timeout:    durationEnv("ALPHA_VANTAGE_TIMEOUT", 10*time.Second),
		OutputSize: size,
	}
}

func durationEnv(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
