// Package di provides dependency injection factories for creating application components.
package di

import (
	"fmt"

	"dividend_backend/internal/app/config"
	"dividend_backend/internal/feature/dividend/adapters"
	"dividend_backend/internal/feature/dividend/usecase"
	"dividend_backend/internal/platform/externalapi/alphavantage"
	"dividend_backend/internal/platform/externalapi/finnhub"
	httpx "dividend_backend/internal/platform/http"
)

var alphaVantageVariants = map[string]adapters.AlphaVantageVariant{
	config.ProviderAlphaVantageMonthly:  adapters.MonthlyVariant,
	config.ProviderAlphaVantageDaily:    adapters.DailyVariant,
	config.ProviderAlphaVantageOverview: adapters.OverviewVariant,
}

// NewDividendProvider creates the provider selected by name, reading its API config from the environment.
func NewDividendProvider(name string) (usecase.DividendProvider, error) {
	if name == config.ProviderFinnhub {
		cfg := finnhub.LoadConfig()
		return adapters.NewFinnhubProvider(finnhub.NewClient(cfg, httpx.NewHTTPClient(cfg.Timeout))), nil
	}
	variant, ok := alphaVantageVariants[name]
	if !ok {
		return nil, fmt.Errorf("unknown dividend provider %q", name)
	}
	cfg := alphavantage.LoadConfig()
	return adapters.NewAlphaVantageProvider(alphavantage.NewClient(cfg, httpx.NewHTTPClient(cfg.Timeout)), variant), nil
}
