package di

import (
	"dividend_backend/internal/app/config"
	"dividend_backend/internal/platform/externalapi/alphavantage"
	"dividend_backend/internal/platform/externalapi/finnhub"
	"dividend_backend/internal/platform/http/handler"
)

// NewEnvReport summarises key presence and the active backends for /envcheck.
func NewEnvReport(cfg *config.Config, cacheBackend string) handler.EnvReport {
	return handler.NewEnvReport(
		alphavantage.LoadConfig().APIKey,
		finnhub.LoadConfig().APIKey,
		cfg.Dividend.Provider,
		cacheBackend,
		cfg.Server.Env,
	)
}
