package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "LOG_LEVEL", "DIVIDEND_PROVIDER", "DIVIDEND_CACHE_TTL", "DIVIDEND_CACHE_BACKEND",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_NAMESPACE", "CORS_ALLOW_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ProviderAlphaVantageMonthly, cfg.Dividend.Provider)
	assert.Equal(t, 60*time.Second, cfg.Dividend.CacheTTL)
	assert.Equal(t, CacheMemory, cfg.Dividend.CacheBackend)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
  env: production
dividend:
  provider: finnhub
  cache_ttl: 1h
  cache_backend: redis
redis:
  host: cache
cors:
  allow_origins: ["https://app.example.com"]
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ProviderFinnhub, cfg.Dividend.Provider)
	assert.Equal(t, time.Hour, cfg.Dividend.CacheTTL)
	assert.Equal(t, CacheRedis, cfg.Dividend.CacheBackend)
	assert.Equal(t, "cache", cfg.Redis.Host)
	assert.Equal(t, "6379", cfg.Redis.Port, "unset yaml keys keep defaults")

	t.Setenv("PORT", "8081")
	t.Setenv("DIVIDEND_PROVIDER", " AlphaVantage-Daily ")
	t.Setenv("DIVIDEND_CACHE_TTL", "3600s")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, ProviderAlphaVantageDaily, cfg.Dividend.Provider)
	assert.Equal(t, time.Hour, cfg.Dividend.CacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowOrigins)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "http"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "bad ttl", env: map[string]string{"DIVIDEND_CACHE_TTL": "sixty"}},
		{name: "zero ttl", env: map[string]string{"DIVIDEND_CACHE_TTL": "0s"}},
		{name: "unknown provider", env: map[string]string{"DIVIDEND_PROVIDER": "yahoo"}},
		{name: "unknown backend", env: map[string]string{"DIVIDEND_CACHE_BACKEND": "memcached"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
