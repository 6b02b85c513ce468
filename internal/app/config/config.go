// Package config loads application settings from an optional YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Provider names accepted by DIVIDEND_PROVIDER.
const (
	ProviderAlphaVantageMonthly  = "alphavantage-monthly"
	ProviderAlphaVantageDaily    = "alphavantage-daily"
	ProviderAlphaVantageOverview = "alphavantage-overview"
	ProviderFinnhub              = "finnhub"
)

// Cache backends accepted by DIVIDEND_CACHE_BACKEND.
const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Dividend DividendConfig `yaml:"dividend"`
	Redis    RedisConfig    `yaml:"redis"`
	CORS     CORSConfig     `yaml:"cors"`
}

type ServerConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type DividendConfig struct {
	Provider     string        `yaml:"provider"`
	CacheTTL     time.Duration `yaml:"cache_ttl"`
	CacheBackend string        `yaml:"cache_backend"`
}

type RedisConfig struct {
	Host      string `yaml:"host"`
	Port      string `yaml:"port"`
	Password  string `yaml:"password"`
	Namespace string `yaml:"namespace"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Default returns the settings used when neither file nor environment say otherwise.
func Default() Config {
	return Config{
		Server: ServerConfig{Port: 8080, Env: "development"},
		Log:    LogConfig{Level: "info"},
		Dividend: DividendConfig{
			Provider:     ProviderAlphaVantageMonthly,
			CacheTTL:     60 * time.Second,
			CacheBackend: CacheMemory,
		},
		Redis: RedisConfig{Host: "localhost", Port: "6379", Namespace: "dividend"},
		CORS:  CORSConfig{AllowOrigins: []string{"*"}},
	}
}

// Load reads path when it is non-empty, then applies environment overrides and validates.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv uses CONFIG_FILE as the optional YAML path.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p <= 0 || p > 65535 {
			return fmt.Errorf("invalid PORT: %q", v)
		}
		cfg.Server.Port = p
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("DIVIDEND_PROVIDER"); v != "" {
		cfg.Dividend.Provider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("DIVIDEND_CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid DIVIDEND_CACHE_TTL: %q", v)
		}
		cfg.Dividend.CacheTTL = d
	}
	if v := os.Getenv("DIVIDEND_CACHE_BACKEND"); v != "" {
		cfg.Dividend.CacheBackend = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		cfg.Redis.Host = v
	}
	if v := os.Getenv("REDIS_PORT"); v != "" {
		cfg.Redis.Port = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_NAMESPACE"); v != "" {
		cfg.Redis.Namespace = v
	}
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		cfg.CORS.AllowOrigins = splitCSV(v)
	}
	return nil
}

func (c *Config) validate() error {
	var errs []error
	switch c.Dividend.Provider {
	case ProviderAlphaVantageMonthly, ProviderAlphaVantageDaily, ProviderAlphaVantageOverview, ProviderFinnhub:
	default:
		errs = append(errs, fmt.Errorf("unknown dividend provider %q", c.Dividend.Provider))
	}
	switch c.Dividend.CacheBackend {
	case CacheMemory, CacheRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Dividend.CacheBackend))
	}
	if c.Dividend.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache ttl must be positive, got %s", c.Dividend.CacheTTL))
	}
	return errors.Join(errs...)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Env, "production")
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
