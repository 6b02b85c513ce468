package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dividend_backend/internal/app/config"
	"dividend_backend/internal/app/di"
	"dividend_backend/internal/app/router"
	"dividend_backend/internal/feature/dividend/transport/handler"
	"dividend_backend/internal/feature/dividend/usecase"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		slog.Info(".env not found; using system environment variables")
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.Log.Level)})))
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Provider
	provider, err := di.NewDividendProvider(cfg.Dividend.Provider)
	if err != nil {
		slog.Error("failed to create dividend provider", "error", err)
		os.Exit(1)
	}
	if err := provider.Ready(); err != nil {
		slog.Warn("dividend provider is not configured; lookups will answer 500", "provider", provider.Name(), "error", err)
	}

	// Cache
	dc := di.NewDividendCache(ctx, cfg)
	defer dc.Close()

	// Usecase
	dividendUC := usecase.NewDividendUsecase(provider, dc.Cache)

	// Handler
	dividendH := handler.NewDividendHandler(dividendUC)

	// ルータ生成
	engine := router.NewRouter(dividendH, router.Options{
		AllowOrigins: cfg.CORS.AllowOrigins,
		EnvReport:    di.NewEnvReport(cfg, dc.Backend),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr, "provider", cfg.Dividend.Provider,
			"cache_backend", dc.Backend, "cache_ttl", cfg.Dividend.CacheTTL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	// graceful shutdown
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
