package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	dividendhandler "dividend_backend/internal/feature/dividend/transport/handler"
	"dividend_backend/internal/platform/http/handler"
	"dividend_backend/internal/platform/http/middleware"
)

// Options are the router settings that come from configuration.
type Options struct {
	AllowOrigins []string
	EnvReport    handler.EnvReport
}

func NewRouter(dividend *dividendhandler.DividendHandler, opts Options) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.Recovery(), middleware.RequestLogger(), cors.New(corsConfig(opts.AllowOrigins)))
	r.NoRoute(middleware.NotFound)
	r.NoMethod(middleware.MethodNotAllowed)

	// 導通確認用
	handler.RegisterHealth(r)

	// 設定診断（キーの有無と長さのみ）
	envcheck := handler.EnvCheck(opts.EnvReport)
	r.GET("/envcheck", envcheck)
	r.GET("/api/envcheck", envcheck)

	// 配当検索
	for _, path := range []string{"/dividende", "/api/dividende", "/dividend"} {
		r.GET(path, dividend.GetLatestDividend)
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
