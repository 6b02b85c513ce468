package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EnvReport は /envcheck が返す設定診断です。キーの値そのものは含めません。
type EnvReport struct {
	HasAlphaVantageKey bool   `json:"hasAlphaVantageKey"`
	AlphaKeyLength     int    `json:"alphaKeyLength"`
	HasFinnhubKey      bool   `json:"hasFinnhubKey"`
	FinnhubKeyLength   int    `json:"finnhubKeyLength"`
	Provider           string `json:"provider"`
	CacheBackend       string `json:"cacheBackend"`
	AppEnv             string `json:"appEnv"`
}

// NewEnvReport はキーの有無と長さだけを記録した EnvReport を生成します。
func NewEnvReport(alphaKey, finnhubKey, provider, cacheBackend, appEnv string) EnvReport {
	return EnvReport{
		HasAlphaVantageKey: alphaKey != "",
		AlphaKeyLength:     len(alphaKey),
		HasFinnhubKey:      finnhubKey != "",
		FinnhubKeyLength:   len(finnhubKey),
		Provider:           provider,
		CacheBackend:       cacheBackend,
		AppEnv:             appEnv,
	}
}

// EnvCheck は起動時に確定した EnvReport を返すハンドラーを生成します。
func EnvCheck(report EnvReport) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.JSON(http.StatusOK, report)
	}
}
