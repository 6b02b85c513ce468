// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthPath は導通確認用のパスです。
const HealthPath = "/healthz"

// RegisterHealth は GET/HEAD/OPTIONS の導通確認ルートを登録します。
// どのメソッドでも Cache-Control: no-store を付けます。
func RegisterHealth(r gin.IRoutes) {
	r.GET(HealthPath, noStore, healthOK)
	r.HEAD(HealthPath, noStore, statusOnly(http.StatusOK))
	r.OPTIONS(HealthPath, noStore, statusOnly(http.StatusNoContent))
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Next()
}

func healthOK(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusOnly(code int) gin.HandlerFunc {
	return func(c *gin.Context) { c.Status(code) }
}
