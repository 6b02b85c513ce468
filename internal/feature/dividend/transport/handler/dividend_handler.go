// Package handler は配当フィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"

	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/transport/http/dto"
)

// DividendUsecase は配当検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type DividendUsecase interface {
	Ready() error
	GetLatestDividend(ctx context.Context, ticker string) (entity.DividendRecord, bool, error)
}

// DividendHandler は配当検索のHTTPリクエストを処理します。
type DividendHandler struct {
	uc DividendUsecase
}

// NewDividendHandler は指定されたusecaseでDividendHandlerの新しいインスタンスを生成します。
func NewDividendHandler(uc DividendUsecase) *DividendHandler {
	return &DividendHandler{uc: uc}
}

// GetLatestDividend はティッカーを受け取り、直近の配当をJSONで返します。
//
// エンドポイント例:
// GET /dividende?ticker=AAPL
func (h *DividendHandler) GetLatestDividend(c *gin.Context) {
	var ticker string
	if err := runtime.BindQueryParameter("form", true, false, "ticker", c.Request.URL.Query(), &ticker); err != nil {
		// キー不足はティッカーの形式より先に報告する
		if rerr := h.uc.Ready(); rerr != nil {
			status, body := classify(rerr)
			logFailure(c, status, rerr)
			c.JSON(status, body)
			return
		}
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid ticker parameter", Detail: err.Error()})
		return
	}

	rec, cached, err := h.uc.GetLatestDividend(c.Request.Context(), ticker)
	if err != nil {
		status, body := classify(err)
		if status == http.StatusNotFound {
			body.Ticker, _ = entity.NormalizeTicker(ticker)
		}
		logFailure(c, status, err)
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, dto.NewDividendResponse(rec, cached))
}

// classify はエラーをHTTPステータスとレスポンス本文に変換します。
func classify(err error) (int, dto.ErrorResponse) {
	var missingKey *domain.MissingKeyError
	if errors.As(err, &missingKey) {
		return http.StatusInternalServerError, dto.ErrorResponse{
			Error: missingKey.Provider + " API key is missing",
			Hint:  missingKey.Hint,
		}
	}
	if errors.Is(err, domain.ErrMissingAPIKey) {
		return http.StatusInternalServerError, dto.ErrorResponse{Error: domain.ErrMissingAPIKey.Error()}
	}
	if errors.Is(err, domain.ErrMissingTicker) {
		return http.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrMissingTicker.Error()}
	}

	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return classifyProvider(pe)
	}
	if errors.Is(err, domain.ErrNoDividend) {
		return http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNoDividend.Error()}
	}

	return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Detail: err.Error()}
}

func classifyProvider(pe *domain.ProviderError) (int, dto.ErrorResponse) {
	switch pe.Kind {
	case domain.SignalRateLimited:
		return http.StatusTooManyRequests, dto.ErrorResponse{
			Error: pe.Provider + " rate limit reached, retry in a minute",
			Note:  pe.Detail,
		}
	case domain.SignalInvalidSymbol:
		return http.StatusBadRequest, dto.ErrorResponse{
			Error:  domain.ErrInvalidSymbol.Error(),
			Detail: pe.Detail,
		}
	case domain.SignalEmpty:
		return http.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNoDividend.Error(), Detail: pe.Detail}
	case domain.SignalMalformed:
		return http.StatusBadGateway, dto.ErrorResponse{
			Error:  domain.ErrMalformedResponse.Error(),
			Status: statusPtr(pe.Status),
			Raw:    pe.Raw,
		}
	case domain.SignalHTTPError:
		return http.StatusBadGateway, dto.ErrorResponse{
			Error:  domain.ErrUpstreamHTTP.Error(),
			Status: statusPtr(pe.Status),
			Detail: pe.Detail,
		}
	case domain.SignalTransport:
		return http.StatusBadGateway, dto.ErrorResponse{Error: domain.ErrUpstreamTransport.Error(), Detail: pe.Detail}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error", Detail: pe.Error()}
	}
}

func statusPtr(s int) *int {
	if s == 0 {
		return nil
	}
	return &s
}

// logFailure は上流起因を warn、サーバ起因を error で記録します。
func logFailure(c *gin.Context, status int, err error) {
	attrs := []any{"path", c.Request.URL.Path, "status", status, "error", err}
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusBadGateway:
		slog.ErrorContext(c.Request.Context(), "dividend lookup failed", attrs...)
	case status >= http.StatusBadRequest:
		slog.WarnContext(c.Request.Context(), "dividend lookup rejected", attrs...)
	}
}
