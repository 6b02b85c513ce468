package adapters

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/normalizer"
	"dividend_backend/internal/feature/dividend/usecase"
	"dividend_backend/internal/platform/externalapi/finnhub"
	httpx "dividend_backend/internal/platform/http"
)

// FinnhubName はレスポンスの source に入る名前です。
const FinnhubName = "Finnhub"

const finnhubKeyHint = "Set FINNHUB_API_KEY in the server environment."

// finnhubRateLimitNote は 429 の本文にメッセージが無い場合の既定値です。
const finnhubRateLimitNote = "API limit reached. Please try again later."

type finnhubFetcher interface {
	HasKey() bool
	Dividends(ctx context.Context, symbol string) (*httpx.Response, error)
}

// FinnhubProvider は Finnhub /stock/dividend を使う DividendProvider 実装です。
type FinnhubProvider struct {
	client finnhubFetcher
}

var _ usecase.DividendProvider = (*FinnhubProvider)(nil)

// NewFinnhubProvider は FinnhubProvider の新しいインスタンスを生成します。
func NewFinnhubProvider(client *finnhub.Client) *FinnhubProvider {
	return &FinnhubProvider{client: client}
}

func (p *FinnhubProvider) Name() string { return FinnhubName }

func (p *FinnhubProvider) Ready() error {
	if !p.client.HasKey() {
		return &domain.MissingKeyError{Provider: FinnhubName, Hint: finnhubKeyHint}
	}
	return nil
}

// LatestDividend は配当イベント配列を取得し、最新のイベントを返します。
func (p *FinnhubProvider) LatestDividend(ctx context.Context, ticker string) (entity.DividendRecord, error) {
	res, err := p.client.Dividends(ctx, ticker)
	if err != nil {
		slog.WarnContext(ctx, "finnhub request failed", "ticker", ticker, "error", err)
		return entity.DividendRecord{}, transportError(FinnhubName, err)
	}

	if err := classifyFinnhub(res, ticker); err != nil {
		slog.WarnContext(ctx, "finnhub signalled an error", "ticker", ticker, "status", res.StatusCode, "error", err)
		return entity.DividendRecord{}, err
	}

	rec, err := normalizer.Normalize(normalizer.ShapeEvents, normalizer.Input{Ticker: ticker, Source: FinnhubName}, res.Body)
	if err != nil {
		return entity.DividendRecord{}, fmt.Errorf("normalize finnhub dividends: %w", err)
	}
	return rec, nil
}

// classifyFinnhub は {"error": "..."} 形式とステータスからシグナルを判定します。
func classifyFinnhub(res *httpx.Response, ticker string) error {
	msg, hasMsg := stringAt(res.JSON, "$.error")
	lower := strings.ToLower(msg)

	switch {
	case res.StatusCode == http.StatusTooManyRequests, hasMsg && strings.Contains(lower, "limit"):
		if !hasMsg {
			msg = finnhubRateLimitNote
		}
		return &domain.ProviderError{Kind: domain.SignalRateLimited, Provider: FinnhubName, Detail: msg}
	case hasMsg && strings.Contains(lower, "symbol"):
		return &domain.ProviderError{Kind: domain.SignalInvalidSymbol, Provider: FinnhubName, Detail: msg}
	case !res.OK():
		return httpError(FinnhubName, res, msg)
	case hasMsg:
		return httpError(FinnhubName, res, msg)
	case res.JSON == nil:
		return malformedBody(FinnhubName, res)
	}
	// Finnhub は該当なしを {} で返すことがある
	if m, ok := res.JSON.(map[string]any); ok && len(m) == 0 {
		return fmt.Errorf("%w for %s (source: %s)", domain.ErrNoDividend, ticker, FinnhubName)
	}
	if _, ok := res.JSON.([]any); !ok {
		return malformedBody(FinnhubName, res)
	}
	return nil
}
