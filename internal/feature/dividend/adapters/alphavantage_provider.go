// Package adapters は配当プロバイダ（Alpha Vantage / Finnhub）の実装を提供します。
package adapters

import (
	"context"
	"fmt"
	"log/slog"

	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/feature/dividend/domain/entity"
	"dividend_backend/internal/feature/dividend/normalizer"
	"dividend_backend/internal/feature/dividend/usecase"
	"dividend_backend/internal/platform/externalapi/alphavantage"
	httpx "dividend_backend/internal/platform/http"
)

// AlphaVantageName はレスポンスの source に入る名前です。
const AlphaVantageName = "Alpha Vantage"

// alphaVantageKeyHint は APIキー未設定時にクライアントへ返す案内です。
const alphaVantageKeyHint = "Set ALPHA_VANTAGE_KEY (or AV_KEY) in the server environment."

// AlphaVantageVariant は呼び出す Alpha Vantage 関数とレスポンス形状の組です。
type AlphaVantageVariant struct {
	Function alphavantage.Function
	Shape    normalizer.Shape
}

var (
	// MonthlyVariant は月次調整済み時系列から直近の配当月を求めます。
	MonthlyVariant = AlphaVantageVariant{Function: alphavantage.MonthlyAdjusted, Shape: normalizer.ShapeMonthlySeries}
	// DailyVariant は日次調整済み時系列から直近の権利落ち日を求めます。
	DailyVariant = AlphaVantageVariant{Function: alphavantage.DailyAdjusted, Shape: normalizer.ShapeDailySeries}
	// OverviewVariant は企業概要の DividendPerShare / ExDividendDate を使います。
	OverviewVariant = AlphaVantageVariant{Function: alphavantage.Overview, Shape: normalizer.ShapeOverview}
)

// alphaVantageQuerier は alphavantage.Client のうち本アダプタが使う部分です。
type alphaVantageQuerier interface {
	HasKey() bool
	Query(ctx context.Context, fn alphavantage.Function, symbol string) (*httpx.Response, error)
}

// AlphaVantageProvider は Alpha Vantage を使う DividendProvider 実装です。
type AlphaVantageProvider struct {
	client  alphaVantageQuerier
	variant AlphaVantageVariant
}

// AlphaVantageProvider が DividendProvider を実装していることをコンパイル時に検証します。
var _ usecase.DividendProvider = (*AlphaVantageProvider)(nil)

// NewAlphaVantageProvider は AlphaVantageProvider の新しいインスタンスを生成します。
func NewAlphaVantageProvider(client *alphavantage.Client, variant AlphaVantageVariant) *AlphaVantageProvider {
	return &AlphaVantageProvider{client: client, variant: variant}
}

func (p *AlphaVantageProvider) Name() string { return AlphaVantageName }

// Ready は APIキーの有無を確認します。
func (p *AlphaVantageProvider) Ready() error {
	if !p.client.HasKey() {
		return &domain.MissingKeyError{Provider: AlphaVantageName, Hint: alphaVantageKeyHint}
	}
	return nil
}

// LatestDividend は Alpha Vantage を1回呼び、シグナル判定のあと正規化します。
//
// Alpha Vantage はクォータ超過や不正シンボルも HTTP 200 で返すため、
// ステータスより先に本文の Note / Information / Error Message を確認します。
func (p *AlphaVantageProvider) LatestDividend(ctx context.Context, ticker string) (entity.DividendRecord, error) {
	res, err := p.client.Query(ctx, p.variant.Function, ticker)
	if err != nil {
		slog.WarnContext(ctx, "alpha vantage request failed", "ticker", ticker, "function", p.variant.Function, "error", err)
		return entity.DividendRecord{}, transportError(AlphaVantageName, err)
	}

	if err := p.classify(res); err != nil {
		slog.WarnContext(ctx, "alpha vantage signalled an error", "ticker", ticker, "status", res.StatusCode, "error", err)
		return entity.DividendRecord{}, err
	}

	rec, err := normalizer.Normalize(p.variant.Shape, normalizer.Input{Ticker: ticker, Source: AlphaVantageName}, res.Body)
	if err != nil {
		return entity.DividendRecord{}, fmt.Errorf("normalize %s: %w", p.variant.Function, err)
	}
	return rec, nil
}

func (p *AlphaVantageProvider) classify(res *httpx.Response) error {
	if res.JSON == nil {
		if !res.OK() {
			return httpError(AlphaVantageName, res, "")
		}
		return malformedBody(AlphaVantageName, res)
	}
	if note, ok := stringAt(res.JSON, "$.Note"); ok {
		return &domain.ProviderError{Kind: domain.SignalRateLimited, Provider: AlphaVantageName, Detail: note}
	}
	if info, ok := stringAt(res.JSON, "$.Information"); ok {
		return &domain.ProviderError{Kind: domain.SignalRateLimited, Provider: AlphaVantageName, Detail: info}
	}
	if msg, ok := stringAt(res.JSON, `$["Error Message"]`); ok {
		return &domain.ProviderError{Kind: domain.SignalInvalidSymbol, Provider: AlphaVantageName, Detail: msg}
	}
	if !res.OK() {
		return httpError(AlphaVantageName, res, "")
	}
	if !isObject(res.JSON) {
		return malformedBody(AlphaVantageName, res)
	}
	return nil
}
