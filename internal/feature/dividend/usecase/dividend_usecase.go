// Package usecase は配当検索のビジネスロジックを実装します。
package usecase

import (
	"context"
	"log/slog"
	"time"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

// DividendProvider は外部データプロバイダから直近の配当を取得する抽象です。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type DividendProvider interface {
	// Name はレスポンスの source に入るプロバイダ名を返します。
	Name() string
	// Ready は上流を呼ぶ前に設定（APIキー）を検証します。
	// キーが無い場合は domain.ErrMissingAPIKey をラップしたエラーを返します。
	Ready() error
	// LatestDividend は正規化済みティッカーの直近配当を取得します。
	LatestDividend(ctx context.Context, ticker string) (entity.DividendRecord, error)
}

// DividendCache はティッカー単位のTTLキャッシュです。
// Get は storedAt からTTL以内のエントリだけを返します。
type DividendCache interface {
	Get(ctx context.Context, key string) (entity.DividendRecord, bool)
	Put(ctx context.Context, key string, rec entity.DividendRecord, storedAt time.Time)
}

// Option は dividendUsecase の任意設定です。
type Option func(*dividendUsecase)

// WithClock は現在時刻の取得関数を差し替えます（テスト用）。
func WithClock(now func() time.Time) Option {
	return func(u *dividendUsecase) { u.now = now }
}

// dividendUsecase は配当検索のユースケースを定義します。
type dividendUsecase struct {
	provider DividendProvider
	cache    DividendCache
	now      func() time.Time
}

// NewDividendUsecase は dividendUsecase の新しいインスタンスを生成します。
// cache が nil の場合はキャッシュを使わず毎回プロバイダを呼びます。
func NewDividendUsecase(provider DividendProvider, cache DividendCache, opts ...Option) *dividendUsecase {
	u := &dividendUsecase{provider: provider, cache: cache, now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ProviderName は設定されているプロバイダ名を返します。
func (u *dividendUsecase) ProviderName() string {
	return u.provider.Name()
}

// Ready はプロバイダの設定（APIキー）が揃っているかを返します。
func (u *dividendUsecase) Ready() error {
	return u.provider.Ready()
}

// GetLatestDividend は raw ティッカーの直近配当を返します。
// 2番目の戻り値はキャッシュヒットかどうかです。
//
// 順序: キー検証 → ティッカー正規化 → キャッシュ → プロバイダ → キャッシュ保存。
// キー検証を先に行うため、設定不備はティッカーの内容に関係なく報告されます。
// エラーはキャッシュしません。
func (u *dividendUsecase) GetLatestDividend(ctx context.Context, raw string) (entity.DividendRecord, bool, error) {
	if err := u.Ready(); err != nil {
		return entity.DividendRecord{}, false, err
	}

	ticker, err := entity.NormalizeTicker(raw)
	if err != nil {
		return entity.DividendRecord{}, false, err
	}

	if u.cache != nil {
		if rec, ok := u.cache.Get(ctx, ticker); ok {
			slog.DebugContext(ctx, "dividend cache hit", "ticker", ticker)
			return rec, true, nil
		}
	}

	rec, err := u.provider.LatestDividend(ctx, ticker)
	if err != nil {
		return entity.DividendRecord{}, false, err
	}

	now := u.now()
	rec.Ticker = ticker
	rec.FetchedAt = now
	if rec.Source == "" {
		rec.Source = u.provider.Name()
	}

	if u.cache != nil {
		u.cache.Put(ctx, ticker, rec, now)
	}
	return rec, false, nil
}
