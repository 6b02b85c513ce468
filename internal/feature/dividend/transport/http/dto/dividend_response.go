// Package dto は配当エンドポイントのレスポンスDTOを定義します。
package dto

import (
	"encoding/json"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

// FetchedAtLayout は fetchedAt のフォーマットです（ミリ秒付きUTC）。
const FetchedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// DividendResponse は直近配当のレスポンスDTOです。
// amount / exDate / paymentDate は不明な場合も null として出力します。
type DividendResponse struct {
	Ticker               string       `json:"ticker"`
	Amount               *json.Number `json:"amount"`   // 1株あたり配当（小数をそのまま出力）
	Currency             *string      `json:"currency"` // ISO 4217
	ExDate               *string      `json:"exDate"`
	PaymentDate          *string      `json:"paymentDate"`
	DeclaredDate         *string      `json:"declaredDate,omitempty"`
	RecordDate           *string      `json:"recordDate,omitempty"`
	LatestMonth          *string      `json:"latestMonth,omitempty"` // 月次系列で配当が調整された月
	DividendYield        *json.Number `json:"dividendYield,omitempty"`
	CurrencyInferred     bool         `json:"currencyInferred,omitempty"`
	PaymentDateEstimated bool         `json:"paymentDateEstimated,omitempty"`
	Source               string       `json:"source"`
	FetchedAt            string       `json:"fetchedAt"`
	Cached               bool         `json:"cached,omitempty"`
}

// NewDividendResponse はエンティティをレスポンスDTOに変換します。
func NewDividendResponse(rec entity.DividendRecord, cached bool) DividendResponse {
	out := DividendResponse{
		Ticker:               rec.Ticker,
		ExDate:               entity.FormatDate(rec.ExDate),
		PaymentDate:          entity.FormatDate(rec.PaymentDate),
		DeclaredDate:         entity.FormatDate(rec.DeclaredDate),
		RecordDate:           entity.FormatDate(rec.RecordDate),
		LatestMonth:          entity.FormatDate(rec.LatestMonth),
		CurrencyInferred:     rec.CurrencyInferred,
		PaymentDateEstimated: rec.PaymentDateEstimated,
		Source:               rec.Source,
		FetchedAt:            rec.FetchedAt.UTC().Format(FetchedAtLayout),
		Cached:               cached,
	}
	if rec.Amount != nil {
		n := json.Number(rec.Amount.String())
		out.Amount = &n
	}
	if rec.DividendYield != nil {
		n := json.Number(rec.DividendYield.String())
		out.DividendYield = &n
	}
	if rec.Currency != "" {
		cur := rec.Currency
		out.Currency = &cur
	}
	return out
}
