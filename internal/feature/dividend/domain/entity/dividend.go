// Package entity defines the domain models for the dividend feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentDelay is the offset used to estimate a payment date from an ex-dividend date.
const PaymentDelay = 21 * 24 * time.Hour

// DividendRecord is the canonical result of a dividend lookup, independent of the provider.
// Absent values are nil pointers or empty strings.
type DividendRecord struct {
	Ticker        string           // Normalized ticker (e.g., "AAPL", "NOVO-B.CO")
	Amount        *decimal.Decimal // Dividend per share, never negative
	Currency      string           // ISO 4217 code
	ExDate        *time.Time       // Ex-dividend date
	PaymentDate   *time.Time       // Payment date
	DeclaredDate  *time.Time       // Declaration date
	RecordDate    *time.Time       // Record date
	LatestMonth   *time.Time       // Month row of a monthly adjusted series
	DividendYield *decimal.Decimal // Trailing yield as reported by the provider
	Source        string           // Provider name (e.g., "Alpha Vantage")
	FetchedAt     time.Time        // Time of retrieval from the provider

	// CurrencyInferred is set when Currency comes from the ticker suffix, not the provider.
	CurrencyInferred bool
	// PaymentDateEstimated is set when PaymentDate is ExDate + PaymentDelay.
	PaymentDateEstimated bool
}

// HasDate reports whether at least one calendar field is present.
func (r DividendRecord) HasDate() bool {
	return r.ExDate != nil || r.PaymentDate != nil || r.DeclaredDate != nil ||
		r.RecordDate != nil || r.LatestMonth != nil
}

// SetAmount stores a non-negative amount and drops negative ones.
func (r *DividendRecord) SetAmount(d decimal.Decimal) {
	if d.IsNegative() {
		r.Amount = nil
		return
	}
	r.Amount = &d
}

// ApplyCurrency keeps a valid provider currency and falls back to the ticker suffix otherwise.
func (r *DividendRecord) ApplyCurrency(reported string) {
	if code, ok := NormalizeCurrency(reported); ok {
		r.Currency = code
		r.CurrencyInferred = false
		return
	}
	r.Currency = InferCurrency(r.Ticker)
	r.CurrencyInferred = true
}

// EstimatePaymentDate fills PaymentDate from ExDate when the provider gave no payment date.
func (r *DividendRecord) EstimatePaymentDate() {
	if r.PaymentDate != nil || r.ExDate == nil {
		return
	}
	est := r.ExDate.Add(PaymentDelay)
	r.PaymentDate = &est
	r.PaymentDateEstimated = true
}
