package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

func TestDividendRecord_ApplyCurrency(t *testing.T) {
	t.Parallel()

	t.Run("explicit currency wins over suffix", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{Ticker: "NOVO-B.CO"}
		r.ApplyCurrency("usd")
		assert.Equal(t, "USD", r.Currency)
		assert.False(t, r.CurrencyInferred)
	})

	t.Run("missing currency is inferred from suffix", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{Ticker: "NOVO-B.CO"}
		r.ApplyCurrency("")
		assert.Equal(t, "DKK", r.Currency)
		assert.True(t, r.CurrencyInferred)
	})

	t.Run("unknown currency code is inferred", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{Ticker: "VOD.L"}
		r.ApplyCurrency("None")
		assert.Equal(t, "GBP", r.Currency)
		assert.True(t, r.CurrencyInferred)
	})
}

func TestDividendRecord_EstimatePaymentDate(t *testing.T) {
	t.Parallel()

	ex := time.Date(2024, 2, 8, 0, 0, 0, 0, time.UTC)
	pay := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("estimated from ex-date", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{ExDate: &ex}
		r.EstimatePaymentDate()
		require.NotNil(t, r.PaymentDate)
		assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), *r.PaymentDate)
		assert.True(t, r.PaymentDateEstimated)
	})

	t.Run("provider payment date is kept", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{ExDate: &ex, PaymentDate: &pay}
		r.EstimatePaymentDate()
		assert.Equal(t, pay, *r.PaymentDate)
		assert.False(t, r.PaymentDateEstimated)
	})

	t.Run("nothing to estimate without ex-date", func(t *testing.T) {
		t.Parallel()
		r := entity.DividendRecord{}
		r.EstimatePaymentDate()
		assert.Nil(t, r.PaymentDate)
		assert.False(t, r.HasDate())
	})
}

func TestDividendRecord_SetAmount(t *testing.T) {
	t.Parallel()

	var r entity.DividendRecord
	r.SetAmount(decimal.RequireFromString("0.24"))
	require.NotNil(t, r.Amount)
	assert.Equal(t, "0.24", r.Amount.String())

	r.SetAmount(decimal.RequireFromString("-1"))
	assert.Nil(t, r.Amount)
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"2023-05-01", "2023-05-01"},
		{" 2023-05-01 ", "2023-05-01"},
		{"2024-02-08 00:00:00", "2024-02-08"},
		{"None", ""},
		{"-", ""},
		{"0000-00-00", ""},
		{"not a date", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got := entity.FormatDate(entity.ParseDate(tt.in))
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}
