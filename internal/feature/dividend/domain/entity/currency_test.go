package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

func TestInferCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ticker string
		want   string
	}{
		{"AAPL", "USD"},
		{"BRK.B", "USD"},
		{"VOD.L", "GBP"},
		{"OR.PA", "EUR"},
		{"RY.TO", "CAD"},
		{"BHP.AX", "AUD"},
		{"VOLV-B.ST", "SEK"},
		{"EQNR.OL", "NOK"},
		{"NOVO-B.CO", "DKK"},
		{"SAP.DE", "EUR"},
		{"BMW.F", "EUR"},
		{"NESN.SW", "CHF"},
		{"7203.T", "JPY"},
		{"TRAILING.", "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.ticker, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, entity.InferCurrency(tt.ticker))
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"USD", "USD", true},
		{" eur ", "EUR", true},
		{"dkk", "DKK", true},
		{"", "", false},
		{"None", "", false},
		{"XYZ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := entity.NormalizeCurrency(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
