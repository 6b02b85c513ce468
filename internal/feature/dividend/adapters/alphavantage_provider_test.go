package adapters_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dividend_backend/internal/feature/dividend/adapters"
	"dividend_backend/internal/feature/dividend/domain"
	"dividend_backend/internal/platform/externalapi/alphavantage"
)

func newAlphaVantage(t *testing.T, status int, body string, variant adapters.AlphaVantageVariant) (*adapters.AlphaVantageProvider, *atomic.Int32) {
	t.Helper()

	calls := &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, string(variant.Function), r.URL.Query().Get("function"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	client := alphavantage.NewClient(alphavantage.Config{APIKey: "demo", BaseURL: server.URL}, server.Client())
	return adapters.NewAlphaVantageProvider(client, variant), calls
}

func TestAlphaVantageProvider_LatestDividend_Monthly(t *testing.T) {
	t.Parallel()

	body := `{
		"Meta Data": {"2. Symbol": "AAPL"},
		"Monthly Adjusted Time Series": {
			"2023-05-01": {"7. dividend amount": "0.2400"},
			"2023-08-01": {"7. dividend amount": "0.0000"}
		}
	}`
	p, calls := newAlphaVantage(t, http.StatusOK, body, adapters.MonthlyVariant)

	rec, err := p.LatestDividend(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, "0.24", rec.Amount.String())
	assert.Equal(t, "USD", rec.Currency)
	assert.Equal(t, adapters.AlphaVantageName, rec.Source)
	require.NotNil(t, rec.LatestMonth)
	assert.Equal(t, "2023-05-01", rec.LatestMonth.Format("2006-01-02"))
}

func TestAlphaVantageProvider_LatestDividend_Overview(t *testing.T) {
	t.Parallel()

	body := `{"Symbol": "IBM", "Currency": "USD", "DividendPerShare": "6.67", "DividendYield": "0.0386",
		"DividendDate": "2024-06-10", "ExDividendDate": "2024-05-09"}`
	p, _ := newAlphaVantage(t, http.StatusOK, body, adapters.OverviewVariant)

	rec, err := p.LatestDividend(context.Background(), "IBM")
	require.NoError(t, err)
	assert.Equal(t, "6.67", rec.Amount.String())
	assert.Equal(t, "2024-06-10", rec.PaymentDate.Format("2006-01-02"))
	assert.False(t, rec.PaymentDateEstimated)
	assert.False(t, rec.CurrencyInferred)
}

func TestAlphaVantageProvider_Signals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantErr    error
		wantKind   domain.SignalKind
		wantDetail string
		wantStatus int
		wantRaw    string
	}{
		{
			name:       "note means rate limited",
			status:     http.StatusOK,
			body:       `{"Note": "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute."}`,
			wantErr:    domain.ErrRateLimited,
			wantKind:   domain.SignalRateLimited,
			wantDetail: "Thank you for using Alpha Vantage! Our standard API call frequency is 5 calls per minute.",
		},
		{
			name:       "information means rate limited",
			status:     http.StatusOK,
			body:       `{"Information": "We have detected your API key and our standard API rate limit is 25 requests per day."}`,
			wantErr:    domain.ErrRateLimited,
			wantKind:   domain.SignalRateLimited,
			wantDetail: "We have detected your API key and our standard API rate limit is 25 requests per day.",
		},
		{
			name:       "error message means invalid symbol",
			status:     http.StatusOK,
			body:       `{"Error Message": "Invalid API call. Please retry or visit the documentation for TIME_SERIES_MONTHLY_ADJUSTED."}`,
			wantErr:    domain.ErrInvalidSymbol,
			wantKind:   domain.SignalInvalidSymbol,
			wantDetail: "Invalid API call. Please retry or visit the documentation for TIME_SERIES_MONTHLY_ADJUSTED.",
		},
		{
			name:       "html with 200 is malformed",
			status:     http.StatusOK,
			body:       `<html>maintenance</html>`,
			wantErr:    domain.ErrMalformedResponse,
			wantKind:   domain.SignalMalformed,
			wantStatus: http.StatusOK,
			wantRaw:    `<html>maintenance</html>`,
		},
		{
			name:       "array body is malformed",
			status:     http.StatusOK,
			body:       `[1,2,3]`,
			wantErr:    domain.ErrMalformedResponse,
			wantKind:   domain.SignalMalformed,
			wantStatus: http.StatusOK,
			wantRaw:    `[1,2,3]`,
		},
		{
			name:       "503 without signal is an http error",
			status:     http.StatusServiceUnavailable,
			body:       `upstream unavailable`,
			wantErr:    domain.ErrUpstreamHTTP,
			wantKind:   domain.SignalHTTPError,
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "missing series is empty",
			status:     http.StatusOK,
			body:       `{}`,
			wantErr:    domain.ErrNoDividend,
			wantKind:   domain.SignalEmpty,
			wantDetail: `no "Monthly Adjusted Time Series" in response`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, _ := newAlphaVantage(t, tt.status, tt.body, adapters.MonthlyVariant)
			_, err := p.LatestDividend(context.Background(), "AAPL")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var pe *domain.ProviderError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.wantKind, pe.Kind)
			assert.Equal(t, tt.wantDetail, pe.Detail)
			assert.Equal(t, tt.wantStatus, pe.Status)
			assert.Equal(t, tt.wantRaw, pe.Raw)
		})
	}
}

func TestAlphaVantageProvider_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	client := alphavantage.NewClient(alphavantage.Config{APIKey: "demo", BaseURL: base}, http.DefaultClient)
	p := adapters.NewAlphaVantageProvider(client, adapters.MonthlyVariant)

	_, err := p.LatestDividend(context.Background(), "AAPL")
	assert.ErrorIs(t, err, domain.ErrUpstreamTransport)
}

func TestAlphaVantageProvider_Ready(t *testing.T) {
	t.Parallel()

	p := adapters.NewAlphaVantageProvider(alphavantage.NewClient(alphavantage.Config{}, http.DefaultClient), adapters.DailyVariant)
	err := p.Ready()
	require.ErrorIs(t, err, domain.ErrMissingAPIKey)

	var mk *domain.MissingKeyError
	require.True(t, errors.As(err, &mk))
	assert.Contains(t, mk.Hint, "ALPHA_VANTAGE_KEY")

	p = adapters.NewAlphaVantageProvider(alphavantage.NewClient(alphavantage.Config{APIKey: "k"}, http.DefaultClient), adapters.DailyVariant)
	assert.NoError(t, p.Ready())
}
