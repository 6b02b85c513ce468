package entity

import (
	"strings"

	"github.com/Rhymond/go-money"
)

// DefaultCurrency is assumed for tickers without an exchange suffix.
const DefaultCurrency = "USD"

// suffixCurrencies maps exchange suffixes to the currency shares trade in there.
var suffixCurrencies = map[string]string{
	"L":  "GBP", // London
	"PA": "EUR", // Paris
	"AS": "EUR", // Amsterdam
	"BR": "EUR", // Brussels
	"MI": "EUR", // Milan
	"MC": "EUR", // Madrid
	"DE": "EUR", // XETRA
	"F":  "EUR", // Frankfurt
	"HE": "EUR", // Helsinki
	"TO": "CAD", // Toronto
	"V":  "CAD", // TSX Venture
	"AX": "AUD", // Sydney
	"ST": "SEK", // Stockholm
	"OL": "NOK", // Oslo
	"CO": "DKK", // Copenhagen
	"SW": "CHF", // SIX
	"T":  "JPY", // Tokyo
	"HK": "HKD", // Hong Kong
}

// InferCurrency guesses the trading currency from the ticker suffix.
// The result is advisory; unknown or missing suffixes yield DefaultCurrency.
func InferCurrency(ticker string) string {
	i := strings.LastIndex(ticker, ".")
	if i < 0 || i == len(ticker)-1 {
		return DefaultCurrency
	}
	if cur, ok := suffixCurrencies[strings.ToUpper(ticker[i+1:])]; ok {
		return cur
	}
	return DefaultCurrency
}

// NormalizeCurrency upper-cases a provider currency and checks it against the ISO 4217 table.
func NormalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	if money.GetCurrency(code) == nil {
		return "", false
	}
	return code, true
}
