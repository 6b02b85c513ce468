package normalizer

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

// overviewResponse is the subset of the OVERVIEW payload used for dividends.
type overviewResponse struct {
	Symbol           string `json:"Symbol"`
	Currency         string `json:"Currency"`
	DividendPerShare string `json:"DividendPerShare"`
	DividendYield    string `json:"DividendYield"`
	DividendDate     string `json:"DividendDate"`
	ExDividendDate   string `json:"ExDividendDate"`
}

// fromOverview builds a record straight from the company overview fields.
// DividendPerShare and DividendYield both zero (or absent) means the company pays no dividend.
func fromOverview(in Input, body []byte) (entity.DividendRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return entity.DividendRecord{}, malformed(in, body, err)
	}
	// unknown symbols get an empty object
	if len(fields) == 0 {
		return entity.DividendRecord{}, empty(in, "empty overview")
	}
	var ov overviewResponse
	if err := json.Unmarshal(body, &ov); err != nil {
		return entity.DividendRecord{}, malformed(in, body, err)
	}

	perShare, hasPerShare := parseDecimal(ov.DividendPerShare)
	yield, hasYield := parseDecimal(ov.DividendYield)
	if perShare.IsZero() && yield.IsZero() {
		return entity.DividendRecord{}, noDividend(in)
	}

	rec := entity.DividendRecord{
		Ticker:      in.Ticker,
		Source:      in.Source,
		FetchedAt:   in.FetchedAt,
		ExDate:      entity.ParseDate(ov.ExDividendDate),
		PaymentDate: entity.ParseDate(ov.DividendDate),
	}
	if hasPerShare {
		rec.SetAmount(perShare)
	}
	if hasYield && !yield.IsNegative() {
		rec.DividendYield = &yield
	}
	rec.ApplyCurrency(ov.Currency)
	return rec, nil
}

// parseDecimal reads provider numbers; "None", "-" and blanks are absent and read as zero.
func parseDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "none", "null", "-", "n/a":
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
