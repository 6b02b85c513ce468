package normalizer

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

const (
	monthlySeriesKey = "Monthly Adjusted Time Series"
	dailySeriesKey   = "Time Series (Daily)"
	dividendField    = "dividend amount"
)

// fromTimeSeries picks the most recent row whose dividend amount is strictly positive.
// Keys are ISO dates, so a descending string sort is a descending date sort.
func fromTimeSeries(in Input, body []byte, seriesKey string, monthly bool) (entity.DividendRecord, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(cleanKeys(body), &top); err != nil {
		return entity.DividendRecord{}, malformed(in, body, err)
	}
	raw, ok := top[seriesKey]
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return entity.DividendRecord{}, empty(in, "no \""+seriesKey+"\" in response")
	}

	var series map[string]map[string]string
	if err := json.Unmarshal(raw, &series); err != nil {
		return entity.DividendRecord{}, malformed(in, body, err)
	}

	dates := make([]string, 0, len(series))
	for d := range series {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	for _, d := range dates {
		amount, err := decimal.NewFromString(strings.TrimSpace(series[d][dividendField]))
		if err != nil || !amount.IsPositive() {
			continue
		}
		date := entity.ParseDate(d)
		if date == nil {
			continue
		}

		rec := entity.DividendRecord{
			Ticker:    in.Ticker,
			Source:    in.Source,
			FetchedAt: in.FetchedAt,
		}
		rec.SetAmount(amount)
		if monthly {
			rec.LatestMonth = date
		} else {
			rec.ExDate = date
		}
		// the series carries no currency field
		rec.ApplyCurrency("")
		return rec, nil
	}
	return entity.DividendRecord{}, noDividend(in)
}
