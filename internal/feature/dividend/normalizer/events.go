package normalizer

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"dividend_backend/internal/feature/dividend/domain/entity"
)

// dividendEvent accepts the field names seen across event-array providers.
// Finnhub sends "date" (the ex-date), "payDate" and "declarationDate".
type dividendEvent struct {
	ExDate          string              `json:"exDate"`
	PaymentDate     string              `json:"paymentDate"`
	PayDate         string              `json:"payDate"`
	Date            string              `json:"date"`
	DeclaredDate    string              `json:"declaredDate"`
	DeclarationDate string              `json:"declarationDate"`
	RecordDate      string              `json:"recordDate"`
	Amount          decimal.NullDecimal `json:"amount"`
	Currency        string              `json:"currency"`
}

// exDate falls back to Finnhub's "date" field.
func (e dividendEvent) exDate() *time.Time {
	if d := entity.ParseDate(e.ExDate); d != nil {
		return d
	}
	return entity.ParseDate(e.Date)
}

func (e dividendEvent) paymentDate() *time.Time {
	if d := entity.ParseDate(e.PaymentDate); d != nil {
		return d
	}
	return entity.ParseDate(e.PayDate)
}

// sortKey orders by the resolved ex-date, then paymentDate; all absent sorts last.
func (e dividendEvent) sortKey() time.Time {
	if d := e.exDate(); d != nil {
		return *d
	}
	if d := e.paymentDate(); d != nil {
		return *d
	}
	return time.Time{}
}

// fromEvents sorts the events newest first and returns the head.
func fromEvents(in Input, body []byte) (entity.DividendRecord, error) {
	var events []dividendEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return entity.DividendRecord{}, malformed(in, body, err)
	}
	if len(events) == 0 {
		return entity.DividendRecord{}, noDividend(in)
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].sortKey().After(events[j].sortKey())
	})
	head := events[0]

	rec := entity.DividendRecord{
		Ticker:       in.Ticker,
		Source:       in.Source,
		FetchedAt:    in.FetchedAt,
		ExDate:       head.exDate(),
		PaymentDate:  head.paymentDate(),
		DeclaredDate: entity.ParseDate(head.DeclaredDate),
		RecordDate:   entity.ParseDate(head.RecordDate),
	}
	if rec.DeclaredDate == nil {
		rec.DeclaredDate = entity.ParseDate(head.DeclarationDate)
	}
	if head.Amount.Valid {
		rec.SetAmount(head.Amount.Decimal)
	}
	rec.ApplyCurrency(head.Currency)
	return rec, nil
}
