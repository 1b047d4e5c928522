package analytics

import (
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
)

const DateLayout = "2006-01-02"

// ParseDate accepts a calendar date or an RFC 3339 timestamp and returns the
// start of that day in UTC.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range []string{DateLayout, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return startOfDay(t), true
		}
	}
	return time.Time{}, false
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

type predicate struct {
	params  domain.FilterParams
	from    time.Time
	to      time.Time
	hasFrom bool
	hasTo   bool
}

func newPredicate(params domain.FilterParams) predicate {
	p := predicate{params: params}

	// Unparseable bounds are dropped rather than rejected.
	if params.DateFrom != "" {
		p.from, p.hasFrom = ParseDate(params.DateFrom)
	}
	if params.DateTo != "" {
		if day, ok := ParseDate(params.DateTo); ok {
			p.to = day.Add(24*time.Hour - time.Millisecond)
			p.hasTo = true
		}
	}

	return p
}

func (p predicate) match(t domain.Transaction) bool {
	f := p.params

	if f.PaymentMethod != "" && string(t.PaymentMethod) != f.PaymentMethod {
		return false
	}
	if f.Processor != "" && string(t.Processor) != f.Processor {
		return false
	}
	if f.Country != "" && string(t.Country) != f.Country {
		return false
	}
	if f.DeclineCategory != "" && (t.DeclineCategory == nil || string(*t.DeclineCategory) != f.DeclineCategory) {
		return false
	}
	if f.DeclineCode != "" && (t.DeclineCode == nil || string(*t.DeclineCode) != f.DeclineCode) {
		return false
	}
	if f.CardBin != "" && (t.CardBin == nil || *t.CardBin != f.CardBin) {
		return false
	}
	if p.hasFrom && t.Timestamp.Before(p.from) {
		return false
	}
	if p.hasTo && t.Timestamp.After(p.to) {
		return false
	}

	return true
}

// ApplyFilters returns the transactions matching every non-empty field of
// params. An empty FilterParams returns the input unchanged.
func ApplyFilters(transactions []domain.Transaction, params domain.FilterParams) []domain.Transaction {
	if params == (domain.FilterParams{}) {
		return transactions
	}

	p := newPredicate(params)

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if p.match(t) {
			filtered = append(filtered, t)
		}
	}

	return filtered
}
