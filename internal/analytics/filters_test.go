package analytics

import (
	"testing"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/grachmannico95/decline-analytics-be/internal/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyFilters_EmptyIsNoop(t *testing.T) {
	txs := fixture()

	assert.Equal(t, txs, ApplyFilters(txs, domain.FilterParams{}))
}

func TestApplyFilters_ExactMatchFields(t *testing.T) {
	txs := fixture()

	tests := []struct {
		name   string
		params domain.FilterParams
		want   int
	}{
		{"processor", domain.FilterParams{Processor: "LatamPay"}, 2},
		{"payment method", domain.FilterParams{PaymentMethod: "pix"}, 2},
		{"country", domain.FilterParams{Country: "MX"}, 3},
		{"decline category", domain.FilterParams{DeclineCategory: "processing_error"}, 2},
		{"decline code", domain.FilterParams{DeclineCode: "insufficient_funds"}, 1},
		{"card bin", domain.FilterParams{CardBin: "411111"}, 3},
		{"unmatched card bin", domain.FilterParams{CardBin: "400001"}, 0},
		{"combined", domain.FilterParams{Processor: "Kushki", DeclineCode: "issuer_unavailable"}, 1},
		{"unknown value", domain.FilterParams{Processor: "Stripe"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, ApplyFilters(txs, tt.params), tt.want)
		})
	}
}

func TestApplyFilters_AbsentFieldsNeverMatch(t *testing.T) {
	txs := []domain.Transaction{approved(domain.ProcessorDLocal, at(1, 1))}

	assert.Empty(t, ApplyFilters(txs, domain.FilterParams{CardBin: "411111"}))
	assert.Empty(t, ApplyFilters(txs, domain.FilterParams{DeclineCode: "timeout"}))
	assert.Empty(t, ApplyFilters(txs, domain.FilterParams{DeclineCategory: "soft_decline"}))
}

func TestApplyFilters_DateBoundsAreInclusiveDays(t *testing.T) {
	txs := fixture()

	got := ApplyFilters(txs, domain.FilterParams{DateFrom: "2025-01-02", DateTo: "2025-01-04"})
	require.Len(t, got, 3)
	assert.Equal(t, at(2, 3), got[0].Timestamp)
	// 23:00 on the dateTo day is still inside the upper bound.
	assert.Equal(t, at(4, 23), got[2].Timestamp)

	assert.Len(t, ApplyFilters(txs, domain.FilterParams{DateTo: "2025-01-01"}), 2)
	assert.Len(t, ApplyFilters(txs, domain.FilterParams{DateFrom: "2025-01-05"}), 0)
}

func TestApplyFilters_EndOfDayBoundary(t *testing.T) {
	last := approved(domain.ProcessorKushki, at(3, 0).Add(-1_000_000)) // 2025-01-02 23:59:59.999
	next := approved(domain.ProcessorKushki, at(3, 0))

	got := ApplyFilters([]domain.Transaction{last, next}, domain.FilterParams{DateTo: "2025-01-02"})

	require.Len(t, got, 1)
	assert.Equal(t, last.Timestamp, got[0].Timestamp)
}

func TestApplyFilters_TimestampBounds(t *testing.T) {
	txs := fixture()

	got := ApplyFilters(txs, domain.FilterParams{DateFrom: "2025-01-04T12:00:00Z"})

	assert.Len(t, got, 2)
}

func TestApplyFilters_MalformedDatesArePermissive(t *testing.T) {
	txs := fixture()

	assert.Len(t, ApplyFilters(txs, domain.FilterParams{DateFrom: "yesterday"}), len(txs))
	assert.Len(t, ApplyFilters(txs, domain.FilterParams{DateTo: "2025-13-45"}), len(txs))
	assert.Len(t, ApplyFilters(txs, domain.FilterParams{DateFrom: "2025-01-04", DateTo: "soon"}), 2)
}

func TestApplyFilters_Narrows(t *testing.T) {
	txs := generator.NewSeeded(11).Generate()

	params := []domain.FilterParams{
		{},
		{Processor: "LatamPay"},
		{Country: "AR", PaymentMethod: "debit_card"},
		{DeclineCategory: "hard_decline"},
		{CardBin: "400002"},
		{DateFrom: "2025-01-15", DateTo: "2025-01-21"},
	}

	for _, p := range params {
		got := ApplyFilters(txs, p)
		assert.LessOrEqual(t, len(got), len(txs))
		for _, tx := range got {
			if p.Processor != "" {
				assert.Equal(t, p.Processor, string(tx.Processor))
			}
			if p.CardBin != "" {
				require.NotNil(t, tx.CardBin)
				assert.Equal(t, p.CardBin, *tx.CardBin)
			}
		}
	}
}

func TestParseDate(t *testing.T) {
	day, ok := ParseDate("2025-01-07")
	require.True(t, ok)
	assert.Equal(t, at(7, 0), day)

	day, ok = ParseDate("2025-01-07T18:30:00-03:00")
	require.True(t, ok)
	assert.Equal(t, at(7, 0), day)

	_, ok = ParseDate("07/01/2025")
	assert.False(t, ok)
}
