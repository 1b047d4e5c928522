package generator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/shopspring/decimal"
)

type Generator struct {
	src Source
	seq int
}

func New(src Source) *Generator {
	return &Generator{src: src}
}

// NewSeeded returns a generator backed by a PCG source. The same seed always
// yields the same dataset.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Generate builds the full synthetic window, sorted ascending by timestamp.
func (g *Generator) Generate() []domain.Transaction {
	g.seq = 0

	transactions := make([]domain.Transaction, 0, WindowDays*maxPerDay)
	for day := 0; day < WindowDays; day++ {
		count := minPerDay + g.src.IntN(maxPerDay-minPerDay)
		for i := 0; i < count; i++ {
			transactions = append(transactions, g.transaction(day))
		}
	}

	slices.SortStableFunc(transactions, func(a, b domain.Transaction) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	return transactions
}

func (g *Generator) transaction(day int) domain.Transaction {
	g.seq++

	dayStart := WindowStart.AddDate(0, 0, day)
	offset := time.Duration(g.src.Int64N(int64(24*time.Hour/time.Millisecond))) * time.Millisecond

	processor := Choose(g.src, processorVolume)
	country := pick(g.src, countries)
	method := pick(g.src, countryMethods[country])

	tx := domain.Transaction{
		ID:            fmt.Sprintf("txn_%06d", g.seq),
		Timestamp:     dayStart.Add(offset).UTC(),
		PaymentMethod: method,
		Processor:     processor,
		Country:       country,
		Currency:      countryCurrency[country],
	}

	badBIN := false
	if method.IsCard() {
		var bin string
		if g.src.Float64() < badBINProbability {
			bin = pick(g.src, BadBINs)
			badBIN = true
		} else {
			bin = fmt.Sprintf("4%05d", 10000+g.src.IntN(89999))
		}
		tx.CardBin = &bin
	}

	if g.src.Float64() < declineRate(processor, day, badBIN) {
		tx.Status = domain.TransactionStatusDeclined

		table := normalDeclineCodes
		if day >= CrisisStartDay {
			table = crisisDeclineCodes
		}
		code := Choose(g.src, table)
		category, _ := code.Category()
		tx.DeclineCode = &code
		tx.DeclineCategory = &category
	} else {
		tx.Status = domain.TransactionStatusApproved
	}

	tx.Amount = decimal.NewFromFloat(minAmount + g.src.Float64()*(maxAmount-minAmount)).
		Round(2).
		InexactFloat64()

	return tx
}

// declineRate is the chance that a single transaction is declined.
func declineRate(p domain.Processor, day int, badBIN bool) float64 {
	rate := DeclineProbability(p, day)
	if badBIN {
		rate = binAdjusted(rate)
	}
	return rate
}

// binAdjusted applies the bad-BIN multiplier, capped at maxDeclineRate.
func binAdjusted(rate float64) float64 {
	return min(maxDeclineRate, rate*badBINMultiplier)
}

// DeclineProbability is the base chance that a processor declines on a given
// day of the window, before any BIN adjustment. LatamPay stays broken for the
// whole window; the others degrade after day 10 and hold the crisis rate from
// CrisisStartDay on.
func DeclineProbability(p domain.Processor, day int) float64 {
	base := processorBaseDecline[p]
	if p == domain.ProcessorLatamPay {
		return base
	}

	switch {
	case day <= rampStartDay:
		return base
	case day < CrisisStartDay:
		return base * (1 + rampStep*float64(day-rampStartDay))
	default:
		return base * crisisMultiplier
	}
}
