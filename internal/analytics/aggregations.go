package analytics

import (
	"math"
	"slices"
	"time"

	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	topDeclineCodes = 10
	topProcessors   = 3
)

// round2 is multiply-round-divide, not banker's rounding. Dashboards compare
// against these exact values.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func ComputeMetrics(transactions []domain.Transaction) domain.OverviewResponse {
	total := len(transactions)

	approved := 0
	amount := decimal.Zero
	for _, t := range transactions {
		if t.Status == domain.TransactionStatusApproved {
			approved++
		}
		amount = amount.Add(decimal.NewFromFloat(t.Amount))
	}
	declined := total - approved

	return domain.OverviewResponse{
		Total:        total,
		Approved:     approved,
		Declined:     declined,
		ApprovalRate: round2(percent(approved, total)),
		DeclineRate:  round2(percent(declined, total)),
		TotalAmount:  amount.Round(2).InexactFloat64(),
	}
}

type statusCounts struct {
	approved int
	declined int
}

// AggregateBreakdown groups by dimension and sorts groups by volume, keeping
// first-seen order among equal totals.
func AggregateBreakdown(transactions []domain.Transaction, dimension domain.Dimension) []domain.BreakdownItem {
	key := keyFor(dimension)

	var order []string
	groups := make(map[string]*statusCounts)
	for _, t := range transactions {
		k := key(t)
		g, ok := groups[k]
		if !ok {
			g = &statusCounts{}
			groups[k] = g
			order = append(order, k)
		}
		if t.Status == domain.TransactionStatusApproved {
			g.approved++
		} else {
			g.declined++
		}
	}

	items := make([]domain.BreakdownItem, 0, len(order))
	for _, label := range order {
		g := groups[label]
		total := g.approved + g.declined
		declineRate := percent(g.declined, total)
		items = append(items, domain.BreakdownItem{
			Label:        label,
			Total:        total,
			Approved:     g.approved,
			Declined:     g.declined,
			DeclineRate:  round2(declineRate),
			ApprovalRate: round2(100 - declineRate),
		})
	}

	slices.SortStableFunc(items, func(a, b domain.BreakdownItem) int {
		return b.Total - a.Total
	})

	return items
}

// AggregateTimeSeries builds one daily series per group. Every group shares
// the same date axis, spanning the first to the last transaction day with
// zero-filled gaps. An empty groupBy yields a single "all" group.
func AggregateTimeSeries(transactions []domain.Transaction, groupBy domain.Dimension) []domain.TimeSeriesGroup {
	if len(transactions) == 0 {
		return []domain.TimeSeriesGroup{}
	}

	first, last := transactions[0].Timestamp, transactions[0].Timestamp
	for _, t := range transactions[1:] {
		if t.Timestamp.Before(first) {
			first = t.Timestamp
		}
		if t.Timestamp.After(last) {
			last = t.Timestamp
		}
	}

	firstDay := startOfDay(first)
	days := int(startOfDay(last).Sub(firstDay)/(24*time.Hour)) + 1

	key := func(domain.Transaction) string { return allKey }
	if groupBy != "" {
		key = keyFor(groupBy)
	}

	var order []string
	buckets := make(map[string][]statusCounts)
	for _, t := range transactions {
		k := key(t)
		b, ok := buckets[k]
		if !ok {
			b = make([]statusCounts, days)
			buckets[k] = b
			order = append(order, k)
		}
		day := int(startOfDay(t.Timestamp).Sub(firstDay) / (24 * time.Hour))
		if t.Status == domain.TransactionStatusApproved {
			b[day].approved++
		} else {
			b[day].declined++
		}
	}

	groups := make([]domain.TimeSeriesGroup, 0, len(order))
	for _, k := range order {
		series := make([]domain.TimeSeriesDataPoint, days)
		for i, c := range buckets[k] {
			total := c.approved + c.declined
			series[i] = domain.TimeSeriesDataPoint{
				Date:        firstDay.AddDate(0, 0, i).Format(DateLayout),
				Total:       total,
				Declined:    c.declined,
				DeclineRate: round2(percent(c.declined, total)),
			}
		}
		groups = append(groups, domain.TimeSeriesGroup{GroupKey: k, Series: series})
	}

	return groups
}

type processorCount struct {
	name  string
	count int
}

type codeStats struct {
	code       string
	category   string
	count      int
	processors []processorCount
}

func (c *codeStats) addProcessor(name string) {
	for i := range c.processors {
		if c.processors[i].name == name {
			c.processors[i].count++
			return
		}
	}
	c.processors = append(c.processors, processorCount{name: name, count: 1})
}

func (c *codeStats) topProcessors() []string {
	ranked := slices.Clone(c.processors)
	slices.SortStableFunc(ranked, func(a, b processorCount) int {
		return b.count - a.count
	})

	names := make([]string, 0, topProcessors)
	for _, p := range ranked[:min(topProcessors, len(ranked))] {
		names = append(names, p.name)
	}
	return names
}

// AggregateDeclineCodes ranks the ten most frequent decline codes among
// declined transactions.
func AggregateDeclineCodes(transactions []domain.Transaction) []domain.DeclineCodeItem {
	var (
		stats         []*codeStats
		index         = make(map[string]*codeStats)
		totalDeclined int
	)

	for _, t := range transactions {
		if t.Status != domain.TransactionStatusDeclined {
			continue
		}
		totalDeclined++

		code := unknownKey
		if t.DeclineCode != nil {
			code = string(*t.DeclineCode)
		}

		s, ok := index[code]
		if !ok {
			category := unknownKey
			if t.DeclineCategory != nil {
				category = string(*t.DeclineCategory)
			}
			s = &codeStats{code: code, category: category}
			index[code] = s
			stats = append(stats, s)
		}
		s.count++
		s.addProcessor(string(t.Processor))
	}

	slices.SortStableFunc(stats, func(a, b *codeStats) int {
		return b.count - a.count
	})
	stats = stats[:min(topDeclineCodes, len(stats))]

	items := make([]domain.DeclineCodeItem, 0, len(stats))
	for i, s := range stats {
		var share float64
		if totalDeclined > 0 {
			share = math.Round(float64(s.count)/float64(totalDeclined)*10000) / 100
		}
		items = append(items, domain.DeclineCodeItem{
			Rank:              i + 1,
			Code:              s.code,
			Category:          s.category,
			Count:             s.count,
			PercentOfDeclines: share,
			TopProcessors:     s.topProcessors(),
		})
	}

	return items
}
