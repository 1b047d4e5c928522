package analytics

import "github.com/grachmannico95/decline-analytics-be/internal/domain"

const (
	noneKey    = "none"
	unknownKey = "unknown"
	allKey     = "all"
)

type keyFunc func(domain.Transaction) string

var dimensionKeys = map[domain.Dimension]keyFunc{
	domain.DimensionProcessor: func(t domain.Transaction) string {
		return string(t.Processor)
	},
	domain.DimensionPaymentMethod: func(t domain.Transaction) string {
		return string(t.PaymentMethod)
	},
	domain.DimensionCountry: func(t domain.Transaction) string {
		return string(t.Country)
	},
	domain.DimensionDeclineCode: func(t domain.Transaction) string {
		if t.DeclineCode == nil {
			return noneKey
		}
		return string(*t.DeclineCode)
	},
	domain.DimensionDeclineCategory: func(t domain.Transaction) string {
		if t.DeclineCategory == nil {
			return noneKey
		}
		return string(*t.DeclineCategory)
	},
}

// keyFor returns the field extractor for a dimension. Dimensions outside the
// table collapse every transaction into a single "unknown" group.
func keyFor(d domain.Dimension) keyFunc {
	if fn, ok := dimensionKeys[d]; ok {
		return fn
	}
	return func(domain.Transaction) string { return unknownKey }
}
