package domain

// Dimension names a categorical Transaction field used for grouping.
type Dimension string

const (
	DimensionProcessor       Dimension = "processor"
	DimensionPaymentMethod   Dimension = "paymentMethod"
	DimensionCountry         Dimension = "country"
	DimensionDeclineCode     Dimension = "declineCode"
	DimensionDeclineCategory Dimension = "declineCategory"
)

// BreakdownDimensions lists every dimension accepted by the breakdown view.
var BreakdownDimensions = []Dimension{
	DimensionProcessor,
	DimensionPaymentMethod,
	DimensionCountry,
	DimensionDeclineCode,
	DimensionDeclineCategory,
}

// GroupByDimensions lists the dimensions a time series may be split by.
var GroupByDimensions = []Dimension{
	DimensionProcessor,
	DimensionPaymentMethod,
	DimensionCountry,
}

func ParseBreakdownDimension(s string) (Dimension, error) {
	if s == "" {
		return DimensionProcessor, nil
	}
	for _, d := range BreakdownDimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrInvalidDimension
}

// ParseGroupBy returns the empty Dimension when s is empty, meaning a single
// ungrouped series.
func ParseGroupBy(s string) (Dimension, error) {
	if s == "" {
		return "", nil
	}
	for _, d := range GroupByDimensions {
		if string(d) == s {
			return d, nil
		}
	}
	return "", ErrInvalidGroupBy
}
