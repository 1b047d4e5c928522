package domain

import "errors"

var (
	ErrInvalidDimension   = errors.New("invalid breakdown dimension")
	ErrInvalidGroupBy     = errors.New("invalid time series grouping")
	ErrDatasetUnavailable = errors.New("transaction dataset unavailable")
)
