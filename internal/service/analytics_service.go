package service

import (
	"context"

	"github.com/grachmannico95/decline-analytics-be/internal/analytics"
	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
)

const (
	ViewOverview     = "overview"
	ViewBreakdown    = "breakdown"
	ViewTimeSeries   = "timeseries"
	ViewDeclineCodes = "decline_codes"
)

type AnalyticsService interface {
	Overview(ctx context.Context, params domain.FilterParams) (*domain.OverviewResponse, error)
	Breakdown(ctx context.Context, params domain.FilterParams, dimension domain.Dimension) ([]domain.BreakdownItem, error)
	TimeSeries(ctx context.Context, params domain.FilterParams, groupBy domain.Dimension) ([]domain.TimeSeriesGroup, error)
	DeclineCodes(ctx context.Context, params domain.FilterParams) ([]domain.DeclineCodeItem, error)
}

type analyticsService struct {
	source domain.TransactionSource
	logger *logger.Logger
}

func NewAnalyticsService(source domain.TransactionSource, log *logger.Logger) AnalyticsService {
	return &analyticsService{
		source: source,
		logger: log,
	}
}

func (s *analyticsService) filtered(ctx context.Context, params domain.FilterParams) ([]domain.Transaction, error) {
	transactions, err := s.source.GetTransactions(ctx)
	if err != nil {
		s.logger.Error(ctx, "Failed to load transactions",
			"error", err,
		)
		return nil, err
	}

	filtered := analytics.ApplyFilters(transactions, params)

	s.logger.Debug(ctx, "Transactions filtered",
		"filters", params,
		"total", len(transactions),
		"matched", len(filtered),
	)

	return filtered, nil
}

func (s *analyticsService) Overview(ctx context.Context, params domain.FilterParams) (*domain.OverviewResponse, error) {
	ctx = logger.WithView(ctx, ViewOverview)

	transactions, err := s.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	metrics := analytics.ComputeMetrics(transactions)
	return &metrics, nil
}

func (s *analyticsService) Breakdown(ctx context.Context, params domain.FilterParams, dimension domain.Dimension) ([]domain.BreakdownItem, error) {
	ctx = logger.WithView(ctx, ViewBreakdown)

	transactions, err := s.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	items := analytics.AggregateBreakdown(transactions, dimension)

	s.logger.Debug(ctx, "Breakdown computed",
		"dimension", dimension,
		"groups", len(items),
	)

	return items, nil
}

func (s *analyticsService) TimeSeries(ctx context.Context, params domain.FilterParams, groupBy domain.Dimension) ([]domain.TimeSeriesGroup, error) {
	ctx = logger.WithView(ctx, ViewTimeSeries)

	transactions, err := s.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	groups := analytics.AggregateTimeSeries(transactions, groupBy)

	s.logger.Debug(ctx, "Time series computed",
		"group_by", groupBy,
		"groups", len(groups),
	)

	return groups, nil
}

func (s *analyticsService) DeclineCodes(ctx context.Context, params domain.FilterParams) ([]domain.DeclineCodeItem, error) {
	ctx = logger.WithView(ctx, ViewDeclineCodes)

	transactions, err := s.filtered(ctx, params)
	if err != nil {
		return nil, err
	}

	return analytics.AggregateDeclineCodes(transactions), nil
}
