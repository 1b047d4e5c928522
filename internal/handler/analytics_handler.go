package handler

import (
	"errors"
	"net/http"

	"github.com/grachmannico95/decline-analytics-be/internal/analytics"
	"github.com/grachmannico95/decline-analytics-be/internal/domain"
	"github.com/grachmannico95/decline-analytics-be/internal/service"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

type AnalyticsHandler struct {
	service service.AnalyticsService
	logger  *logger.Logger
}

func NewAnalyticsHandler(service service.AnalyticsService, log *logger.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		logger:  log,
	}
}

// filterParams reads every filter the overview, time series and decline code
// views accept.
func (h *AnalyticsHandler) filterParams(c echo.Context) domain.FilterParams {
	params := domain.FilterParams{
		PaymentMethod:   c.QueryParam("paymentMethod"),
		Processor:       c.QueryParam("processor"),
		Country:         c.QueryParam("country"),
		DeclineCategory: c.QueryParam("declineCategory"),
		DeclineCode:     c.QueryParam("declineCode"),
		CardBin:         c.QueryParam("cardBin"),
		DateFrom:        c.QueryParam("dateFrom"),
		DateTo:          c.QueryParam("dateTo"),
	}
	h.warnMalformedDates(c, params)
	return params
}

// Malformed dates do not fail the request; the bound is simply ignored.
func (h *AnalyticsHandler) warnMalformedDates(c echo.Context, params domain.FilterParams) {
	for name, value := range map[string]string{"dateFrom": params.DateFrom, "dateTo": params.DateTo} {
		if value == "" {
			continue
		}
		if _, ok := analytics.ParseDate(value); !ok {
			h.logger.Warn(c.Request().Context(), "Ignoring malformed date filter",
				"param", name,
				"value", value,
			)
		}
	}
}

func (h *AnalyticsHandler) GetOverview(c echo.Context) error {
	ctx := c.Request().Context()

	overview, err := h.service.Overview(ctx, h.filterParams(c))
	if err != nil {
		return h.internalError(c, "failed to compute overview", err)
	}

	return c.JSON(http.StatusOK, overview)
}

func (h *AnalyticsHandler) GetBreakdown(c echo.Context) error {
	ctx := c.Request().Context()

	dimension, err := domain.ParseBreakdownDimension(c.QueryParam("dimension"))
	if err != nil {
		return h.badRequest(c, err, "dimension", c.QueryParam("dimension"))
	}

	// The breakdown view filters on the coarse dimensions only.
	params := domain.FilterParams{
		PaymentMethod:   c.QueryParam("paymentMethod"),
		Processor:       c.QueryParam("processor"),
		Country:         c.QueryParam("country"),
		DeclineCategory: c.QueryParam("declineCategory"),
		DateFrom:        c.QueryParam("dateFrom"),
		DateTo:          c.QueryParam("dateTo"),
	}
	h.warnMalformedDates(c, params)

	items, err := h.service.Breakdown(ctx, params, dimension)
	if err != nil {
		return h.internalError(c, "failed to compute breakdown", err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *AnalyticsHandler) GetTimeSeries(c echo.Context) error {
	ctx := c.Request().Context()

	groupBy, err := domain.ParseGroupBy(c.QueryParam("groupBy"))
	if err != nil {
		return h.badRequest(c, err, "groupBy", c.QueryParam("groupBy"))
	}

	groups, err := h.service.TimeSeries(ctx, h.filterParams(c), groupBy)
	if err != nil {
		return h.internalError(c, "failed to compute time series", err)
	}

	return c.JSON(http.StatusOK, groups)
}

func (h *AnalyticsHandler) GetDeclineCodes(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.service.DeclineCodes(ctx, h.filterParams(c))
	if err != nil {
		return h.internalError(c, "failed to compute decline codes", err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *AnalyticsHandler) badRequest(c echo.Context, err error, param, value string) error {
	h.logger.Warn(c.Request().Context(), "Rejected analytics request",
		"param", param,
		"value", value,
		"error", err,
	)
	return c.JSON(http.StatusBadRequest, map[string]string{
		"error": err.Error(),
	})
}

func (h *AnalyticsHandler) internalError(c echo.Context, msg string, err error) error {
	h.logger.Error(c.Request().Context(), "Failed to serve analytics request",
		"path", c.Path(),
		"error", err,
	)

	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrDatasetUnavailable) {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, map[string]string{
		"error": msg,
	})
}
