package middleware

import (
	"github.com/google/uuid"
	"github.com/grachmannico95/decline-analytics-be/pkg/logger"
	"github.com/labstack/echo/v4"
)

const TraceHeader = "X-Trace-ID"

// RequestID propagates the caller's trace ID, minting one when absent, so
// every log line of a request can be correlated.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(TraceHeader, traceID)

			return next(c)
		}
	}
}
