package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// DatasetCounter reports how many transactions are materialized.
type DatasetCounter interface {
	Count() int
}

type HealthHandler struct {
	dataset DatasetCounter
}

func NewHealthHandler(dataset DatasetCounter) *HealthHandler {
	return &HealthHandler{dataset: dataset}
}

func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"timestamp":    time.Now().Format(time.RFC3339),
		"transactions": h.dataset.Count(),
	})
}
