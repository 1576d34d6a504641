package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prophetofdie/shop-backoffice/pkg/logger"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// ListCustomers handles retrieving all customers
func (h *Handler) ListCustomers(c echo.Context) error {
	log := logger.FromContext(c)

	rows, err := h.engine.ListCustomers(c.Request().Context())
	if err != nil {
		log.Error("Failed to list customers", zap.Error(err))
		prometheus.RecordQueryOperation("list_customers", "error")
		return errorResponse(c, err, "Failed to retrieve customers")
	}

	prometheus.RecordQueryOperation("list_customers", "ok")
	log.Info("Customers retrieved successfully", zap.Int("count", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
