package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prophetofdie/shop-backoffice/pkg/logger"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// ListProducts handles retrieving the whole product catalog
func (h *Handler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)

	rows, err := h.engine.ListProducts(c.Request().Context())
	if err != nil {
		log.Error("Failed to list products", zap.Error(err))
		prometheus.RecordQueryOperation("list_products", "error")
		return errorResponse(c, err, "Failed to retrieve products")
	}

	prometheus.RecordQueryOperation("list_products", "ok")
	log.Info("Products retrieved successfully", zap.Int("count", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
