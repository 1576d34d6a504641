package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prophetofdie/shop-backoffice/pkg/logger"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// SalesByProduct handles the sales-by-product report. The report is
// recomputed on every call; nothing is materialized.
func (h *Handler) SalesByProduct(c echo.Context) error {
	log := logger.FromContext(c)
	defer prometheus.TrackReport("sales_by_product")(time.Now())

	rows, err := h.engine.SalesByProduct(c.Request().Context())
	if err != nil {
		log.Error("Failed to generate sales report", zap.Error(err))
		prometheus.RecordQueryOperation("sales_by_product", "error")
		return errorResponse(c, err, "Failed to generate report")
	}

	prometheus.RecordQueryOperation("sales_by_product", "ok")
	prometheus.RecordReportRows("sales_by_product", float64(len(rows)))
	log.Info("Sales report generated", zap.Int("rows", len(rows)))
	return c.JSON(http.StatusOK, rows)
}
