package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/prophetofdie/shop-backoffice/internal/query"
	"github.com/prophetofdie/shop-backoffice/pkg/logger"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// ListOrders handles retrieving order summaries with optional filtering.
// An unsupported status value is rejected with 400 rather than ignored.
func (h *Handler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)

	filter := query.OrderFilter{
		Status:       c.QueryParam("status"),
		CustomerName: c.QueryParam("customer_name"),
	}

	if raw := c.QueryParam("customer_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			log.Warn("Invalid customer_id parameter", zap.String("value", raw), zap.Error(err))
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Invalid customer_id",
			})
		}
		filter.CustomerID = uint(id)
	}

	rows, err := h.engine.ListOrders(c.Request().Context(), filter)
	if err != nil {
		log.Error("Failed to list orders",
			zap.String("status", filter.Status),
			zap.Uint("customer_id", filter.CustomerID),
			zap.String("customer_name", filter.CustomerName),
			zap.Error(err))
		prometheus.RecordQueryOperation("list_orders", "error")
		return errorResponse(c, err, "Failed to retrieve orders")
	}

	prometheus.RecordQueryOperation("list_orders", "ok")
	log.Info("Orders retrieved successfully",
		zap.Int("count", len(rows)),
		zap.String("status", filter.Status),
		zap.Uint("customer_id", filter.CustomerID),
		zap.String("customer_name", filter.CustomerName))
	return c.JSON(http.StatusOK, rows)
}

// GetOrderDetail handles retrieving the denormalized view of a single order
func (h *Handler) GetOrderDetail(c echo.Context) error {
	log := logger.FromContext(c)
	raw := c.Param("id")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		log.Warn("Invalid order id parameter", zap.String("value", raw), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid order id",
		})
	}

	detail, err := h.engine.GetOrderDetail(c.Request().Context(), uint(id))
	if err != nil {
		log.Error("Failed to assemble order detail",
			zap.Uint64("order_id", id),
			zap.Error(err))
		prometheus.RecordQueryOperation("order_detail", "error")
		return errorResponse(c, err, "Failed to retrieve order")
	}

	prometheus.RecordQueryOperation("order_detail", "ok")
	log.Info("Order detail retrieved successfully",
		zap.Uint64("order_id", id),
		zap.Int("items", len(detail.Items)))
	return c.JSON(http.StatusOK, detail)
}
