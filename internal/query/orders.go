package query

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/prophetofdie/shop-backoffice/internal/model"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// OrderFilter narrows the order listing. Zero-valued fields are not applied;
// provided fields combine with AND.
type OrderFilter struct {
	Status       string
	CustomerID   uint
	CustomerName string
}

// OrderSummary is one row of the order listing.
type OrderSummary struct {
	ID         uint              `json:"id"`
	Date       time.Time         `json:"date"`
	Status     model.OrderStatus `json:"status"`
	CustomerID uint              `json:"customer_id"`
}

// OrderItemDetail is one resolved line item of an order detail view.
type OrderItemDetail struct {
	SKU         string  `json:"sku"`
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// OrderDetail is the denormalized order view: the order joined with its
// customer and the current name/SKU of every referenced product.
type OrderDetail struct {
	ID       uint              `json:"id"`
	Date     time.Time         `json:"date"`
	Status   model.OrderStatus `json:"status"`
	Customer CustomerRow       `json:"customer"`
	Items    []OrderItemDetail `json:"items"`
}

// ListOrders returns summaries of all orders matching the filter, newest
// first (date descending, ID descending as tie-break). An unknown status
// value fails with ErrInvalidFilter.
func (e *Engine) ListOrders(ctx context.Context, filter OrderFilter) ([]OrderSummary, error) {
	defer prometheus.TrackDBOperation("list_orders")(time.Now())

	q := e.db.WithContext(ctx).Model(&model.Order{})

	if filter.Status != "" {
		status, err := model.ParseOrderStatus(filter.Status)
		if err != nil {
			return nil, fmt.Errorf("status %q: %w", filter.Status, ErrInvalidFilter)
		}
		q = q.Where("status = ?", status)
	}

	if filter.CustomerID != 0 {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}

	if filter.CustomerName != "" {
		// Two-phase lookup: match customers by name first, then restrict
		// orders to those customer IDs.
		pattern := "%" + strings.ToLower(filter.CustomerName) + "%"
		sub := e.db.Model(&model.Customer{}).
			Select("id").
			Where("LOWER(full_name) LIKE ?", pattern)
		q = q.Where("customer_id IN (?)", sub)
	}

	var orders []model.Order
	if err := q.Order("date DESC").Order("id DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, OrderSummary{
			ID:         o.ID,
			Date:       o.Date,
			Status:     o.Status,
			CustomerID: o.CustomerID,
		})
	}
	return summaries, nil
}

// GetOrderDetail assembles the full view of one order. It fails with
// ErrNotFound for an unknown order ID and with ErrMissingReference when the
// customer or any referenced product cannot be resolved; no partial detail
// is ever returned.
func (e *Engine) GetOrderDetail(ctx context.Context, orderID uint) (*OrderDetail, error) {
	defer prometheus.TrackDBOperation("order_detail")(time.Now())

	var order model.Order
	err := e.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id ASC")
		}).
		First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load order %d: %w", orderID, err)
	}

	var customer model.Customer
	err = e.db.WithContext(ctx).First(&customer, order.CustomerID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %d customer %d: %w", orderID, order.CustomerID, ErrMissingReference)
	}
	if err != nil {
		return nil, fmt.Errorf("load customer %d: %w", order.CustomerID, err)
	}

	products, err := e.productsByID(ctx, order.Items)
	if err != nil {
		return nil, err
	}

	items := make([]OrderItemDetail, 0, len(order.Items))
	for _, item := range order.Items {
		product, ok := products[item.ProductID]
		if !ok {
			return nil, fmt.Errorf("order %d product %d: %w", orderID, item.ProductID, ErrMissingReference)
		}
		items = append(items, OrderItemDetail{
			SKU:         product.SKU,
			ProductName: product.Name,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		})
	}

	return &OrderDetail{
		ID:     order.ID,
		Date:   order.Date,
		Status: order.Status,
		Customer: CustomerRow{
			ID:       customer.ID,
			FullName: customer.FullName,
			Email:    customer.Email,
		},
		Items: items,
	}, nil
}

// productsByID loads the products referenced by a set of line items with a
// single IN query.
func (e *Engine) productsByID(ctx context.Context, items []model.OrderItem) (map[uint]model.Product, error) {
	if len(items) == 0 {
		return map[uint]model.Product{}, nil
	}

	seen := make(map[uint]struct{}, len(items))
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	var products []model.Product
	if err := e.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	byID := make(map[uint]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return byID, nil
}
