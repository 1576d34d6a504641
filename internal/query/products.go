package query

import (
	"context"
	"fmt"
	"time"

	"github.com/prophetofdie/shop-backoffice/internal/model"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// ProductRow is the API projection of a catalog product.
type ProductRow struct {
	ID    uint    `json:"id"`
	SKU   string  `json:"sku"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// CustomerRow is the API projection of a customer.
type CustomerRow struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// ListProducts returns the whole catalog ordered by ID.
func (e *Engine) ListProducts(ctx context.Context) ([]ProductRow, error) {
	defer prometheus.TrackDBOperation("list_products")(time.Now())

	var products []model.Product
	if err := e.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	rows := make([]ProductRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductRow{
			ID:    p.ID,
			SKU:   p.SKU,
			Name:  p.Name,
			Price: p.Price,
			Stock: p.Stock,
		})
	}
	return rows, nil
}

// ListCustomers returns all customers ordered by ID.
func (e *Engine) ListCustomers(ctx context.Context) ([]CustomerRow, error) {
	defer prometheus.TrackDBOperation("list_customers")(time.Now())

	var customers []model.Customer
	if err := e.db.WithContext(ctx).Order("id ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerRow{ID: c.ID, FullName: c.FullName, Email: c.Email})
	}
	return rows, nil
}
