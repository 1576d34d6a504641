package query

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/prophetofdie/shop-backoffice/internal/model"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

// SalesRow is one line of the sales-by-product report.
type SalesRow struct {
	ProductName  string `json:"product_name"`
	TotalSoldQty int64  `json:"total_sold_qty"`
}

// SalesByProduct sums sold quantity per product across the line items of all
// orders, regardless of order status. Products that never appear in a line
// item are omitted. Rows come back sorted by quantity descending, product
// name ascending. A line item whose product no longer exists fails the
// report with ErrMissingReference.
func (e *Engine) SalesByProduct(ctx context.Context) ([]SalesRow, error) {
	defer prometheus.TrackDBOperation("sales_aggregate")(time.Now())

	type productTotal struct {
		ProductID uint
		Total     int64
	}

	var totals []productTotal
	err := e.db.WithContext(ctx).
		Model(&model.OrderItem{}).
		Select("product_id, SUM(quantity) AS total").
		Group("product_id").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("aggregate sales: %w", err)
	}
	if len(totals) == 0 {
		return []SalesRow{}, nil
	}

	ids := make([]uint, 0, len(totals))
	for _, t := range totals {
		ids = append(ids, t.ProductID)
	}

	var products []model.Product
	if err := e.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("resolve product names: %w", err)
	}
	names := make(map[uint]string, len(products))
	for _, p := range products {
		names[p.ID] = p.Name
	}

	rows := make([]SalesRow, 0, len(totals))
	for _, t := range totals {
		name, ok := names[t.ProductID]
		if !ok {
			return nil, fmt.Errorf("sales report product %d: %w", t.ProductID, ErrMissingReference)
		}
		rows = append(rows, SalesRow{ProductName: name, TotalSoldQty: t.Total})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalSoldQty != rows[j].TotalSoldQty {
			return rows[i].TotalSoldQty > rows[j].TotalSoldQty
		}
		return rows[i].ProductName < rows[j].ProductName
	})
	return rows, nil
}
