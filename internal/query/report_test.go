package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prophetofdie/shop-backoffice/internal/model"
	"github.com/prophetofdie/shop-backoffice/internal/query"
)

func TestSalesByProduct_GroupsAcrossOrders(t *testing.T) {
	engine, _ := newSeededEngine(t)

	rows, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)

	// Widget sold 3 (order 100) + 5 (order 101) = 8, Gadget 2 + 1 = 3.
	// Gizmo never appears in a line item and is omitted.
	require.Len(t, rows, 2)
	assert.Equal(t, query.SalesRow{ProductName: "Widget", TotalSoldQty: 8}, rows[0])
	assert.Equal(t, query.SalesRow{ProductName: "Gadget", TotalSoldQty: 3}, rows[1])
}

func TestSalesByProduct_TotalMatchesAllLineItems(t *testing.T) {
	engine, db := newSeededEngine(t)

	var items []model.OrderItem
	require.NoError(t, db.Find(&items).Error)
	var want int64
	for _, item := range items {
		want += int64(item.Quantity)
	}

	rows, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	var got int64
	for _, row := range rows {
		got += row.TotalSoldQty
	}
	assert.Equal(t, want, got)
}

func TestSalesByProduct_IncludesAllStatuses(t *testing.T) {
	engine, db := newSeededEngine(t)

	// NEW orders count toward the totals just like PAID and SHIPPED ones.
	require.NoError(t, db.Model(&model.Order{}).
		Where("id = ?", 101).
		Update("status", model.OrderStatusNew).Error)

	rows, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(8), rows[0].TotalSoldQty)
}

func TestSalesByProduct_TieBrokenByName(t *testing.T) {
	engine, db := newSeededEngine(t)

	// Bring Gadget up to 8 as well to force the name tie-break.
	require.NoError(t, db.Create(&model.Order{
		ID: 103, Date: date(5), Status: model.OrderStatusPaid, CustomerID: 11,
		Items: []model.OrderItem{
			{ProductID: 2, Quantity: 5, UnitPrice: 19.9},
		},
	}).Error)

	rows, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Gadget", rows[0].ProductName)
	assert.Equal(t, "Widget", rows[1].ProductName)
	assert.Equal(t, int64(8), rows[0].TotalSoldQty)
	assert.Equal(t, int64(8), rows[1].TotalSoldQty)
}

func TestSalesByProduct_EmptyDatabase(t *testing.T) {
	db := newTestDB(t)
	engine := query.NewEngine(db)

	rows, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSalesByProduct_MissingProductFails(t *testing.T) {
	engine, db := newSeededEngine(t)
	require.NoError(t, db.Delete(&model.Product{}, 1).Error)

	_, err := engine.SalesByProduct(context.Background())
	require.ErrorIs(t, err, query.ErrMissingReference)
}

func TestSalesByProduct_Idempotent(t *testing.T) {
	engine, _ := newSeededEngine(t)

	first, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	second, err := engine.SalesByProduct(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
