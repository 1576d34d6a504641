package query_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prophetofdie/shop-backoffice/internal/query"
)

func TestListProducts_ReturnsWholeCatalog(t *testing.T) {
	engine, _ := newSeededEngine(t)

	rows, err := engine.ListProducts(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, query.ProductRow{ID: 1, SKU: "A1", Name: "Widget", Price: 9.99, Stock: 5}, rows[0])
	assert.Equal(t, "B2", rows[1].SKU)
	assert.Equal(t, "C3", rows[2].SKU)
}

func TestListProducts_Empty(t *testing.T) {
	engine := query.NewEngine(newTestDB(t))

	rows, err := engine.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListCustomers_ReturnsAll(t *testing.T) {
	engine, _ := newSeededEngine(t)

	rows, err := engine.ListCustomers(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, query.CustomerRow{ID: 10, FullName: "Ivan Petrov", Email: "ivan@example.com"}, rows[0])
	assert.Equal(t, query.CustomerRow{ID: 11, FullName: "Maria Sidorova", Email: "maria@example.com"}, rows[1])
}
