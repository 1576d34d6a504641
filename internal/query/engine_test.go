package query_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/prophetofdie/shop-backoffice/internal/model"
	"github.com/prophetofdie/shop-backoffice/internal/query"
	"github.com/prophetofdie/shop-backoffice/pkg/config"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

func TestMain(m *testing.M) {
	// Metric vectors are package globals; register them once for all tests.
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "query_test"},
	})
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// One connection only: every :memory: connection is its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Order{},
		&model.OrderItem{},
	))
	return db
}

func date(day int) time.Time {
	return time.Date(2025, time.March, day, 12, 0, 0, 0, time.UTC)
}

// seedShop loads a small consistent data set:
//
//	products: 1 Widget (A1), 2 Gadget (B2), 3 Gizmo (C3, never sold)
//	customers: 10 Ivan Petrov, 11 Maria Sidorova
//	orders: 100 PAID Ivan (3x Widget), 101 NEW Maria (5x Widget, 2x Gadget),
//	        102 SHIPPED Ivan (1x Gadget)
func seedShop(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&[]model.Product{
		{ID: 1, SKU: "A1", Name: "Widget", Price: 9.99, Stock: 5},
		{ID: 2, SKU: "B2", Name: "Gadget", Price: 19.9, Stock: 50},
		{ID: 3, SKU: "C3", Name: "Gizmo", Price: 49.0, Stock: 30},
	}).Error)

	require.NoError(t, db.Create(&[]model.Customer{
		{ID: 10, FullName: "Ivan Petrov", Email: "ivan@example.com"},
		{ID: 11, FullName: "Maria Sidorova", Email: "maria@example.com"},
	}).Error)

	require.NoError(t, db.Create(&[]model.Order{
		{
			ID: 100, Date: date(1), Status: model.OrderStatusPaid, CustomerID: 10,
			Items: []model.OrderItem{
				{ProductID: 1, Quantity: 3, UnitPrice: 9.99},
			},
		},
		{
			ID: 101, Date: date(2), Status: model.OrderStatusNew, CustomerID: 11,
			Items: []model.OrderItem{
				{ProductID: 1, Quantity: 5, UnitPrice: 8.99},
				{ProductID: 2, Quantity: 2, UnitPrice: 19.9},
			},
		},
		{
			ID: 102, Date: date(3), Status: model.OrderStatusShipped, CustomerID: 10,
			Items: []model.OrderItem{
				{ProductID: 2, Quantity: 1, UnitPrice: 19.9},
			},
		},
	}).Error)
}

func newSeededEngine(t *testing.T) (*query.Engine, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	seedShop(t, db)
	return query.NewEngine(db), db
}
