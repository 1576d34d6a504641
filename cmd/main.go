package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/prophetofdie/shop-backoffice/internal/handler"
	mid "github.com/prophetofdie/shop-backoffice/internal/middleware"
	"github.com/prophetofdie/shop-backoffice/internal/query"
	"github.com/prophetofdie/shop-backoffice/pkg/config"
	"github.com/prophetofdie/shop-backoffice/pkg/database"
	"github.com/prophetofdie/shop-backoffice/pkg/logger"
	"github.com/prophetofdie/shop-backoffice/prometheus"
)

func main() {
	// Load .env file if present; environment variables win otherwise
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting shop-backoffice",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	engine := query.NewEngine(database.GetDB())
	h := handler.New(engine)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.Health)

	// Read API
	e.GET("/products", h.ListProducts)
	e.GET("/customers", h.ListCustomers)
	e.GET("/orders", h.ListOrders)
	e.GET("/orders/:id", h.GetOrderDetail)
	e.GET("/reports/sales_by_product", h.SalesByProduct)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
