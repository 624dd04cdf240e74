package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "rentdesk-backend/internal/api/http"
	"rentdesk-backend/internal/clock"
	"rentdesk-backend/internal/config"
	"rentdesk-backend/internal/idgen"
	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/repository/postgres"
	"rentdesk-backend/internal/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentDesk Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	clk := clock.System()
	ids := idgen.NewUUIDGenerator()

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	productSvc := service.NewProductService(store.ProductRepository, clk, ids)
	invoiceSvc := service.NewInvoiceService(
		store.InvoiceRepository,
		store.PaymentRepository,
		emailSvc,
		cfg.Rental,
		clk,
		ids,
	)
	orderSvc := service.NewOrderService(
		store.OrderRepository,
		store.ProductRepository,
		invoiceSvc,
		emailSvc,
		cfg.Rental,
		clk,
	)
	quotationSvc := service.NewQuotationService(
		store.QuotationRepository,
		store.OrderRepository,
		emailSvc,
		cfg.Rental,
		clk,
		ids,
	)

	// Initialize HTTP handlers
	router := mux.NewRouter()
	httpapi.RegisterRoutes(router,
		httpapi.NewProductHandler(productSvc),
		httpapi.NewQuotationHandler(quotationSvc),
		httpapi.NewOrderHandler(orderSvc),
		httpapi.NewInvoiceHandler(invoiceSvc),
	)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
