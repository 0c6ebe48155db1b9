package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ledger-backend/internal/cache"
	"ledger-backend/internal/config"
	"ledger-backend/internal/erpclient"
	"ledger-backend/internal/handlers"
	"ledger-backend/internal/health"
	h "ledger-backend/internal/http"
	"ledger-backend/internal/middleware"
	"ledger-backend/internal/services"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (statements recomputed on every request)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Upstream ERP store client
	client := erpclient.New(
		cfg.Upstream.BaseURL,
		cfg.Upstream.APIToken,
		cfg.Upstream.CompanyID,
		time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second,
	)
	log.Printf("[Upstream] Using ERP store at %s", cfg.Upstream.BaseURL)

	// Initialize health checker
	healthChecker := health.NewHealthChecker(client)

	// Initialize services
	statementService := services.NewStatementService(
		client,
		time.Duration(cfg.Cache.StatementTTLSeconds)*time.Second,
	)
	stockService := services.NewStockService(
		client,
		cfg.Stock.MovementWindow,
		time.Duration(cfg.Cache.StockTTLSeconds)*time.Second,
	)
	exportService := services.NewExportService(cfg)

	// Initialize handlers
	statementHandler := handlers.NewStatementHandler(statementService, exportService)
	stockHandler := handlers.NewStockHandler(stockService)
	systemHandler := handlers.NewSystemHandler()
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router with middleware
	router := h.NewRouter(statementHandler, stockHandler, systemHandler, healthHandler)
	corsMiddleware := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(
		middleware.MetricsMiddleware(
			middleware.RequestLogging(
				corsMiddleware(router))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	go func() {
		log.Printf("Server running on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
