package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ledger-backend/internal/handlers"
)

func NewRouter(
	statementHandler *handlers.StatementHandler,
	stockHandler *handlers.StockHandler,
	systemHandler *handlers.SystemHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Statements
	statementsAPI := r.PathPrefix("/api/statements").Subrouter()
	statementsAPI.HandleFunc("/{account_id}", statementHandler.GetStatement).Methods("GET")
	statementsAPI.HandleFunc("/{account_id}/export", statementHandler.ExportStatement).Methods("GET")

	// Stock positions
	stockAPI := r.PathPrefix("/api/stock").Subrouter()
	stockAPI.HandleFunc("/positions", stockHandler.GetPositions).Methods("GET")
	stockAPI.HandleFunc("/positions/{product_id}", stockHandler.GetPosition).Methods("GET")

	// System stats for the ops dashboard
	r.HandleFunc("/api/system/stats", systemHandler.GetStats).Methods("GET")

	return r
}
