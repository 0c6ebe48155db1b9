package handlers

import (
	"net/http"

	"ledger-backend/internal/services"
	"ledger-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type StockHandler struct {
	Service *services.StockService
}

func NewStockHandler(service *services.StockService) *StockHandler {
	return &StockHandler{Service: service}
}

func (h *StockHandler) GetPositions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.Service.GetPositions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.JSON(w, http.StatusOK, positions)
}

func (h *StockHandler) GetPosition(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["product_id"]
	if productID == "" {
		http.Error(w, "Product ID required", http.StatusBadRequest)
		return
	}

	position, err := h.Service.GetPosition(r.Context(), productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.JSON(w, http.StatusOK, position)
}
