package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"ledger-backend/internal/models"
	"ledger-backend/internal/services"
	"ledger-backend/internal/timeutil"
	"ledger-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type StatementHandler struct {
	Service *services.StatementService
	Export  *services.ExportService
}

func NewStatementHandler(service *services.StatementService, export *services.ExportService) *StatementHandler {
	return &StatementHandler{Service: service, Export: export}
}

// filterFromQuery reads the engine's filter surface from query params:
// q, from, to, type.
func filterFromQuery(r *http.Request, accountID string) models.LedgerFilter {
	q := r.URL.Query()
	f := models.LedgerFilter{
		AccountID: accountID,
		Query:     q.Get("q"),
		Type:      models.EntryType(strings.ToUpper(q.Get("type"))),
	}
	// Malformed bounds are dropped rather than passed through; entry dates
	// themselves are never repaired.
	if from := q.Get("from"); timeutil.ValidISODate(from) {
		f.FromDate = from
	}
	if to := q.Get("to"); timeutil.ValidISODate(to) {
		f.ToDate = to
	}
	return f
}

func (h *StatementHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]
	if accountID == "" {
		http.Error(w, "Account ID required", http.StatusBadRequest)
		return
	}

	statement, err := h.Service.GetStatement(r.Context(), accountID, filterFromQuery(r, accountID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	utils.JSON(w, http.StatusOK, statement)
}

// ExportStatement streams the statement as CSV. With ?archive=true and a
// configured bucket, the artifact is also uploaded to object storage.
func (h *StatementHandler) ExportStatement(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["account_id"]
	if accountID == "" {
		http.Error(w, "Account ID required", http.StatusBadRequest)
		return
	}

	statement, err := h.Service.GetStatement(r.Context(), accountID, filterFromQuery(r, accountID))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	data, err := h.Export.RenderCSV(statement)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("archive") == "true" {
		if key, err := h.Export.Archive(r.Context(), accountID, data); err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		} else if key != "" {
			w.Header().Set("X-Archive-Key", key)
		}
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="statement-%s.csv"`, accountID))
	w.Write(data)
}
