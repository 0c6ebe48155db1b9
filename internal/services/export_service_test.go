package services_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-backend/internal/config"
	"ledger-backend/internal/models"
	"ledger-backend/internal/services"
)

func TestExportService_RenderCSV(t *testing.T) {
	statement := &models.Statement{
		AccountID: "c1",
		Entries: []models.LedgerEntry{
			{ID: "a", Date: "2024-01-05", Type: models.EntryTypeInvoice, Reference: "INV-000001", Description: "Invoice INV-000001", Debit: 1000},
			{ID: "b", Date: "2024-01-10", Type: models.EntryTypeReceipt, Reference: "REC-01", Description: "Payment REC-01", Credit: 600},
		},
		Balances: map[string]float64{"a": 1000, "b": 400},
		Summary:  models.StatementSummary{TotalDebit: 1000, TotalCredit: 600, ClosingBalance: 400, EntryCount: 2},
	}

	svc := services.NewExportService(&config.Config{})
	data, err := svc.RenderCSV(statement)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	// Header + 2 entries + totals
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Date", "Type", "Reference", "Description", "Debit", "Credit", "Balance"}, rows[0])
	assert.Equal(t, []string{"2024-01-05", "INVOICE", "INV-000001", "Invoice INV-000001", "1000.00", "0.00", "1000.00"}, rows[1])
	assert.Equal(t, "400.00", rows[2][6])
	assert.Equal(t, "Total", rows[3][3])
	assert.Equal(t, "400.00", rows[3][6])
}

func TestExportService_ArchiveDisabledWithoutBucket(t *testing.T) {
	svc := services.NewExportService(&config.Config{})

	key, err := svc.Archive(context.Background(), "c1", []byte("data"))
	require.NoError(t, err)
	assert.Empty(t, key)
}
