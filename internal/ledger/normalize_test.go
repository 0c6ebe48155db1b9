package ledger_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-backend/internal/ledger"
	"ledger-backend/internal/models"
)

func TestNormalizeOpening(t *testing.T) {
	t.Run("positive opening posts as debit", func(t *testing.T) {
		e, ok := ledger.NormalizeOpening(models.Account{ID: "c1", Name: "Acme", OpeningBalance: 500})
		require.True(t, ok)
		assert.Equal(t, models.EpochFloorDate, e.Date)
		assert.Equal(t, models.OrderHintOpening, e.OrderHint)
		assert.Equal(t, 500.0, e.Debit)
		assert.Zero(t, e.Credit)
	})

	t.Run("negative opening posts as credit", func(t *testing.T) {
		e, ok := ledger.NormalizeOpening(models.Account{ID: "v1", OpeningBalance: -250})
		require.True(t, ok)
		assert.Zero(t, e.Debit)
		assert.Equal(t, 250.0, e.Credit)
	})

	t.Run("zero opening emits nothing", func(t *testing.T) {
		_, ok := ledger.NormalizeOpening(models.Account{ID: "c2"})
		assert.False(t, ok)
	})

	t.Run("non-finite opening emits nothing", func(t *testing.T) {
		_, ok := ledger.NormalizeOpening(models.Account{ID: "c3", OpeningBalance: math.NaN()})
		assert.False(t, ok)
	})
}

func TestNormalizeInvoice(t *testing.T) {
	inv := models.Invoice{
		ID:            "inv1",
		InvoiceNumber: "INV-000001",
		AccountID:     "c1",
		Date:          "2024-01-05",
		Total:         1000,
		Status:        models.DocStatusActive,
	}

	t.Run("invoice without received amount posts one debit", func(t *testing.T) {
		entries := ledger.NormalizeInvoice(inv)
		require.Len(t, entries, 1)
		assert.Equal(t, 1000.0, entries[0].Debit)
		assert.Equal(t, models.OrderHintInvoice, entries[0].OrderHint)
		assert.Equal(t, "INV-000001", entries[0].Reference)
	})

	t.Run("received amount adds same-document credit", func(t *testing.T) {
		paid := inv
		paid.AmountReceived = 400

		entries := ledger.NormalizeInvoice(paid)
		require.Len(t, entries, 2)

		credit := entries[1]
		assert.Equal(t, "Payment Received", credit.Description)
		assert.Equal(t, models.OrderHintInvoicePayment, credit.OrderHint)
		assert.Equal(t, 400.0, credit.Credit)
		// Shares the invoice's date and reference; only the hint separates them.
		assert.Equal(t, entries[0].Date, credit.Date)
		assert.Equal(t, entries[0].Reference, credit.Reference)
	})

	t.Run("NaN total coerces to zero", func(t *testing.T) {
		bad := inv
		bad.Total = math.NaN()
		entries := ledger.NormalizeInvoice(bad)
		require.Len(t, entries, 1)
		assert.Zero(t, entries[0].Debit)
	})
}

func TestNormalizeReturnAndReceipt(t *testing.T) {
	ret := ledger.NormalizeReturn(models.Return{
		ID: "r1", ReturnNumber: "RET-004", Date: "2024-02-01", Amount: 120,
	})
	assert.Equal(t, models.OrderHintReturn, ret.OrderHint)
	assert.Equal(t, 120.0, ret.Credit)
	assert.Zero(t, ret.Debit)

	rec := ledger.NormalizeReceipt(models.Receipt{
		ID: "p1", ReceiptNumber: "REC-01", Date: "2024-01-10", Amount: 600,
	})
	assert.Equal(t, models.OrderHintReceipt, rec.OrderHint)
	assert.Equal(t, 600.0, rec.Credit)
	assert.Zero(t, rec.Debit)
}

func TestVisible(t *testing.T) {
	assert.True(t, ledger.Visible(models.DocStatusActive))
	assert.True(t, ledger.Visible(""))
	assert.False(t, ledger.Visible(models.DocStatusVoid))
	assert.False(t, ledger.Visible(models.DocStatusDeleted))
}

// Every normalized entry must be single-sided: debit XOR credit.
func TestNormalize_SingleSidedness(t *testing.T) {
	var entries []models.LedgerEntry

	if e, ok := ledger.NormalizeOpening(models.Account{ID: "c1", OpeningBalance: 500}); ok {
		entries = append(entries, e)
	}
	if e, ok := ledger.NormalizeOpening(models.Account{ID: "v1", OpeningBalance: -300}); ok {
		entries = append(entries, e)
	}
	entries = append(entries, ledger.NormalizeInvoice(models.Invoice{
		ID: "i1", InvoiceNumber: "INV-1", Total: 1000, AmountReceived: 400, Date: "2024-01-05",
	})...)
	entries = append(entries,
		ledger.NormalizeReturn(models.Return{ID: "r1", Amount: 50}),
		ledger.NormalizeReceipt(models.Receipt{ID: "p1", Amount: 600}),
	)

	for _, e := range entries {
		assert.True(t, (e.Debit > 0) != (e.Credit > 0),
			"entry %s has debit=%v credit=%v", e.ID, e.Debit, e.Credit)
	}
}
