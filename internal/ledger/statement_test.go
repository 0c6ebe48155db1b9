package ledger_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-backend/internal/ledger"
	"ledger-backend/internal/models"
)

func scenarioSources() ledger.Sources {
	return ledger.Sources{
		Account: models.Account{ID: "c1", Name: "Acme Traders", OpeningBalance: 500},
		Invoices: []models.Invoice{{
			ID:             "inv1",
			InvoiceNumber:  "INV-000001",
			AccountID:      "c1",
			Date:           "2024-01-05",
			Total:          1000,
			AmountReceived: 400,
			Status:         models.DocStatusActive,
		}},
		Receipts: []models.Receipt{{
			ID:            "rec1",
			ReceiptNumber: "REC-01",
			AccountID:     "c1",
			Date:          "2024-01-10",
			Amount:        600,
			Status:        models.DocStatusActive,
		}},
	}
}

// The end-to-end scenario: opening 500 debit, invoice 1000 with 400
// received, standalone receipt 600. Order and running balances must be
// opening -> invoice debit -> payment-received credit -> receipt credit
// with balances 500, 1500, 1100, 500.
func TestBuildStatement_EndToEnd(t *testing.T) {
	st := ledger.BuildStatement(scenarioSources(), models.LedgerFilter{}, nil)

	require.Len(t, st.Entries, 4)
	assert.Equal(t, "opening-c1", st.Entries[0].ID)
	assert.Equal(t, "inv1", st.Entries[1].ID)
	assert.Equal(t, "inv1-received", st.Entries[2].ID)
	assert.Equal(t, "rec1", st.Entries[3].ID)

	assert.Equal(t, 500.0, st.Balances["opening-c1"])
	assert.Equal(t, 1500.0, st.Balances["inv1"])
	assert.Equal(t, 1100.0, st.Balances["inv1-received"])
	assert.Equal(t, 500.0, st.Balances["rec1"])

	assert.Equal(t, 1500.0, st.Summary.TotalDebit)
	assert.Equal(t, 1000.0, st.Summary.TotalCredit)
	assert.Equal(t, 500.0, st.Summary.ClosingBalance)
}

func TestBuildStatement_DeterministicAcrossRuns(t *testing.T) {
	src := scenarioSources()
	src.Returns = []models.Return{
		{ID: "r1", ReturnNumber: "RET-002", AccountID: "c1", Date: "2024-01-05", Amount: 25, Status: models.DocStatusActive},
	}

	first := ledger.BuildStatement(src, models.LedgerFilter{}, nil)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := src
		shuffled.Invoices = append([]models.Invoice(nil), src.Invoices...)
		shuffled.Receipts = append([]models.Receipt(nil), src.Receipts...)
		rng.Shuffle(len(shuffled.Invoices), func(a, b int) {
			shuffled.Invoices[a], shuffled.Invoices[b] = shuffled.Invoices[b], shuffled.Invoices[a]
		})
		rng.Shuffle(len(shuffled.Receipts), func(a, b int) {
			shuffled.Receipts[a], shuffled.Receipts[b] = shuffled.Receipts[b], shuffled.Receipts[a]
		})

		got := ledger.BuildStatement(shuffled, models.LedgerFilter{}, nil)
		require.Equal(t, first, got, "run %d diverged", i)
	}
}

func TestBuildStatement_VoidAndDeletedExcluded(t *testing.T) {
	src := scenarioSources()
	src.Invoices = append(src.Invoices, models.Invoice{
		ID: "inv2", InvoiceNumber: "INV-000002", AccountID: "c1",
		Date: "2024-01-06", Total: 9999, Status: models.DocStatusVoid,
	})
	src.Receipts = append(src.Receipts, models.Receipt{
		ID: "rec2", ReceiptNumber: "REC-02", AccountID: "c1",
		Date: "2024-01-11", Amount: 9999, Status: models.DocStatusDeleted,
	})

	st := ledger.BuildStatement(src, models.LedgerFilter{}, nil)
	require.Len(t, st.Entries, 4)
	assert.NotContains(t, st.Balances, "inv2")
	assert.NotContains(t, st.Balances, "rec2")
}

func TestBuildStatement_IdentityResolution(t *testing.T) {
	t.Run("foreign account excluded", func(t *testing.T) {
		src := scenarioSources()
		src.Invoices = append(src.Invoices, models.Invoice{
			ID: "other", InvoiceNumber: "INV-000009", AccountID: "c2",
			Date: "2024-01-06", Total: 777, Status: models.DocStatusActive,
		})

		st := ledger.BuildStatement(src, models.LedgerFilter{}, nil)
		assert.NotContains(t, st.Balances, "other")
	})

	t.Run("name-only record matches and fires the audit hook", func(t *testing.T) {
		src := scenarioSources()
		src.Receipts = append(src.Receipts, models.Receipt{
			ID: "legacy", ReceiptNumber: "REC-99", AccountName: "acme traders",
			Date: "2024-01-12", Amount: 100, Status: models.DocStatusActive,
		})

		var fallbacks []string
		st := ledger.BuildStatement(src, models.LedgerFilter{}, func(docKind, docID string) {
			fallbacks = append(fallbacks, docKind+":"+docID)
		})

		assert.Contains(t, st.Balances, "legacy")
		assert.Equal(t, []string{"receipt:legacy"}, fallbacks)
	})

	t.Run("unmatched record silently excluded", func(t *testing.T) {
		src := scenarioSources()
		src.Receipts = append(src.Receipts, models.Receipt{
			ID: "stray", ReceiptNumber: "REC-98",
			Date: "2024-01-12", Amount: 100, Status: models.DocStatusActive,
		})

		st := ledger.BuildStatement(src, models.LedgerFilter{}, nil)
		assert.NotContains(t, st.Balances, "stray")
	})
}

func TestBuildStatement_FilterNarrowsBalances(t *testing.T) {
	st := ledger.BuildStatement(scenarioSources(), models.LedgerFilter{
		Type: models.EntryTypeReceipt,
	}, nil)

	// Only the two credits survive; the running balance is over the
	// filtered view, not the full ledger.
	require.Len(t, st.Entries, 2)
	assert.Equal(t, -400.0, st.Balances["inv1-received"])
	assert.Equal(t, -1000.0, st.Balances["rec1"])
	assert.Equal(t, -1000.0, st.Summary.ClosingBalance)
}

func TestBuildStatement_EmptySources(t *testing.T) {
	st := ledger.BuildStatement(ledger.Sources{
		Account: models.Account{ID: "c9", Name: "Empty"},
	}, models.LedgerFilter{}, nil)

	assert.Empty(t, st.Entries)
	assert.Empty(t, st.Balances)
	assert.Zero(t, st.Summary.ClosingBalance)
}
