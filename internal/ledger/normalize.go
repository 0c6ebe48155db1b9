package ledger

import (
	"math"

	"ledger-backend/internal/models"
)

// Visible reports whether a document status admits the record into the
// ledger at all. Void and deleted documents are dropped before normalization.
func Visible(status string) bool {
	return status != models.DocStatusVoid && status != models.DocStatusDeleted
}

// amount guards balance math against NaN/Inf leaking in from upstream JSON.
// Anything non-finite becomes 0.
func amount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NormalizeOpening produces the synthetic opening-balance entry for an
// account. Accounts with a zero opening balance produce nothing.
func NormalizeOpening(acc models.Account) (models.LedgerEntry, bool) {
	opening := amount(acc.OpeningBalance)
	if opening == 0 {
		return models.LedgerEntry{}, false
	}

	e := models.LedgerEntry{
		ID:          "opening-" + acc.ID,
		Date:        models.EpochFloorDate,
		OrderHint:   models.OrderHintOpening,
		Description: "Opening Balance",
		Reference:   "OPENING",
		Type:        models.EntryTypeInvoice,
	}
	if opening > 0 {
		e.Debit = opening
	} else {
		e.Credit = -opening
	}
	return e, true
}

// NormalizeInvoice maps an invoice into its ledger entries: a debit for the
// invoice total, plus a same-document credit when part of the amount was
// received at posting time. Both share the invoice's date and reference so
// the order hint is what separates them.
func NormalizeInvoice(inv models.Invoice) []models.LedgerEntry {
	entries := []models.LedgerEntry{{
		ID:              inv.ID,
		Date:            inv.Date,
		PostedAt:        inv.PostedAt,
		OrderHint:       models.OrderHintInvoice,
		Description:     "Invoice " + inv.InvoiceNumber,
		DetailNarration: inv.Notes,
		Reference:       inv.InvoiceNumber,
		Type:            models.EntryTypeInvoice,
		Debit:           amount(inv.Total),
		ViewKind:        "invoice",
		ViewID:          inv.ID,
	}}

	if received := amount(inv.AmountReceived); received > 0 {
		entries = append(entries, models.LedgerEntry{
			ID:          inv.ID + "-received",
			Date:        inv.Date,
			PostedAt:    inv.PostedAt,
			OrderHint:   models.OrderHintInvoicePayment,
			Description: "Payment Received",
			Reference:   inv.InvoiceNumber,
			Type:        models.EntryTypeReceipt,
			Credit:      received,
			ViewKind:    "invoice",
			ViewID:      inv.ID,
		})
	}

	return entries
}

// NormalizeReturn maps a return into its single credit entry.
func NormalizeReturn(ret models.Return) models.LedgerEntry {
	return models.LedgerEntry{
		ID:              ret.ID,
		Date:            ret.Date,
		PostedAt:        ret.PostedAt,
		OrderHint:       models.OrderHintReturn,
		Description:     "Return " + ret.ReturnNumber,
		DetailNarration: ret.Reason,
		Reference:       ret.ReturnNumber,
		Type:            models.EntryTypeReturn,
		Credit:          amount(ret.Amount),
		ViewKind:        "return",
		ViewID:          ret.ID,
	}
}

// NormalizeReceipt maps a standalone receipt/payment into its single credit entry.
func NormalizeReceipt(rec models.Receipt) models.LedgerEntry {
	return models.LedgerEntry{
		ID:              rec.ID,
		Date:            rec.Date,
		PostedAt:        rec.PostedAt,
		OrderHint:       models.OrderHintReceipt,
		Description:     "Payment " + rec.ReceiptNumber,
		DetailNarration: rec.Notes,
		Reference:       rec.ReceiptNumber,
		Type:            models.EntryTypeReceipt,
		Credit:          amount(rec.Amount),
		ViewKind:        "receipt",
		ViewID:          rec.ID,
	}
}
