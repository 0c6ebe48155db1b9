// Package ledger merges the independent transaction streams served by the
// upstream store (invoices, returns, standalone receipts) into a
// deterministically ordered running-balance statement for one account.
//
// Every function here is pure: inputs are never mutated, no I/O happens,
// and the same inputs always produce the same statement. Staleness between
// an external write and the next fetch is the caller's contract
// (refresh on view), not this package's concern.
package ledger

import "ledger-backend/internal/models"

// Sources holds the raw arrays fetched for one account. The engine treats
// them as read-only.
type Sources struct {
	Account  models.Account
	Invoices []models.Invoice
	Returns  []models.Return
	Receipts []models.Receipt
}

// BuildStatement runs the full pipeline: visibility filter, identity
// resolution, normalization, deterministic ordering, query filtering, and
// the running-balance pass. onFallback, when non-nil, is invoked for every
// transaction attributed by denormalized name rather than id.
func BuildStatement(src Sources, f models.LedgerFilter, onFallback func(docKind, docID string)) models.Statement {
	resolver := &Resolver{
		AccountID:   src.Account.ID,
		AccountName: src.Account.Name,
		OnFallback:  onFallback,
	}

	var entries []models.LedgerEntry

	if opening, ok := NormalizeOpening(src.Account); ok {
		entries = append(entries, opening)
	}

	for _, inv := range src.Invoices {
		if !Visible(inv.Status) {
			continue
		}
		if !resolver.Matches(inv.AccountID, inv.AccountName, "invoice", inv.ID) {
			continue
		}
		entries = append(entries, NormalizeInvoice(inv)...)
	}

	for _, ret := range src.Returns {
		if !Visible(ret.Status) {
			continue
		}
		if !resolver.Matches(ret.AccountID, ret.AccountName, "return", ret.ID) {
			continue
		}
		entries = append(entries, NormalizeReturn(ret))
	}

	for _, rec := range src.Receipts {
		if !Visible(rec.Status) {
			continue
		}
		if !resolver.Matches(rec.AccountID, rec.AccountName, "receipt", rec.ID) {
			continue
		}
		entries = append(entries, NormalizeReceipt(rec))
	}

	ordered := SortEntries(entries)
	filtered := FilterEntries(ordered, f)

	return models.Statement{
		AccountID:   src.Account.ID,
		AccountName: src.Account.Name,
		Entries:     filtered,
		Balances:    RunningBalances(filtered),
		Summary:     Summarize(filtered),
	}
}
