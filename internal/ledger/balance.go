package ledger

import "ledger-backend/internal/models"

// RunningBalances computes the cumulative debit-credit balance after each
// entry, keyed by entry id. Entries must already be in comparator order;
// this is a single forward pass and performs no sorting.
func RunningBalances(entries []models.LedgerEntry) map[string]float64 {
	balances := make(map[string]float64, len(entries))
	running := 0.0
	for _, e := range entries {
		running += e.Debit - e.Credit
		balances[e.ID] = running
	}
	return balances
}

// Summarize totals the entries. ClosingBalance equals the last running
// balance over the same entries.
func Summarize(entries []models.LedgerEntry) models.StatementSummary {
	var s models.StatementSummary
	for _, e := range entries {
		s.TotalDebit += e.Debit
		s.TotalCredit += e.Credit
	}
	s.ClosingBalance = s.TotalDebit - s.TotalCredit
	s.EntryCount = len(entries)
	return s
}
