package ledger

import (
	"strings"

	"ledger-backend/internal/models"
)

// FilterEntries applies the date-range, type, and free-text filters to
// entries already in comparator order. Opening-balance entries ride along
// regardless of the date range so a filtered statement still starts from
// the carried balance; they are subject to the type and text filters like
// everything else.
func FilterEntries(entries []models.LedgerEntry, f models.LedgerFilter) []models.LedgerEntry {
	tokens := tokenize(f.Query)

	out := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if !inDateRange(e, f.FromDate, f.ToDate) {
			continue
		}
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if len(tokens) > 0 && !matchesTokens(e, tokens) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func inDateRange(e models.LedgerEntry, from, to string) bool {
	if e.OrderHint == models.OrderHintOpening {
		return true
	}
	// Inclusive bounds, lexicographic ISO compare. Malformed dates simply
	// compare as low strings; upstream is expected to supply valid ones.
	if from != "" && e.Date < from {
		return false
	}
	if to != "" && e.Date > to {
		return false
	}
	return true
}

func tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// matchesTokens requires every token to be a substring of the concatenated
// searchable fields (AND-of-keywords, case-insensitive).
func matchesTokens(e models.LedgerEntry, tokens []string) bool {
	haystack := strings.ToLower(strings.Join([]string{
		e.Description,
		e.DetailNarration,
		e.Reference,
		e.ID,
		string(e.Type),
	}, " "))

	for _, tok := range tokens {
		if !strings.Contains(haystack, tok) {
			return false
		}
	}
	return true
}
