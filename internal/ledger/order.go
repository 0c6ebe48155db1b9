package ledger

import (
	"sort"
	"strings"

	"ledger-backend/internal/models"
)

// typePriority breaks ties between entry kinds posted on the same date with
// the same reference number.
var typePriority = map[models.EntryType]int{
	models.EntryTypeInvoice: 1,
	models.EntryTypeReturn:  2,
	models.EntryTypeReceipt: 3,
}

// ParseRefNumber extracts the trailing run of digits from a reference,
// e.g. "INV-000045" -> 45. Strings without a trailing digit run yield -1.
func ParseRefNumber(s string) int {
	end := len(s)
	for end > 0 && s[end-1] >= '0' && s[end-1] <= '9' {
		end--
	}
	if end == len(s) {
		return -1
	}
	n := 0
	for _, c := range s[end:] {
		n = n*10 + int(c-'0')
	}
	return n
}

func refKey(e models.LedgerEntry) string {
	if e.Reference != "" {
		return e.Reference
	}
	return e.ID
}

// Compare is the total order over ledger entries. The first differing key
// wins: opening entries first, then date, postedAt (empty before non-empty),
// order hint, trailing reference number, type priority, and finally the
// reference/id string so no ties survive when ids are unique.
func Compare(a, b models.LedgerEntry) int {
	aOpening := a.OrderHint == models.OrderHintOpening
	bOpening := b.OrderHint == models.OrderHintOpening
	if aOpening != bOpening {
		if aOpening {
			return -1
		}
		return 1
	}

	if c := strings.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	if c := strings.Compare(a.PostedAt, b.PostedAt); c != 0 {
		return c
	}
	if a.OrderHint != b.OrderHint {
		if a.OrderHint < b.OrderHint {
			return -1
		}
		return 1
	}

	aRef, bRef := ParseRefNumber(refKey(a)), ParseRefNumber(refKey(b))
	if aRef != bRef {
		if aRef < bRef {
			return -1
		}
		return 1
	}

	if p := typePriority[a.Type] - typePriority[b.Type]; p != 0 {
		if p < 0 {
			return -1
		}
		return 1
	}

	return strings.Compare(refKey(a), refKey(b))
}

// SortEntries returns the entries in comparator order without mutating the
// input slice. Re-running on any permutation of the same entries yields
// the same sequence.
func SortEntries(entries []models.LedgerEntry) []models.LedgerEntry {
	sorted := make([]models.LedgerEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Compare(sorted[i], sorted[j]) < 0
	})
	return sorted
}
