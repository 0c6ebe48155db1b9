package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger-backend/internal/ledger"
)

func TestResolver(t *testing.T) {
	r := &ledger.Resolver{AccountID: "c1", AccountName: "Acme Traders"}

	tests := []struct {
		name   string
		txID   string
		txName string
		want   ledger.MatchKind
	}{
		{"id match", "c1", "", ledger.MatchByID},
		{"id match ignores stale name", "c1", "Someone Else", ledger.MatchByID},
		{"wrong id never falls back to name", "c2", "Acme Traders", ledger.MatchNone},
		{"name fallback is case-insensitive", "", "ACME TRADERS", ledger.MatchByName},
		{"name fallback is exact, not substring", "", "Acme", ledger.MatchNone},
		{"nothing to match", "", "", ledger.MatchNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.txID, tt.txName, "invoice", "doc1"))
		})
	}
}

func TestResolver_FallbackHookOnlyOnNameMatch(t *testing.T) {
	var calls int
	r := &ledger.Resolver{
		AccountID:   "c1",
		AccountName: "Acme",
		OnFallback:  func(docKind, docID string) { calls++ },
	}

	r.Resolve("c1", "", "invoice", "a")
	assert.Zero(t, calls, "id matches must not fire the hook")

	r.Resolve("", "acme", "receipt", "b")
	assert.Equal(t, 1, calls)

	r.Resolve("", "other", "receipt", "c")
	assert.Equal(t, 1, calls, "non-matches must not fire the hook")
}
