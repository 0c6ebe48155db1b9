package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ledger-backend/internal/cache"
	"ledger-backend/internal/models"
)

func TestKey_DeterministicForEqualInputs(t *testing.T) {
	filter := models.LedgerFilter{AccountID: "c1", FromDate: "2024-01-01"}
	invoices := []models.Invoice{{ID: "inv1", Total: 1000}}

	a := cache.Key("statement", invoices, filter)
	b := cache.Key("statement", invoices, filter)
	assert.Equal(t, a, b)
}

func TestKey_ChangesWithContent(t *testing.T) {
	filter := models.LedgerFilter{AccountID: "c1"}

	base := cache.Key("statement", []models.Invoice{{ID: "inv1", Total: 1000}}, filter)
	changedDoc := cache.Key("statement", []models.Invoice{{ID: "inv1", Total: 1001}}, filter)
	changedFilter := cache.Key("statement", []models.Invoice{{ID: "inv1", Total: 1000}},
		models.LedgerFilter{AccountID: "c1", Query: "x"})

	assert.NotEqual(t, base, changedDoc)
	assert.NotEqual(t, base, changedFilter)
}

func TestKey_NamespacePrefix(t *testing.T) {
	key := cache.Key("stock:position", "p1")
	assert.Contains(t, key, "stock:position:")
}
