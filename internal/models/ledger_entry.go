package models

// EntryType classifies a ledger entry by the document kind it came from.
type EntryType string

const (
	EntryTypeInvoice EntryType = "INVOICE"
	EntryTypeReturn  EntryType = "RETURN"
	EntryTypeReceipt EntryType = "RECEIPT"
)

// Order hints place entries produced from the same date deterministically.
// The opening balance always sorts before everything else.
const (
	OrderHintOpening        = -100
	OrderHintInvoice        = 10
	OrderHintInvoicePayment = 20
	OrderHintReturn         = 30
	OrderHintReceipt        = 40
)

// EpochFloorDate is the synthetic date given to opening-balance entries so
// they compare below any real ISO date.
const EpochFloorDate = "0000-01-01"

// LedgerEntry is one single-sided posting derived from a source document.
// At most one of Debit/Credit is nonzero. Entries are transient: rebuilt
// from source records on every query, never stored.
type LedgerEntry struct {
	ID              string    `json:"id"`
	Date            string    `json:"date"`      // ISO yyyy-mm-dd
	PostedAt        string    `json:"posted_at"` // ISO timestamp, empty when unknown
	OrderHint       int       `json:"order_hint"`
	Description     string    `json:"description"`
	DetailNarration string    `json:"detail_narration,omitempty"`
	Reference       string    `json:"reference"`
	Type            EntryType `json:"type"`
	Debit           float64   `json:"debit"`
	Credit          float64   `json:"credit"`
	ViewKind        string    `json:"view_kind,omitempty"` // back-link to the source document
	ViewID          string    `json:"view_id,omitempty"`
}

// LedgerFilter narrows a statement. Date bounds are inclusive ISO strings;
// either may be empty. Query is whitespace-tokenized free text where every
// token must match (case-insensitive substring).
type LedgerFilter struct {
	AccountID string    `json:"account_id"`
	Query     string    `json:"query"`
	FromDate  string    `json:"from_date"`
	ToDate    string    `json:"to_date"`
	Type      EntryType `json:"type"`
}

// StatementSummary provides the totals for a statement.
type StatementSummary struct {
	TotalDebit     float64 `json:"total_debit"`
	TotalCredit    float64 `json:"total_credit"`
	ClosingBalance float64 `json:"closing_balance"` // TotalDebit - TotalCredit
	EntryCount     int     `json:"entry_count"`
}

// Statement is the full derived output for one account: deterministically
// ordered entries, the running balance after each, and totals.
type Statement struct {
	AccountID   string             `json:"account_id"`
	AccountName string             `json:"account_name"`
	Entries     []LedgerEntry      `json:"entries"`
	Balances    map[string]float64 `json:"balances"` // entry id -> running balance
	Summary     StatementSummary   `json:"summary"`
}
