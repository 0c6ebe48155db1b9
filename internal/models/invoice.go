package models

// Document status values recognized by the visibility filter.
// Anything void or deleted never reaches normalization.
const (
	DocStatusActive  = "active"
	DocStatusVoid    = "void"
	DocStatusDeleted = "deleted"
)

// Invoice represents a sales invoice (or vendor bill) with nested line items.
// AccountName is a denormalized copy carried by older records that predate
// normalized account keys; the resolver falls back to it when AccountID is empty.
type Invoice struct {
	ID             string        `json:"id"`
	InvoiceNumber  string        `json:"invoice_number"`
	AccountID      string        `json:"account_id"`
	AccountName    string        `json:"account_name"`
	Date           string        `json:"date"`      // ISO yyyy-mm-dd
	PostedAt       string        `json:"posted_at"` // ISO timestamp, may be empty
	Total          float64       `json:"total"`
	AmountReceived float64       `json:"amount_received"`
	Status         string        `json:"status"`
	Notes          string        `json:"notes"`
	Items          []InvoiceItem `json:"items"`
}

// InvoiceItem represents one line on an invoice.
type InvoiceItem struct {
	ID        string  `json:"id"`
	InvoiceID string  `json:"invoice_id"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	Rate      float64 `json:"rate"`
	Amount    float64 `json:"amount"`
}
