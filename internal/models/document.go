package models

// Return represents a credit note: goods coming back from a customer or
// going back to a vendor. One return posts a single credit.
type Return struct {
	ID           string  `json:"id"`
	ReturnNumber string  `json:"return_number"`
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name"`
	Date         string  `json:"date"`
	PostedAt     string  `json:"posted_at"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
	Reason       string  `json:"reason"`
}

// Receipt represents a standalone payment document, not tied to a single
// invoice: a customer receipt or a payment made to a vendor.
type Receipt struct {
	ID            string  `json:"id"`
	ReceiptNumber string  `json:"receipt_number"`
	AccountID     string  `json:"account_id"`
	AccountName   string  `json:"account_name"`
	Date          string  `json:"date"`
	PostedAt      string  `json:"posted_at"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Method        string  `json:"method"`
	Notes         string  `json:"notes"`
}
