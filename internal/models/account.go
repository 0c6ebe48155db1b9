package models

import "time"

// AccountKind distinguishes the two sides of the party ledger.
type AccountKind string

const (
	AccountKindCustomer AccountKind = "customer"
	AccountKindVendor   AccountKind = "vendor"
)

// Account represents a customer or vendor as served by the upstream store.
// OpeningBalance is the balance carried from before any recorded
// transaction: positive means the party owes us (debit), negative means
// we owe them.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Kind           AccountKind `json:"kind"`
	OpeningBalance float64     `json:"opening_balance"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}
