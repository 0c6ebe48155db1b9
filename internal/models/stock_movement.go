package models

import "time"

// MovementDirection carries the sign of a stock movement; Qty itself is
// always a non-negative magnitude.
type MovementDirection string

const (
	DirectionIn  MovementDirection = "IN"
	DirectionOut MovementDirection = "OUT"
)

// Movement reasons with aggregation semantics. Reason is free text upstream,
// these are the values the aggregator gives meaning to.
const (
	ReasonInvoicePending   = "invoice_pending"
	ReasonInvoiceReversal  = "invoice_reversal"
	ReasonManualAdjustment = "manual_adjustment"
)

// StockMovement is one append-only record of inventory quantity change.
// Movements are created by external write paths and never edited here.
type StockMovement struct {
	ID        string            `json:"id"`
	CompanyID string            `json:"company_id"`
	ProductID string            `json:"product_id"`
	Qty       float64           `json:"qty"`
	Direction MovementDirection `json:"direction"`
	Reason    string            `json:"reason"`
	Source    string            `json:"source"`
	SourceID  string            `json:"source_id"`
	SourceRef string            `json:"source_ref"`
	CreatedAt time.Time         `json:"created_at"`
}

// StockPosition is the derived point-in-time position for one product.
// Invariant: Available = max(0, OnHand - Reserved). Never persisted,
// recomputed from movements on every query.
type StockPosition struct {
	ProductID string  `json:"product_id"`
	OnHand    float64 `json:"on_hand"`
	Reserved  float64 `json:"reserved"`
	Available float64 `json:"available"`
}
