// Package stock reduces the append-only movement log into point-in-time
// per-product positions. Unlike the ledger, the reduction is a pure sum and
// therefore order-independent.
package stock

import (
	"math"
	"sort"

	"ledger-backend/internal/models"
)

// Reduce folds one product's movements into a position. IN adds to on-hand,
// OUT subtracts; pending-invoice OUTs accumulate the reserved quantity and
// invoice reversals release it, clamped at zero. Available is on-hand minus
// reserved, also clamped at zero.
//
// The input is a bounded recent window, not the full historical log; the
// result is only exact when the window covers every movement for the
// product. Callers refetch the window and re-reduce whenever movements may
// have changed.
func Reduce(productID string, movements []models.StockMovement) models.StockPosition {
	pos := models.StockPosition{ProductID: productID}

	for _, m := range movements {
		if m.ProductID != productID {
			continue
		}
		qty := m.Qty
		if math.IsNaN(qty) || math.IsInf(qty, 0) || qty < 0 {
			qty = 0
		}

		switch m.Direction {
		case models.DirectionIn:
			pos.OnHand += qty
			if m.Reason == models.ReasonInvoiceReversal {
				pos.Reserved = math.Max(0, pos.Reserved-qty)
			}
		case models.DirectionOut:
			pos.OnHand -= qty
			if m.Reason == models.ReasonInvoicePending {
				pos.Reserved += qty
			}
		}
	}

	pos.Available = math.Max(0, pos.OnHand-pos.Reserved)
	return pos
}

// ReduceAll groups a movement window by product and reduces each group.
// Products are returned in stable id order.
func ReduceAll(movements []models.StockMovement) []models.StockPosition {
	byProduct := make(map[string][]models.StockMovement)
	for _, m := range movements {
		byProduct[m.ProductID] = append(byProduct[m.ProductID], m)
	}

	ids := make([]string, 0, len(byProduct))
	for id := range byProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	positions := make([]models.StockPosition, 0, len(ids))
	for _, id := range ids {
		positions = append(positions, Reduce(id, byProduct[id]))
	}
	return positions
}
