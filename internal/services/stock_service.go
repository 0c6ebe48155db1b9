package services

import (
	"context"
	"fmt"
	"time"

	"ledger-backend/internal/cache"
	"ledger-backend/internal/metrics"
	"ledger-backend/internal/models"
	"ledger-backend/internal/stock"
)

// MovementSource supplies the bounded recent movement window.
type MovementSource interface {
	ListStockMovements(ctx context.Context, productID string, limit int) ([]models.StockMovement, error)
}

// StockService recomputes stock positions from the movement window on each
// call. Positions are never persisted; callers refetch on every view.
type StockService struct {
	Source MovementSource
	// Window bounds how many recent movements are fetched. Products with
	// more history than the window get an approximate position.
	Window   int
	StockTTL time.Duration
}

func NewStockService(source MovementSource, window int, stockTTL time.Duration) *StockService {
	if window <= 0 {
		window = 500
	}
	return &StockService{Source: source, Window: window, StockTTL: stockTTL}
}

// GetPosition reduces one product's movement window into its position.
func (s *StockService) GetPosition(ctx context.Context, productID string) (*models.StockPosition, error) {
	movements, err := s.Source.ListStockMovements(ctx, productID, s.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements for product %s: %w", productID, err)
	}

	key := cache.Key("stock:position", productID, movements)
	var cached models.StockPosition
	if cache.GetJSON(ctx, key, &cached) {
		metrics.CacheHits.WithLabelValues("stock").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("stock").Inc()

	pos := stock.Reduce(productID, movements)
	cache.SetJSON(ctx, key, pos, s.StockTTL)
	return &pos, nil
}

// GetPositions reduces the shared movement window into per-product positions.
func (s *StockService) GetPositions(ctx context.Context) ([]models.StockPosition, error) {
	movements, err := s.Source.ListStockMovements(ctx, "", s.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movements: %w", err)
	}

	key := cache.Key("stock:positions", movements)
	var cached []models.StockPosition
	if cache.GetJSON(ctx, key, &cached) {
		metrics.CacheHits.WithLabelValues("stock").Inc()
		return cached, nil
	}
	metrics.CacheMisses.WithLabelValues("stock").Inc()

	positions := stock.ReduceAll(movements)
	cache.SetJSON(ctx, key, positions, s.StockTTL)
	return positions, nil
}
