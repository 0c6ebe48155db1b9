package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"ledger-backend/internal/cache"
	"ledger-backend/internal/ledger"
	"ledger-backend/internal/metrics"
	"ledger-backend/internal/models"
)

// LedgerSource supplies the raw arrays for one account. *erpclient.Client
// satisfies it; tests substitute an in-memory stub.
type LedgerSource interface {
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	ListInvoices(ctx context.Context, accountID, accountName string) ([]models.Invoice, error)
	ListReturns(ctx context.Context, accountID, accountName string) ([]models.Return, error)
	ListReceipts(ctx context.Context, accountID, accountName string) ([]models.Receipt, error)
}

// StatementService fetches source records and runs the ledger pipeline.
// Results are memoized content-addressed: the cache key hashes the fetched
// arrays plus the filter, so a stale cache entry can never be returned for
// changed inputs.
type StatementService struct {
	Source       LedgerSource
	StatementTTL time.Duration
}

func NewStatementService(source LedgerSource, statementTTL time.Duration) *StatementService {
	return &StatementService{Source: source, StatementTTL: statementTTL}
}

// GetStatement builds the running-balance statement for one account.
func (s *StatementService) GetStatement(ctx context.Context, accountID string, filter models.LedgerFilter) (*models.Statement, error) {
	account, err := s.Source.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch account %s: %w", accountID, err)
	}

	invoices, err := s.Source.ListInvoices(ctx, account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch invoices: %w", err)
	}
	returns, err := s.Source.ListReturns(ctx, account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch returns: %w", err)
	}
	receipts, err := s.Source.ListReceipts(ctx, account.ID, account.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipts: %w", err)
	}

	src := ledger.Sources{
		Account:  *account,
		Invoices: invoices,
		Returns:  returns,
		Receipts: receipts,
	}

	key := cache.Key("statement", src, filter)
	var cached models.Statement
	if cache.GetJSON(ctx, key, &cached) {
		metrics.CacheHits.WithLabelValues("statement").Inc()
		return &cached, nil
	}
	metrics.CacheMisses.WithLabelValues("statement").Inc()

	start := time.Now()
	statement := ledger.BuildStatement(src, filter, func(docKind, docID string) {
		log.Printf("[Ledger] name-fallback match: %s %s attributed to account %s (%s) by name only",
			docKind, docID, account.ID, account.Name)
		metrics.NameFallbackMatches.WithLabelValues(docKind).Inc()
	})
	metrics.StatementBuildDuration.Observe(time.Since(start).Seconds())

	cache.SetJSON(ctx, key, statement, s.StatementTTL)
	return &statement, nil
}
