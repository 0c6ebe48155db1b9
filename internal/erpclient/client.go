// Package erpclient fetches the raw source arrays from the external
// relational store's REST API. It is the only place in the service that
// performs network I/O; everything downstream is pure computation.
package erpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ledger-backend/internal/metrics"
	"ledger-backend/internal/models"
)

// Client talks to the upstream ERP store. Callers pass a context per call;
// rapid account/product switching is last-request-wins by cancelling the
// previous request's context.
type Client struct {
	baseURL   string
	token     string
	companyID string
	client    *http.Client
}

// New creates a client for the given base URL. token may be empty when the
// upstream store is unauthenticated (e.g. a local replica).
func New(baseURL, token, companyID string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:   baseURL,
		token:     token,
		companyID: companyID,
		client:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, resource, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if query == nil {
		query = url.Values{}
	}
	if c.companyID != "" {
		query.Set("company_id", c.companyID)
	}
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "error").Inc()
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("upstream returned %d for %s: %s", resp.StatusCode, path, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(resource, "decode_error").Inc()
		return fmt.Errorf("failed to decode %s response: %w", resource, err)
	}

	metrics.UpstreamRequestsTotal.WithLabelValues(resource, "ok").Inc()
	return nil
}

// Ping checks upstream reachability with a lightweight health call.
func (c *Client) Ping(ctx context.Context) error {
	var out map[string]interface{}
	return c.get(ctx, "health", "/health", nil, &out)
}

// GetAccount fetches one account by id.
func (c *Client) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	var acc models.Account
	if err := c.get(ctx, "account", "/accounts/"+url.PathEscape(id), nil, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

// ListAccounts fetches all accounts of one kind; kind may be empty for all.
func (c *Client) ListAccounts(ctx context.Context, kind models.AccountKind) ([]models.Account, error) {
	q := url.Values{}
	if kind != "" {
		q.Set("kind", string(kind))
	}
	var accounts []models.Account
	if err := c.get(ctx, "accounts", "/accounts", q, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListInvoices fetches the invoices referencing an account. The upstream
// filter is by key only, so name-fallback records are fetched via the
// account-name parameter as well.
func (c *Client) ListInvoices(ctx context.Context, accountID, accountName string) ([]models.Invoice, error) {
	q := url.Values{}
	q.Set("account_id", accountID)
	if accountName != "" {
		q.Set("account_name", accountName)
	}
	var invoices []models.Invoice
	if err := c.get(ctx, "invoices", "/invoices", q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// ListReturns fetches the returns referencing an account.
func (c *Client) ListReturns(ctx context.Context, accountID, accountName string) ([]models.Return, error) {
	q := url.Values{}
	q.Set("account_id", accountID)
	if accountName != "" {
		q.Set("account_name", accountName)
	}
	var returns []models.Return
	if err := c.get(ctx, "returns", "/returns", q, &returns); err != nil {
		return nil, err
	}
	return returns, nil
}

// ListReceipts fetches the standalone receipts/payments referencing an account.
func (c *Client) ListReceipts(ctx context.Context, accountID, accountName string) ([]models.Receipt, error) {
	q := url.Values{}
	q.Set("account_id", accountID)
	if accountName != "" {
		q.Set("account_name", accountName)
	}
	var receipts []models.Receipt
	if err := c.get(ctx, "receipts", "/receipts", q, &receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

// ListStockMovements fetches the most recent movement window, newest first.
// productID may be empty to fetch across all products.
func (c *Client) ListStockMovements(ctx context.Context, productID string, limit int) ([]models.StockMovement, error) {
	q := url.Values{}
	if productID != "" {
		q.Set("product_id", productID)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var movements []models.StockMovement
	if err := c.get(ctx, "stock_movements", "/stock-movements", q, &movements); err != nil {
		return nil, err
	}
	return movements, nil
}
