// Package stockapi is a thin, stateless client for the external Stock system.
// It performs no retries; retry policy belongs to the orchestrating caller.
package stockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"
)

const apiKeyHeader = "X-API-Key"

// Client issues authenticated HTTP calls to the Stock API.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewClient returns new Client.
func NewClient(client *http.Client, baseURL, apiKey string) *Client {
	return &Client{
		client:  client,
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// ListProducts fetches one page of the product catalog with nested variants.
// updatedAfter, when set, is forwarded as a server-side filter; the Stock API
// is trusted to implement the actual filtering.
func (c *Client) ListProducts(
	ctx context.Context,
	page int,
	pageSize int,
	updatedAfter *time.Time,
) (*ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(pageSize))
	if updatedAfter != nil {
		query.Set("updated_after", UpdatedAfterFormat(*updatedAfter))
	}

	var result ProductPage
	if err := c.get(ctx, "/products", query, &result); err != nil {
		return nil, fmt.Errorf("can't list products: %w", err)
	}

	return &result, nil
}

// ListStockLevels fetches one page of the stock-balance listing.
func (c *Client) ListStockLevels(
	ctx context.Context,
	page int,
	pageSize int,
	filters StockFilters,
) (*StockLevelPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(pageSize))
	if filters.Location != nil {
		query.Set("location", *filters.Location)
	}
	if filters.Warehouse != nil {
		query.Set("warehouse", *filters.Warehouse)
	}
	if filters.LowStock {
		query.Set("low_stock", "true")
	}

	var result StockLevelPage
	if err := c.get(ctx, "/stock", query, &result); err != nil {
		return nil, fmt.Errorf("can't list stock levels: %w", err)
	}

	return &result, nil
}

// CreateStockMovement creates a stock movement document, e.g. an ISSUE when
// production consumes raw materials.
func (c *Client) CreateStockMovement(ctx context.Context, req MovementRequest) (*MovementResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("can't marshal movement request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/movements", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("can't build http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	var result MovementResult
	if err := c.do(httpReq, &result); err != nil {
		return nil, fmt.Errorf("can't create stock movement: %w", err)
	}

	return &result, nil
}

// TestConnection performs a non-fatal health check against the Stock API.
// It never returns an error; failures are captured into the result.
func (c *Client) TestConnection(ctx context.Context) ConnectionStatus {
	var company companyResponse
	if err := c.get(ctx, "/company", url.Values{}, &company); err != nil {
		return ConnectionStatus{
			Connected: false,
			Error:     lo.ToPtr(err.Error()),
		}
	}

	return ConnectionStatus{
		Connected: true,
		Name:      &company.Name,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("can't build http request: %w", err)
	}
	req.URL.RawQuery = query.Encode()

	return c.do(req, dest)
}

func (c *Client) do(req *http.Request, dest any) error {
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("can't get http response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("can't decode response: %w", err)
	}

	return nil
}
