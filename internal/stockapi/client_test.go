package stockapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/siamscreen/stocksync/internal/stockapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiKey = "test-key"

func TestUnitListProducts(t *testing.T) {
	updatedAfter := time.Date(2024, time.March, 10, 8, 30, 0, 0, time.UTC)

	page := stockapi.ProductPage{
		Items: []stockapi.Product{
			{
				ID:          "sp-1",
				SKU:         "TS-001",
				Name:        "เสื้อยืดคอกลม",
				HasVariants: true,
				LastCost:    lo.ToPtr(85.5),
				Variants: []stockapi.Variant{
					{
						ID:   "sv-1",
						SKU:  "TS-001-M-RED",
						Name: "M / แดง",
						Options: []stockapi.VariantOption{
							{Type: "ไซส์", Value: "M"},
							{Type: "สี", Value: "แดง"},
						},
						StockQty: 12,
					},
				},
			},
		},
		Pagination: stockapi.Pagination{Page: 2, PageSize: 20, Total: 45, TotalPages: 3},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/products", req.URL.Path, "should call products endpoint")
		assert.Equal(t, apiKey, req.Header.Get("X-API-Key"), "should send api key header")
		assert.Equal(t, "2", req.URL.Query().Get("page"), "should send page")
		assert.Equal(t, "20", req.URL.Query().Get("limit"), "should send limit")
		assert.Equal(t, "2024-03-10T08:30:00Z", req.URL.Query().Get("updated_after"), "should send cursor")

		wrt.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(wrt).Encode(page))
	}))
	t.Cleanup(srv.Close)

	client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

	got, err := client.ListProducts(context.TODO(), 2, 20, &updatedAfter)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &page, got, "should return decoded page")
}

func TestUnitListProductsOmitsCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.False(t, req.URL.Query().Has("updated_after"), "full sync shouldn't send cursor")
		wrt.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(wrt).Encode(stockapi.ProductPage{}))
	}))
	t.Cleanup(srv.Close)

	client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

	_, err := client.ListProducts(context.TODO(), 1, 20, nil)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitListProductsStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		wrt.WriteHeader(http.StatusBadGateway)
		_, _ = wrt.Write([]byte("upstream unavailable"))
	}))
	t.Cleanup(srv.Close)

	client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

	got, err := client.ListProducts(context.TODO(), 1, 20, nil)

	require.Nil(t, got, "shouldn't return a page")

	var statusErr *stockapi.StatusError
	require.ErrorAs(t, err, &statusErr, "should return status error")
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode, "should carry http status")
	assert.Equal(t, "upstream unavailable", statusErr.Body, "should carry response body")
}

func TestUnitListStockLevels(t *testing.T) {
	page := stockapi.StockLevelPage{
		Items: []stockapi.StockLevel{
			{SKU: "TS-001-M-RED", QtyOnHand: 7.0},
		},
		Summary:    &stockapi.StockSummary{TotalItems: 1},
		Pagination: stockapi.Pagination{Page: 1, PageSize: 100, Total: 1, TotalPages: 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/stock", req.URL.Path, "should call stock endpoint")
		assert.Equal(t, apiKey, req.Header.Get("X-API-Key"), "should send api key header")
		assert.Equal(t, "100", req.URL.Query().Get("limit"), "should send limit")
		assert.Equal(t, "คลังหลัก", req.URL.Query().Get("warehouse"), "should send warehouse filter")
		assert.Equal(t, "true", req.URL.Query().Get("low_stock"), "should send low stock filter")

		wrt.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(wrt).Encode(page))
	}))
	t.Cleanup(srv.Close)

	client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

	got, err := client.ListStockLevels(context.TODO(), 1, 100, stockapi.StockFilters{
		Warehouse: lo.ToPtr("คลังหลัก"),
		LowStock:  true,
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &page, got, "should return decoded page")
}

func TestUnitCreateStockMovement(t *testing.T) {
	request := stockapi.MovementRequest{
		Type:   stockapi.MovementIssue,
		Reason: lo.ToPtr("production"),
		Lines: []stockapi.MovementLine{
			{SKU: "INK-BLK", Qty: 2.5, FromLocation: lo.ToPtr("A-01")},
		},
	}
	result := stockapi.MovementResult{DocNumber: "MV-2024-0042", Status: "POSTED", LinesCount: 1}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method, "should POST movements")
		assert.Equal(t, "/movements", req.URL.Path, "should call movements endpoint")
		assert.Equal(t, apiKey, req.Header.Get("X-API-Key"), "should send api key header")

		var got stockapi.MovementRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
		assert.Equal(t, request, got, "should send movement request body")

		wrt.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(wrt).Encode(result))
	}))
	t.Cleanup(srv.Close)

	client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

	got, err := client.CreateStockMovement(context.TODO(), request)

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, &result, got, "should return movement confirmation")
}

func TestUnitTestConnection(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "/company", req.URL.Path, "should call company endpoint")
			wrt.Header().Set("Content-Type", "application/json")
			_, _ = wrt.Write([]byte(`{"name":"Siam Screen Stock"}`))
		}))
		t.Cleanup(srv.Close)

		client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

		status := client.TestConnection(context.TODO())

		assert.True(t, status.Connected, "should be connected")
		require.NotNil(t, status.Name, "should carry remote name")
		assert.Equal(t, "Siam Screen Stock", *status.Name, "should carry remote name")
		assert.Nil(t, status.Error, "shouldn't carry an error")
	})

	t.Run("failure captured into result", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
			wrt.WriteHeader(http.StatusUnauthorized)
			_, _ = wrt.Write([]byte("bad key"))
		}))
		t.Cleanup(srv.Close)

		client := stockapi.NewClient(srv.Client(), srv.URL, apiKey)

		status := client.TestConnection(context.TODO())

		assert.False(t, status.Connected, "shouldn't be connected")
		require.NotNil(t, status.Error, "should capture the failure")
		assert.Contains(t, *status.Error, "bad key", "should include remote body")
	})
}
