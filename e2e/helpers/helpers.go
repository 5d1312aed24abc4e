package helpers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/siamscreen/stocksync/internal/platform/storage/storagetesting"
	"github.com/siamscreen/stocksync/internal/stockapi"
	"github.com/stretchr/testify/require"

	pgmodels "github.com/siamscreen/stocksync/internal/platform/storage/gen/postgres/public/model"
)

// StockAPIState is mutable state of the mocked Stock API server.
type StockAPIState struct {
	ProductPage    stockapi.ProductPage
	StockLevelPage stockapi.StockLevelPage
}

// PrepareMockedStockAPI is helper function for mocking the Stock API server.
// The returned state can be mutated between requests to change responses.
func PrepareMockedStockAPI(t *testing.T, apiKey string) (*httptest.Server, *StockAPIState) {
	t.Helper()

	state := &StockAPIState{}

	srv := httptest.NewServer(http.HandlerFunc(func(wrt http.ResponseWriter, req *http.Request) {
		if req.Header.Get("X-API-Key") != apiKey {
			wrt.WriteHeader(http.StatusUnauthorized)
			return
		}

		wrt.Header().Add("Content-Type", "application/json")

		var err error
		switch req.URL.Path {
		case "/products":
			err = json.NewEncoder(wrt).Encode(state.ProductPage)
		case "/stock":
			err = json.NewEncoder(wrt).Encode(state.StockLevelPage)
		default:
			wrt.WriteHeader(http.StatusNotFound)
		}
		if err != nil {
			require.FailNow(t, "can't encode mocked response", err)
		}
	}))

	t.Cleanup(func() {
		srv.Close()
	})

	return srv, state
}

// DeclareRMQExchange is helper function for declaring RMQ exchange.
func DeclareRMQExchange(t *testing.T, ch *amqp.Channel, exchange string) {
	t.Helper()

	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		require.FailNow(t, "can't declare exchange", exchange, err)
	}
}

// DeclareRMQQueue is helper function for declaring RMQ queue and binding and cleaning them after test is finished.
func DeclareRMQQueue(t *testing.T, channel *amqp.Channel, queueName, exchange, routingKey string) {
	t.Helper()

	_, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		require.FailNow(t, "can't declare queue", queueName, err)
	}

	err = channel.QueueBind(queueName, routingKey, exchange, false, nil)
	if err != nil {
		require.FailNow(t, "can't bind queue", queueName, routingKey, err)
	}

	t.Cleanup(func() {
		_, err := channel.QueueDelete(queueName, false, false, true)
		if err != nil {
			require.FailNow(t, "can't delete queue", queueName, err)
		}
	})
}

// WaitForProducts is blocking helper function, returns stored products once
// at least n of them exist.
func WaitForProducts(t *testing.T, queryable qrm.Queryable, n int) []pgmodels.Product {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)
		products := storagetesting.GetProducts(t, queryable)
		if len(products) >= n {
			return products
		}
	}
}

// WaitForProductQty is blocking helper function, returns once the product with
// provided SKU has the expected stock quantity.
func WaitForProductQty(t *testing.T, queryable qrm.Queryable, sku string, qty int32) {
	t.Helper()

	for {
		<-time.After(time.Millisecond * 250)
		product := storagetesting.GetProductBySKU(t, queryable, sku)
		if product.StockQty == qty {
			return
		}
	}
}
