package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/dmehra2102/shop-backoffice/internal/catalog/domain"
	catalogmem "github.com/dmehra2102/shop-backoffice/internal/catalog/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/internal/fulfillment/application"
	invapp "github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	invmem "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/memory"
	orderhttp "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/http"
	ordermem "github.com/dmehra2102/shop-backoffice/internal/order/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/pkg/httpapi"
)

type orderBody struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Lines  []struct {
		ID       string `json:"id"`
		Quantity int64  `json:"quantity"`
	} `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func newServer(t *testing.T) (*httptest.Server, *invapp.Ledger, string) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := invapp.NewLedger(log, invmem.NewRepository())
	rec, err := ledger.Create(context.Background(), "widget", "store-1", 2, 0)
	require.NoError(t, err)
	catalog := catalogmem.NewCatalog(catalogdomain.Product{
		ID: "widget", Name: "Widget", Price: decimal.RequireFromString("4.00"), Active: true,
	})
	coord := application.NewCoordinator(log, ledger, ordermem.NewRepository(), catalog, nil)
	srv := httptest.NewServer(orderhttp.NewHandler(log, coord).Routes())
	t.Cleanup(srv.Close)
	return srv, ledger, rec.ID
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestOrderLifecycleOverHTTP(t *testing.T) {
	srv, ledger, recordID := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/orders", `{"location_id":"store-1","lines":[{"product_id":"widget","quantity":1}]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[orderBody](t, resp)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "4", created.Total.String())

	resp = do(t, http.MethodPatch, srv.URL+"/orders/"+created.ID+"/items/"+created.Lines[0].ID, `{"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), decode[orderBody](t, resp).Lines[0].Quantity)

	rec, err := ledger.Get(context.Background(), recordID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rec.OnHand)

	resp = do(t, http.MethodPost, srv.URL+"/orders/"+created.ID+"/cancel", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", decode[orderBody](t, resp).Status)

	resp = do(t, http.MethodPost, srv.URL+"/orders/"+created.ID+"/cancel", "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "invalid_state", decode[httpapi.ErrorBody](t, resp).Code)

	resp = do(t, http.MethodGet, srv.URL+"/orders/"+created.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", decode[orderBody](t, resp).Status)
}

func TestCreateOrderInsufficientStockBody(t *testing.T) {
	srv, _, recordID := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/orders", `{"location_id":"store-1","lines":[{"product_id":"widget","quantity":3}]}`)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	body := decode[httpapi.ErrorBody](t, resp)
	assert.Equal(t, "insufficient_stock", body.Code)
	assert.Equal(t, recordID, body.Details["record_id"])
	assert.EqualValues(t, 2, body.Details["available"])
	assert.EqualValues(t, 0, body.Details["line"])
}

func TestOrderErrorsMapToStatus(t *testing.T) {
	srv, _, _ := newServer(t)

	resp := do(t, http.MethodPost, srv.URL+"/orders", `{"location_id":"store-1","lines":[]}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodPost, srv.URL+"/orders", `{"nope":true}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/orders/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order_not_found", decode[httpapi.ErrorBody](t, resp).Code)
}
