package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	stockhttp "github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/http"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/infrastructure/memory"
	"github.com/dmehra2102/shop-backoffice/pkg/httpapi"
)

type stockBody struct {
	ID           string `json:"id"`
	OnHand       int64  `json:"on_hand"`
	Reserved     int64  `json:"reserved"`
	Available    int64  `json:"available"`
	BelowReorder bool   `json:"below_reorder"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ledger := application.NewLedger(log, memory.NewRepository())
	srv := httptest.NewServer(stockhttp.NewHandler(log, ledger).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func call(t *testing.T, method, url, body string, out any) int {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestStockOperationsOverHTTP(t *testing.T) {
	srv := newServer(t)

	var rec stockBody
	status := call(t, http.MethodPost, srv.URL+"/stock", `{"product_id":"P","location_id":"L","on_hand":10,"reorder_threshold":3}`, &rec)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, int64(10), rec.Available)

	base := srv.URL + "/stock/" + rec.ID
	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/reserve", `{"amount":4}`, &rec))
	assert.Equal(t, int64(4), rec.Reserved)
	assert.Equal(t, int64(6), rec.Available)

	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/consume", `{"amount":3,"reason":"picked"}`, &rec))
	assert.Equal(t, int64(7), rec.OnHand)
	assert.Equal(t, int64(1), rec.Reserved)

	require.Equal(t, http.StatusOK, call(t, http.MethodPost, base+"/remove", `{"amount":4}`, &rec))
	assert.Equal(t, int64(3), rec.OnHand)
	assert.True(t, rec.BelowReorder)

	var errBody httpapi.ErrorBody
	require.Equal(t, http.StatusConflict, call(t, http.MethodPost, base+"/reserve", `{"amount":5}`, &errBody))
	assert.Equal(t, "insufficient_available", errBody.Code)
	assert.EqualValues(t, 2, errBody.Details["available"])

	require.Equal(t, http.StatusConflict, call(t, http.MethodPut, base+"/on-hand", `{"amount":0}`, &errBody))
	assert.Equal(t, "insufficient_stock", errBody.Code)

	require.Equal(t, http.StatusBadRequest, call(t, http.MethodPost, base+"/add", `{"amount":-1}`, &errBody))
	assert.Equal(t, "invalid_argument", errBody.Code)

	require.Equal(t, http.StatusOK, call(t, http.MethodGet, srv.URL+"/stock/lookup?product_id=P&location_id=L", "", &rec))
	assert.Equal(t, int64(3), rec.OnHand)

	var list []stockBody
	require.Equal(t, http.StatusOK, call(t, http.MethodGet, srv.URL+"/stock?below_reorder=true", "", &list))
	assert.Len(t, list, 1)
}

func TestStockNotFoundAndDuplicates(t *testing.T) {
	srv := newServer(t)

	var errBody httpapi.ErrorBody
	assert.Equal(t, http.StatusNotFound, call(t, http.MethodGet, srv.URL+"/stock/missing", "", &errBody))
	assert.Equal(t, "stock_not_found", errBody.Code)

	body := `{"product_id":"P","location_id":"L","on_hand":1}`
	require.Equal(t, http.StatusCreated, call(t, http.MethodPost, srv.URL+"/stock", body, nil))
	assert.Equal(t, http.StatusConflict, call(t, http.MethodPost, srv.URL+"/stock", body, &errBody))
	assert.Equal(t, "stock_exists", errBody.Code)

	assert.Equal(t, http.StatusBadRequest, call(t, http.MethodGet, srv.URL+"/stock?below_reorder=maybe", "", &errBody))
}
