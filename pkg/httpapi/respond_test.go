package httpapi_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
	"github.com/dmehra2102/shop-backoffice/pkg/httpapi"
)

var errShort = apperr.Conflict("short", "not enough")

type detailed struct{ error }

func (d detailed) Unwrap() error { return d.error }

func (d detailed) Details() map[string]any { return map[string]any{"available": 2} }

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) httpapi.ErrorBody {
	t.Helper()
	var body httpapi.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWriteErrorMapsKinds(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperr.Validation("bad", "bad input"), http.StatusBadRequest, "bad"},
		{fmt.Errorf("get x: %w", apperr.NotFound("gone", "missing")), http.StatusNotFound, "gone"},
		{errShort, http.StatusConflict, "short"},
		{errors.New("disk on fire"), http.StatusInternalServerError, "internal"},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		httpapi.WriteError(rec, log, tc.err)
		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, tc.code, decodeBody(t, rec).Code)
	}
}

func TestWriteErrorHidesInternalMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	httpapi.WriteError(rec, slog.New(slog.NewTextHandler(io.Discard, nil)), errors.New("password=hunter2"))
	assert.Equal(t, "internal error", decodeBody(t, rec).Message)
}

func TestWriteErrorCarriesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	httpapi.WriteError(rec, slog.New(slog.NewTextHandler(io.Discard, nil)), detailed{errShort})
	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, float64(2), body.Details["available"])
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a","extra":1}`))
	err := httpapi.Decode(r, &v)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}`))
	require.NoError(t, httpapi.Decode(r, &v))
	assert.Equal(t, "a", v.Name)
}
