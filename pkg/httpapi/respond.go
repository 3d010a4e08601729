// Package httpapi holds the JSON response helpers shared by the HTTP
// handlers.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
)

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err's kind to a status code. Internal errors are logged
// and their message is not sent to the client.
func WriteError(w http.ResponseWriter, log *slog.Logger, err error) {
	status := StatusOf(err)
	body := ErrorBody{Code: apperr.CodeOf(err), Message: err.Error()}
	if status == http.StatusInternalServerError {
		log.Error("request failed", "err", err)
		body.Message = "internal error"
	}
	var d interface{ Details() map[string]any }
	if errors.As(err, &d) {
		body.Details = d.Details()
	}
	WriteJSON(w, status, body)
}

func StatusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Decode reads a JSON body, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperr.Validation("invalid_body", "invalid body: "+err.Error())
	}
	return nil
}
