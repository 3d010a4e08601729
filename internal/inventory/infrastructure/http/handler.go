package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmehra2102/shop-backoffice/internal/inventory/application"
	"github.com/dmehra2102/shop-backoffice/internal/inventory/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/apperr"
	"github.com/dmehra2102/shop-backoffice/pkg/httpapi"
)

type Handler struct {
	log    *slog.Logger
	ledger *application.Ledger
}

func NewHandler(log *slog.Logger, ledger *application.Ledger) *Handler {
	return &Handler{log: log, ledger: ledger}
}

type createReq struct {
	ProductID        string `json:"product_id"`
	LocationID       string `json:"location_id"`
	OnHand           int64  `json:"on_hand"`
	ReorderThreshold int64  `json:"reorder_threshold"`
}

type amountReq struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

type stockResp struct {
	ID               string `json:"id"`
	ProductID        string `json:"product_id"`
	LocationID       string `json:"location_id"`
	OnHand           int64  `json:"on_hand"`
	Reserved         int64  `json:"reserved"`
	Available        int64  `json:"available"`
	ReorderThreshold int64  `json:"reorder_threshold"`
	InStock          bool   `json:"in_stock"`
	BelowReorder     bool   `json:"below_reorder"`
	Version          int64  `json:"version"`
}

type stockOp func(ctx context.Context, id string, amount int64, reason string) (domain.StockRecord, error)

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	h.Register(r)
	return r
}

// Register adds the stock routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Post("/stock", h.create)
	r.Get("/stock", h.list)
	r.Get("/stock/lookup", h.lookup)
	r.Route("/stock/{id}", func(r chi.Router) {
		r.Get("/", h.get)
		r.Post("/add", h.op(h.ledger.AddOnHand))
		r.Post("/remove", h.op(h.ledger.RemoveOnHand))
		r.Post("/reserve", h.op(h.ledger.Reserve))
		r.Post("/release", h.op(h.ledger.Release))
		r.Post("/consume", h.op(h.ledger.Consume))
		r.Put("/on-hand", h.op(h.ledger.SetOnHand))
		r.Put("/reorder-threshold", h.op(func(ctx context.Context, id string, amount int64, _ string) (domain.StockRecord, error) {
			return h.ledger.SetReorderThreshold(ctx, id, amount)
		}))
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createReq
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	rec, err := h.ledger.Create(r.Context(), req.ProductID, req.LocationID, req.OnHand, req.ReorderThreshold)
	if err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toResp(rec))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.ledger.Get(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, rec, err)
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	rec, err := h.ledger.Lookup(r.Context(), q.Get("product_id"), q.Get("location_id"))
	h.respond(w, rec, err)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := application.ListFilter{LocationID: q.Get("location_id")}
	if v := q.Get("below_reorder"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			httpapi.WriteError(w, h.log, apperr.Validation("invalid_query", "below_reorder must be a boolean"))
			return
		}
		filter.BelowReorderOnly = b
	}
	recs, err := h.ledger.List(r.Context(), filter)
	if err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	out := make([]stockResp, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toResp(rec))
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) op(fn stockOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req amountReq
		if err := httpapi.Decode(r, &req); err != nil {
			httpapi.WriteError(w, h.log, err)
			return
		}
		rec, err := fn(r.Context(), chi.URLParam(r, "id"), req.Amount, req.Reason)
		h.respond(w, rec, err)
	}
}

func (h *Handler) respond(w http.ResponseWriter, rec domain.StockRecord, err error) {
	if err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toResp(rec))
}

func toResp(rec domain.StockRecord) stockResp {
	return stockResp{
		ID:               rec.ID,
		ProductID:        rec.ProductID,
		LocationID:       rec.LocationID,
		OnHand:           rec.OnHand,
		Reserved:         rec.Reserved,
		Available:        rec.Available(),
		ReorderThreshold: rec.ReorderThreshold,
		InStock:          rec.IsInStock(),
		BelowReorder:     rec.IsBelowReorder(),
		Version:          rec.Version,
	}
}
