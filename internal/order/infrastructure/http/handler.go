package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/shop-backoffice/internal/fulfillment/application"
	"github.com/dmehra2102/shop-backoffice/internal/order/domain"
	"github.com/dmehra2102/shop-backoffice/pkg/httpapi"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type Handler struct {
	log    *slog.Logger
	coord  *application.Coordinator
	tracer trace.Tracer
}

func NewHandler(log *slog.Logger, coord *application.Coordinator) *Handler {
	return &Handler{
		log:    log,
		coord:  coord,
		tracer: otel.Tracer("order-http"),
	}
}

type lineReq struct {
	ProductID string           `json:"product_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
}

type createOrderReq struct {
	LocationID string    `json:"location_id"`
	CustomerID string    `json:"customer_id"`
	Lines      []lineReq `json:"lines"`
}

type updateLineReq struct {
	Quantity int64 `json:"quantity"`
}

type lineResp struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	StockRecordID string          `json:"stock_record_id"`
	Name          string          `json:"name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Total         decimal.Decimal `json:"total"`
}

type orderResp struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id,omitempty"`
	LocationID string          `json:"location_id"`
	Status     domain.Status   `json:"status"`
	Lines      []lineResp      `json:"lines"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	Version    int64           `json:"version"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	h.Register(r)
	return r
}

// Register adds the order routes to r.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.traced)
		r.Post("/orders", h.createOrder)
		r.Get("/orders/{id}", h.getOrder)
		r.Post("/orders/{id}/cancel", h.cancelOrder)
		r.Post("/orders/{id}/complete", h.completeOrder)
		r.Post("/orders/{id}/items", h.addItem)
		r.Patch("/orders/{id}/items/{lineID}", h.updateItem)
	})
}

// traced continues the caller's trace when a traceparent header is sent.
func (h *Handler) traced(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := h.tracer.Start(ctx, r.Method+" "+r.URL.Path, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()
		span.SetAttributes(attribute.String("http.request_id", middleware.GetReqID(ctx)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderReq
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	in := application.CreateOrderRequest{
		LocationID:     req.LocationID,
		CustomerID:     req.CustomerID,
		IdempotencyKey: r.Header.Get(IdempotencyKeyHeader),
		Lines:          make([]application.LineRequest, 0, len(req.Lines)),
	}
	for _, l := range req.Lines {
		in.Lines = append(in.Lines, application.LineRequest(l))
	}

	o, err := h.coord.CreateOrder(r.Context(), in)
	if err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, toResp(o))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.coord.GetOrder(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, o, err)
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.coord.CancelOrder(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, o, err)
}

func (h *Handler) completeOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.coord.CompleteOrder(r.Context(), chi.URLParam(r, "id"))
	h.respond(w, o, err)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req lineReq
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	o, err := h.coord.AddLine(r.Context(), chi.URLParam(r, "id"), application.LineRequest(req))
	h.respond(w, o, err)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	var req updateLineReq
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	o, err := h.coord.AdjustLineQuantity(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "lineID"), req.Quantity)
	h.respond(w, o, err)
}

func (h *Handler) respond(w http.ResponseWriter, o *domain.Order, err error) {
	if err != nil {
		httpapi.WriteError(w, h.log, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, toResp(o))
}

func toResp(o *domain.Order) orderResp {
	lines := make([]lineResp, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, lineResp{
			ID:            l.ID,
			ProductID:     l.ProductID,
			StockRecordID: l.StockRecordID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			UnitPrice:     l.UnitPrice,
			Total:         l.Total(),
		})
	}
	return orderResp{
		ID:         o.ID,
		CustomerID: o.CustomerID,
		LocationID: o.LocationID,
		Status:     o.Status,
		Lines:      lines,
		Subtotal:   o.Subtotal,
		Tax:        o.Tax,
		Total:      o.Total,
		Version:    o.Version,
	}
}
