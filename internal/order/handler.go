package order

import (
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for orders.
type Handler struct {
	store    *Store
	activity *ActivityFeed
	logger   apt.Logger
	config   *apt.Config
	tlm      *telemetry.HTTP
}

// NewHandler creates a new Handler for order operations
func NewHandler(store *Store, activity *ActivityFeed, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		store:    store,
		activity: activity,
		logger:   logger,
		config:   config,
		tlm:      telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for orders
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/activity", h.ListActivity)
		r.Get("/{id}", h.GetOrder)
		r.Post("/{id}/cancel", h.CancelOrder)
		r.Delete("/{id}", h.DeleteOrder)
	})
}

// ListActivity handles GET /orders/activity
func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListActivity")
	defer finish()

	entries := []ActivityEntry{}
	if h.activity != nil {
		entries = h.activity.Recent()
	}

	apt.RespondCollection(w, entries, "activity")
}

// ListOrders handles GET /orders with an optional free-text q filter
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListOrders")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	orders, err := h.store.List(ctx)
	if err != nil {
		log.Error("cannot list orders", "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not list orders")
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		filtered := make([]*Order, 0, len(orders))
		for _, o := range orders {
			if o.Matches(q) {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	apt.RespondCollection(w, orders, "orders")
}

// GetOrder handles GET /orders/{id}
func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetOrder")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	o, err := h.store.Get(ctx, id)
	if err != nil {
		log.Debug("order not found", "id", id.String(), "error", err)
		apt.RespondError(w, http.StatusNotFound, "Order not found")
		return
	}

	links := apt.RESTfulLinksFor(o)
	apt.RespondSuccess(w, o, links...)
}

// CancelOrder handles POST /orders/{id}/cancel
func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CancelOrder")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	o, err := h.store.Cancel(ctx, id)
	if err != nil {
		log.Debug("cannot cancel order", "id", id.String(), "error", err)
		apt.RespondError(w, http.StatusConflict, "Order can no longer be cancelled")
		return
	}

	apt.RespondSuccess(w, o)
}

// DeleteOrder handles DELETE /orders/{id}
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.DeleteOrder")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	id, ok := h.parseIDParam(w, r, log)
	if !ok {
		return
	}

	if err := h.store.Delete(ctx, id); err != nil {
		log.Error("cannot delete order", "id", id.String(), "error", err)
		apt.RespondError(w, http.StatusInternalServerError, "Could not delete order")
		return
	}

	apt.Respond(w, http.StatusNoContent, nil, nil)
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) parseIDParam(w http.ResponseWriter, r *http.Request, log apt.Logger) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		log.Debug("invalid id parameter", "id", idStr, "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid id parameter")
		return uuid.Nil, false
	}

	return id, true
}
