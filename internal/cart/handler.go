package cart

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"

	"github.com/scantoserve/scantoserve/internal/catalog"
)

const MaxBodyBytes = 1 << 20 // 1 MB

// Handler handles HTTP requests for session carts.
type Handler struct {
	registry *Registry
	catalog  *catalog.Catalog
	logger   apt.Logger
	config   *apt.Config
	tlm      *telemetry.HTTP
}

// NewHandler creates a new Handler for cart operations
func NewHandler(registry *Registry, cat *catalog.Catalog, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		registry: registry,
		catalog:  cat,
		logger:   logger,
		config:   config,
		tlm:      telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for carts
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/carts/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/lines", h.AddLine)
		r.Put("/lines", h.SetLineQuantity)
		r.Delete("/", h.ClearCart)
	})
}

// cartView is the response shape for cart reads and mutations.
type cartView struct {
	Lines []CartLine `json:"lines"`
	Totals
}

type addLinePayload struct {
	ItemID     string     `json:"item_id"`
	Selections Selections `json:"selections,omitempty"`
}

type setQuantityPayload struct {
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}

// GetCart handles GET /carts/{sessionID}
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetCart")
	defer finish()

	c := h.cart(r)
	apt.RespondSuccess(w, cartView{Lines: c.Lines(), Totals: c.Totals()})
}

// AddLine handles POST /carts/{sessionID}/lines
func (h *Handler) AddLine(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.AddLine")
	defer finish()
	log := h.log(r)

	var payload addLinePayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	item, err := h.catalog.Item(payload.ItemID)
	if err != nil {
		log.Debug("unknown menu item", "item_id", payload.ItemID)
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	c := h.cart(r)
	lines, err := c.AddOrMerge(item, payload.Selections)
	if err != nil {
		log.Error("cannot add cart line", "error", err, "item_id", payload.ItemID)
		apt.RespondError(w, http.StatusBadRequest, "Invalid customization selection")
		return
	}

	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, cartView{Lines: lines, Totals: c.Totals()})
}

// SetLineQuantity handles PUT /carts/{sessionID}/lines
func (h *Handler) SetLineQuantity(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SetLineQuantity")
	defer finish()
	log := h.log(r)

	var payload setQuantityPayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}
	if payload.LineID == "" {
		log.Debug("missing line_id")
		apt.RespondError(w, http.StatusBadRequest, "Missing line_id")
		return
	}

	c := h.cart(r)
	lines := c.SetQuantity(payload.LineID, payload.Quantity)
	apt.RespondSuccess(w, cartView{Lines: lines, Totals: c.Totals()})
}

// ClearCart handles DELETE /carts/{sessionID}
func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ClearCart")
	defer finish()

	c := h.cart(r)
	lines := c.Clear()
	apt.RespondSuccess(w, cartView{Lines: lines, Totals: c.Totals()})
}

func (h *Handler) cart(r *http.Request) *Cart {
	return h.registry.Get(chi.URLParam(r, "sessionID"))
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}

func (h *Handler) decodePayload(w http.ResponseWriter, r *http.Request, log apt.Logger, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("error reading request body", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Could not read request body")
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		log.Debug("invalid JSON payload", "error", err)
		apt.RespondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return false
	}
	return true
}
