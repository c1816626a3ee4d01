package catalog

import (
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	catalog *Catalog
	logger  apt.Logger
	config  *apt.Config
	tlm     *telemetry.HTTP
}

// NewHandler creates a new Handler for catalog operations
func NewHandler(catalog *Catalog, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		catalog: catalog,
		logger:  logger,
		config:  config,
		tlm:     telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the catalog
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/restaurant", h.GetRestaurant)
	r.Route("/menu", func(r chi.Router) {
		r.Get("/items", h.ListItems)
		r.Get("/items/{id}", h.GetItem)
		r.Get("/categories", h.ListCategories)
	})
}

// GetRestaurant handles GET /restaurant
func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetRestaurant")
	defer finish()

	apt.RespondSuccess(w, h.catalog.Restaurant())
}

// ListItems handles GET /menu/items with an optional category filter
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListItems")
	defer finish()

	category := r.URL.Query().Get("category")
	items := h.catalog.Items()
	if category != "" {
		items = h.catalog.ItemsByCategory(category)
	}

	apt.RespondCollection(w, items, "menu_items")
}

// GetItem handles GET /menu/items/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetItem")
	defer finish()
	log := h.log(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Debug("missing id parameter")
		apt.RespondError(w, http.StatusBadRequest, "Missing id parameter")
		return
	}

	item, err := h.catalog.Item(id)
	if err != nil {
		log.Debug("menu item not found", "id", id)
		apt.RespondError(w, http.StatusNotFound, "Menu item not found")
		return
	}

	apt.RespondSuccess(w, item)
}

// ListCategories handles GET /menu/categories
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListCategories")
	defer finish()

	apt.RespondCollection(w, h.catalog.Categories(), "categories")
}

func (h *Handler) log(r *http.Request) apt.Logger {
	return h.logger.With("request_id", r.Context().Value("request_id"))
}
