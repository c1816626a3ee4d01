package theme

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 64 << 10 // 64 KB

// Handler handles HTTP requests for themes.
type Handler struct {
	store  *Store
	logger apt.Logger
	config *apt.Config
	tlm    *telemetry.HTTP
}

// NewHandler creates a new Handler for theme operations
func NewHandler(store *Store, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		store:  store,
		logger: logger,
		config: config,
		tlm:    telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for themes
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/themes", h.ListThemes)
	r.Route("/sessions/{sessionID}/theme", func(r chi.Router) {
		r.Get("/", h.GetTheme)
		r.Put("/", h.SetTheme)
	})
}

type setThemePayload struct {
	Theme string `json:"theme"`
}

// ListThemes handles GET /themes
func (h *Handler) ListThemes(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ListThemes")
	defer finish()

	apt.RespondCollection(w, Presets(), "themes")
}

// GetTheme handles GET /sessions/{sessionID}/theme
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetTheme")
	defer finish()

	apt.RespondSuccess(w, h.store.Get(chi.URLParam(r, "sessionID")))
}

// SetTheme handles PUT /sessions/{sessionID}/theme
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SetTheme")
	defer finish()
	log := h.log(r)

	var payload setThemePayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	t, err := h.store.Set(chi.URLParam(r, "sessionID"), payload.Theme)
	if err != nil {
		log.Debug("theme rejected", "theme", payload.Theme)
		apt.RespondError(w, http.StatusBadRequest, "Unknown theme")
		return
	}

	apt.RespondSuccess(w, t)
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
