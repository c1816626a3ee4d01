package session

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 64 << 10 // 64 KB

// Handler handles HTTP requests for device sessions.
type Handler struct {
	registry *Registry
	logger   apt.Logger
	config   *apt.Config
	tlm      *telemetry.HTTP
}

// NewHandler creates a new Handler for session operations
func NewHandler(registry *Registry, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		registry: registry,
		logger:   logger,
		config:   config,
		tlm:      telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for sessions
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.CreateSession)
		r.Post("/scan", h.Scan)
		r.Get("/{code}", h.GetSession)
	})
}

// sessionView adds the QR payload to the session for clients that render
// the code.
type sessionView struct {
	*Session
	QRPayload string `json:"qr_payload"`
}

type scanPayload struct {
	Payload string `json:"payload"`
}

// CreateSession handles POST /sessions
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.CreateSession")
	defer finish()

	s := h.registry.Create()
	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, sessionView{Session: s, QRPayload: s.QRPayload()})
}

// Scan handles POST /sessions/scan
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Scan")
	defer finish()
	log := h.log(r)

	var payload scanPayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	s, err := h.registry.Connect(payload.Payload)
	if err != nil {
		log.Debug("scan rejected", "error", err)
		apt.RespondError(w, http.StatusNotFound, "Unrecognized QR code")
		return
	}

	apt.RespondSuccess(w, sessionView{Session: s, QRPayload: s.QRPayload()})
}

// GetSession handles GET /sessions/{code}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetSession")
	defer finish()
	log := h.log(r)

	code := chi.URLParam(r, "code")
	s, err := h.registry.Get(code)
	if err != nil {
		log.Debug("session not found", "app_code", code)
		apt.RespondError(w, http.StatusNotFound, "Session not found")
		return
	}

	apt.RespondSuccess(w, sessionView{Session: s, QRPayload: s.QRPayload()})
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
