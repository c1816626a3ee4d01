package assist

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"
)

const MaxBodyBytes = 1 << 20 // 1 MB

// Handler handles HTTP requests for the assistant.
type Handler struct {
	assistant *Assistant
	logger    apt.Logger
	config    *apt.Config
	tlm       *telemetry.HTTP
}

// NewHandler creates a new Handler for assistant operations
func NewHandler(assistant *Assistant, config *apt.Config, logger apt.Logger) *Handler {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Handler{
		assistant: assistant,
		logger:    logger,
		config:    config,
		tlm:       telemetry.NewHTTP(),
	}
}

// RegisterRoutes registers all routes for the assistant
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/assist", func(r chi.Router) {
		r.Post("/chat", h.Chat)
		r.Post("/voice", h.VoiceTurn)
	})
}

type chatPayload struct {
	Message string        `json:"message"`
	History []ChatMessage `json:"history,omitempty"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

type voiceReply struct {
	Transcript string `json:"transcript"`
	Reply      string `json:"reply"`
}

// Chat handles POST /assist/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Chat")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	var payload chatPayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}
	if payload.Message == "" {
		log.Debug("missing message")
		apt.RespondError(w, http.StatusBadRequest, "Missing message")
		return
	}

	reply := h.assistant.Chat(ctx, payload.Message, payload.History)
	apt.RespondSuccess(w, chatReply{Reply: reply})
}

// VoiceTurn handles POST /assist/voice
func (h *Handler) VoiceTurn(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.VoiceTurn")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	var payload chatPayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	transcript, reply, err := h.assistant.VoiceTurn(ctx, payload.History)
	if err != nil {
		if errors.Is(err, ErrVoiceUnavailable) {
			log.Debug("voice exchange attempted without speech input")
			apt.RespondError(w, http.StatusServiceUnavailable, "Voice ordering is not configured")
			return
		}
		log.Error("voice turn failed", "error", err)
		apt.RespondError(w, http.StatusBadGateway, "Could not complete the voice exchange")
		return
	}

	apt.RespondSuccess(w, voiceReply{Transcript: transcript, Reply: reply})
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
