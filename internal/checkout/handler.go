package checkout

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/telemetry"
	"github.com/go-chi/chi/v5"

	"github.com/scantoserve/scantoserve/internal/order"
	"github.com/scantoserve/scantoserve/pkg/enums/payment"
)

const MaxBodyBytes = 1 << 20 // 1 MB

// Handler handles HTTP requests for the checkout flow.
type Handler struct {
	registry *Registry
	logger   apt.Logger
	config   *apt.Config
	tlm      *telemetry.HTTP
}

// NewHandler creates a new Handler for checkout operations
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

// RegisterRoutes registers all routes for checkout
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/payment-methods", h.PaymentMethods)
	r.Route("/checkout/{sessionID}", func(r chi.Router) {
		r.Get("/", h.GetCheckout)
		r.Post("/begin", h.Begin)
		r.Post("/confirm", h.ConfirmSummary)
		r.Post("/details", h.SubmitDetails)
		r.Post("/payment", h.SelectPayment)
		r.Post("/submit", h.Submit)
		r.Post("/back", h.Back)
		r.Post("/close", h.Close)
	})
}

// checkoutView is the response shape for checkout reads and transitions.
type checkoutView struct {
	State         State             `json:"state"`
	Details       order.UserDetails `json:"details"`
	PaymentMethod string            `json:"payment_method"`
}

type selectPaymentPayload struct {
	Method string `json:"method"`
}

// GetCheckout handles GET /checkout/{sessionID}
func (h *Handler) GetCheckout(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.GetCheckout")
	defer finish()

	apt.RespondSuccess(w, h.view(r))
}

// Begin handles POST /checkout/{sessionID}/begin
func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Begin")
	defer finish()

	h.transition(w, r, h.machine(r).Begin)
}

// ConfirmSummary handles POST /checkout/{sessionID}/confirm
func (h *Handler) ConfirmSummary(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.ConfirmSummary")
	defer finish()

	h.transition(w, r, h.machine(r).ConfirmSummary)
}

// SubmitDetails handles POST /checkout/{sessionID}/details
func (h *Handler) SubmitDetails(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SubmitDetails")
	defer finish()
	log := h.log(r)

	var details order.UserDetails
	if !h.decodePayload(w, r, log, &details) {
		return
	}

	h.transition(w, r, func() error {
		return h.machine(r).SubmitDetails(details)
	})
}

// SelectPayment handles POST /checkout/{sessionID}/payment
func (h *Handler) SelectPayment(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.SelectPayment")
	defer finish()
	log := h.log(r)

	var payload selectPaymentPayload
	if !h.decodePayload(w, r, log, &payload) {
		return
	}

	h.transition(w, r, func() error {
		return h.machine(r).SelectPayment(payload.Method)
	})
}

// Submit handles POST /checkout/{sessionID}/submit
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Submit")
	defer finish()
	log := h.log(r)
	ctx := r.Context()

	confirmation, err := h.machine(r).Submit(ctx)
	if err != nil {
		log.Error("checkout submit failed", "error", err)
		apt.RespondError(w, http.StatusBadGateway, "Could not place the order, please retry")
		return
	}

	w.WriteHeader(http.StatusCreated)
	apt.RespondSuccess(w, confirmation)
}

// Back handles POST /checkout/{sessionID}/back
func (h *Handler) Back(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Back")
	defer finish()

	h.transition(w, r, h.machine(r).Back)
}

// Close handles POST /checkout/{sessionID}/close
func (h *Handler) Close(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.Close")
	defer finish()

	h.transition(w, r, h.machine(r).Close)
}

// PaymentMethods handles GET /payment-methods
func (h *Handler) PaymentMethods(w http.ResponseWriter, r *http.Request) {
	w, r, finish := h.tlm.Start(w, r, "Handler.PaymentMethods")
	defer finish()

	type methodView struct {
		Code  string `json:"code"`
		Label string `json:"label"`
	}
	methods := make([]methodView, 0, len(payment.All))
	for _, m := range payment.All {
		methods = append(methods, methodView{Code: m.Code(), Label: m.Label()})
	}
	apt.RespondCollection(w, methods, "payment_methods")
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, apply func() error) {
	log := h.log(r)
	if err := apply(); err != nil {
		log.Debug("checkout transition rejected", "error", err)
		apt.RespondError(w, http.StatusConflict, err.Error())
		return
	}
	apt.RespondSuccess(w, h.view(r))
}

func (h *Handler) view(r *http.Request) checkoutView {
	m := h.machine(r)
	return checkoutView{
		State:         m.State(),
		Details:       m.Details(),
		PaymentMethod: m.Payment().Code(),
	}
}

func (h *Handler) machine(r *http.Request) *Machine {
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
