package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"

	"github.com/scantoserve/scantoserve/internal/cart"
	"github.com/scantoserve/scantoserve/internal/order"
	"github.com/scantoserve/scantoserve/pkg/enums/payment"
)

// State names the checkout steps. Submitting is transient: a submit
// either completes and resets the machine to Reviewing, or fails and
// reverts to SelectingPayment.
type State string

const (
	StateReviewing         State = "reviewing"
	StateConfirming        State = "confirming"
	StateCollectingDetails State = "collecting_details"
	StateSelectingPayment  State = "selecting_payment"
	StateSubmitting        State = "submitting"
)

// OrderCreator persists the finalized order. Satisfied by *order.Store.
type OrderCreator interface {
	Create(ctx context.Context, o *order.Order) error
}

// Confirmation is the acknowledgment surfaced after a successful submit.
type Confirmation struct {
	OrderID       uuid.UUID `json:"order_id"`
	Total         float64   `json:"total"`
	PaymentMethod string    `json:"payment_method"`
}

// Machine drives one session's checkout. Guards reject invalid
// transitions and leave the state unchanged; mutations are serialized
// under a single lock.
type Machine struct {
	mu      sync.Mutex
	state   State
	cart    *cart.Cart
	details order.UserDetails
	payment payment.Method
	store   OrderCreator
	logger  apt.Logger
}

func NewMachine(c *cart.Cart, store OrderCreator, logger apt.Logger) *Machine {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Machine{
		state:   StateReviewing,
		cart:    c,
		payment: payment.Methods.UPI,
		store:   store,
		logger:  logger,
	}
}

// State returns the current step.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Details returns the customer details entered so far.
func (m *Machine) Details() order.UserDetails {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.details
}

// Payment returns the currently selected payment method.
func (m *Machine) Payment() payment.Method {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payment
}

// Begin moves Reviewing to the order summary gate. The cart must be
// non-empty.
func (m *Machine) Begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateReviewing {
		return fmt.Errorf("cannot begin checkout from %s", m.state)
	}
	if m.cart.IsEmpty() {
		return fmt.Errorf("cart is empty")
	}
	m.state = StateConfirming
	return nil
}

// ConfirmSummary advances past the order summary gate.
func (m *Machine) ConfirmSummary() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateConfirming {
		return fmt.Errorf("cannot confirm summary from %s", m.state)
	}
	m.state = StateCollectingDetails
	return nil
}

// SubmitDetails validates and stores the customer details, advancing to
// payment selection. On a validation failure the state is unchanged.
func (m *Machine) SubmitDetails(details order.UserDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateCollectingDetails {
		return fmt.Errorf("cannot submit details from %s", m.state)
	}
	if err := details.Validate(); err != nil {
		return err
	}
	m.details = details.Trimmed()
	m.state = StateSelectingPayment
	return nil
}

// SelectPayment replaces the chosen payment method.
func (m *Machine) SelectPayment(code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelectingPayment {
		return fmt.Errorf("cannot select payment from %s", m.state)
	}
	method, err := payment.Parse(code)
	if err != nil {
		return err
	}
	m.payment = method
	return nil
}

// Submit finalizes the checkout: it snapshots the cart into an order and
// persists it. On success the cart is cleared and the machine resets to
// Reviewing. On failure the machine reverts to SelectingPayment with the
// cart intact, so the user can retry.
func (m *Machine) Submit(ctx context.Context) (*Confirmation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateSelectingPayment {
		return nil, fmt.Errorf("cannot submit from %s", m.state)
	}
	// The cart can be cleared out from under the machine between Begin
	// and Submit; an order must never be persisted without items.
	if m.cart.IsEmpty() {
		m.state = StateReviewing
		return nil, fmt.Errorf("cart is empty")
	}
	if err := m.details.Validate(); err != nil {
		return nil, err
	}
	m.state = StateSubmitting

	totals := m.cart.Totals()
	o := &order.Order{
		Items:         m.cart.Lines(),
		Total:         totals.Total.InexactFloat64(),
		Customer:      m.details,
		PaymentMethod: m.payment.Code(),
	}
	o.BeforeCreate()

	if err := m.store.Create(ctx, o); err != nil {
		m.state = StateSelectingPayment
		m.logger.Error("order submission failed", "error", err)
		return nil, fmt.Errorf("cannot submit order: %w", err)
	}

	m.cart.Clear()
	m.state = StateReviewing
	m.logger.Info("order placed", "order_id", o.ID.String(), "total", o.Total, "payment_method", o.PaymentMethod)

	return &Confirmation{
		OrderID:       o.ID,
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
	}, nil
}

// Back steps one state backwards. Entered data is retained.
func (m *Machine) Back() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch m.state {
	case StateConfirming:
		m.state = StateReviewing
	case StateCollectingDetails:
		m.state = StateConfirming
	case StateSelectingPayment:
		m.state = StateCollectingDetails
	default:
		return fmt.Errorf("cannot go back from %s", m.state)
	}
	return nil
}

// Close abandons the checkout and resets to Reviewing. Rejected while a
// submit is in flight.
func (m *Machine) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateSubmitting {
		return fmt.Errorf("cannot close while submitting")
	}
	m.state = StateReviewing
	return nil
}
