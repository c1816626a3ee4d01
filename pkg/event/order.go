package event

import "time"

// OrdersTopic carries all order lifecycle events.
const OrdersTopic = "orders.lifecycle"

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
	EventOrderDeleted       = "order.deleted"
)

// OrderEvent is the wire payload published on OrdersTopic.
type OrderEvent struct {
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          float64   `json:"total,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
