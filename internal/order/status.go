package order

import "time"

// Status values follow the fulfillment progression. Delivered and
// Cancelled are terminal.
type Status string

const (
	StatusPlaced         Status = "Order Placed"
	StatusPreparing      Status = "Preparing"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
	StatusCancelled      Status = "Cancelled"
)

// Age thresholds for the simulated fulfillment progression.
const (
	preparingAfter      = 15 * time.Second
	outForDeliveryAfter = 30 * time.Second
	deliveredAfter      = 45 * time.Second
)

// IsTerminal reports whether no further automatic transition applies.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Cancellable reports whether a user may still cancel from this status.
func (s Status) Cancellable() bool {
	return s == StatusPlaced || s == StatusPreparing
}

// StatusForAge maps an order's age to its simulated status. The mapping
// is a pure function of elapsed time, so a delayed evaluation still
// converges to the correct status.
func StatusForAge(age time.Duration) Status {
	switch {
	case age <= preparingAfter:
		return StatusPlaced
	case age <= outForDeliveryAfter:
		return StatusPreparing
	case age <= deliveredAfter:
		return StatusOutForDelivery
	default:
		return StatusDelivered
	}
}
