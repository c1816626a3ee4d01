package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"

	"github.com/scantoserve/scantoserve/internal/cart"
)

// UserDetails identifies the customer placing an order. All four fields
// are required for checkout to proceed.
type UserDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Mobile    string `json:"mobile"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (u UserDetails) Trimmed() UserDetails {
	return UserDetails{
		FirstName: strings.TrimSpace(u.FirstName),
		LastName:  strings.TrimSpace(u.LastName),
		Email:     strings.TrimSpace(u.Email),
		Mobile:    strings.TrimSpace(u.Mobile),
	}
}

// Validate checks that every field is non-empty after trimming.
func (u UserDetails) Validate() error {
	t := u.Trimmed()
	switch {
	case t.FirstName == "":
		return fmt.Errorf("first name is required")
	case t.LastName == "":
		return fmt.Errorf("last name is required")
	case t.Email == "":
		return fmt.Errorf("email is required")
	case t.Mobile == "":
		return fmt.Errorf("mobile is required")
	}
	return nil
}

// Order is an immutable snapshot of a completed checkout. Status is the
// only field mutated after creation.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	Items         []cart.CartLine `json:"items"`
	Total         float64         `json:"total"`
	Status        Status          `json:"status"`
	Customer      UserDetails     `json:"customer"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (o *Order) GetID() uuid.UUID {
	return o.ID
}

func (o *Order) SetID(id uuid.UUID) {
	o.ID = id
}

func (o *Order) ResourceType() string {
	return "order"
}

func (o *Order) EnsureID() {
	if o.ID == uuid.Nil {
		o.ID = apt.GenerateNewID()
	}
}

func (o *Order) BeforeCreate() {
	o.EnsureID()
	if o.Status == "" {
		o.Status = StatusPlaced
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
}

// Age returns the elapsed time since the order was created.
func (o *Order) Age(now time.Time) time.Duration {
	return now.Sub(o.CreatedAt)
}

// Cancel moves the order to Cancelled. Only Placed and Preparing orders
// may be cancelled.
func (o *Order) Cancel() error {
	if !o.Status.Cancellable() {
		return fmt.Errorf("cannot cancel order in status %q", o.Status)
	}
	o.Status = StatusCancelled
	return nil
}

// Matches reports whether the order matches a free-text query over its
// id, customer fields, status, payment method and item names.
func (o *Order) Matches(q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	fields := []string{
		o.ID.String(),
		o.Customer.FirstName,
		o.Customer.LastName,
		o.Customer.Email,
		o.Customer.Mobile,
		string(o.Status),
		o.PaymentMethod,
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, line := range o.Items {
		if strings.Contains(strings.ToLower(line.Name), q) {
			return true
		}
	}
	return false
}
