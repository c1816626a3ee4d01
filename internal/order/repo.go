package order

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrOrderNotFound marks an operation against an id with no stored order.
	ErrOrderNotFound = errors.New("order not found")
	// ErrStaleStatus marks a conditional status write whose guard no longer
	// held: the order exists, but its status changed since it was read.
	ErrStaleStatus = errors.New("order status changed concurrently")
)

// Repo persists orders. List returns newest first. SetStatus writes the
// new status only when the stored status is one of allowed, so a
// concurrent user action is never clobbered by a stale write; a guard
// miss reports ErrStaleStatus, an unknown id ErrOrderNotFound.
type Repo interface {
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id uuid.UUID) (*Order, error)
	List(ctx context.Context) ([]*Order, error)
	SetStatus(ctx context.Context, id uuid.UUID, status Status, allowed ...Status) error
	Delete(ctx context.Context, id uuid.UUID) error
}
