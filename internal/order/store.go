package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"
	"github.com/google/uuid"

	"github.com/scantoserve/scantoserve/pkg/event"
)

// FallbackCache is a best-effort backup for created orders. It is never
// read back as an authority.
type FallbackCache interface {
	Put(ctx context.Context, key string, value []byte) error
}

// Store is the single authority for persisted orders. It fronts the
// repository, keeps the best-effort fallback copy, and publishes
// lifecycle events.
type Store struct {
	repo      Repo
	fallback  FallbackCache
	publisher events.Publisher
	logger    apt.Logger
}

func NewStore(repo Repo, fallback FallbackCache, publisher events.Publisher, logger apt.Logger) *Store {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Store{
		repo:      repo,
		fallback:  fallback,
		publisher: publisher,
		logger:    logger,
	}
}

// Create persists the order. The fallback copy and the lifecycle event
// are best-effort: their failures are logged, never surfaced.
func (s *Store) Create(ctx context.Context, o *Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}
	o.BeforeCreate()

	if err := s.repo.Create(ctx, o); err != nil {
		return fmt.Errorf("cannot create order: %w", err)
	}

	s.backup(ctx, o)
	s.publish(ctx, event.OrderEvent{
		EventType:     event.EventOrderPlaced,
		OrderID:       o.ID.String(),
		Status:        string(o.Status),
		Total:         o.Total,
		PaymentMethod: o.PaymentMethod,
	})
	return nil
}

// Get returns a single order.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cannot get order: %w", err)
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

// List returns all orders, newest first.
func (s *Store) List(ctx context.Context) ([]*Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("cannot list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus writes the new status, conditional on the stored status
// still being one of allowed.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, allowed ...Status) error {
	if err := s.repo.SetStatus(ctx, id, status, allowed...); err != nil {
		return fmt.Errorf("cannot update order status: %w", err)
	}
	s.publish(ctx, event.OrderEvent{
		EventType: event.EventOrderStatusChanged,
		OrderID:   id.String(),
		Status:    string(status),
	})
	return nil
}

// Cancel moves an order to Cancelled. Only Placed and Preparing orders
// qualify; the write is conditional on that so a simulator update racing
// the cancel cannot resurrect the order.
func (s *Store) Cancel(ctx context.Context, id uuid.UUID) (*Order, error) {
	o, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := o.Status
	if err := o.Cancel(); err != nil {
		return nil, err
	}

	if err := s.repo.SetStatus(ctx, id, StatusCancelled, StatusPlaced, StatusPreparing); err != nil {
		return nil, fmt.Errorf("cannot cancel order: %w", err)
	}
	s.publish(ctx, event.OrderEvent{
		EventType:      event.EventOrderCancelled,
		OrderID:        id.String(),
		Status:         string(StatusCancelled),
		PreviousStatus: string(previous),
	})
	return o, nil
}

// Delete removes the order permanently.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("cannot delete order: %w", err)
	}
	s.publish(ctx, event.OrderEvent{
		EventType: event.EventOrderDeleted,
		OrderID:   id.String(),
	})
	return nil
}

func (s *Store) backup(ctx context.Context, o *Order) {
	if s.fallback == nil {
		return
	}
	data, err := json.Marshal(o)
	if err != nil {
		s.logger.Error("cannot marshal order for backup", "error", err, "order_id", o.ID.String())
		return
	}
	if err := s.fallback.Put(ctx, o.ID.String(), data); err != nil {
		s.logger.Error("cannot write order backup", "error", err, "order_id", o.ID.String())
	}
}

func (s *Store) publish(ctx context.Context, evt event.OrderEvent) {
	if s.publisher == nil {
		return
	}
	evt.OccurredAt = time.Now()
	data, err := json.Marshal(evt)
	if err != nil {
		s.logger.Error("cannot marshal order event", "error", err, "event_type", evt.EventType)
		return
	}
	if err := s.publisher.Publish(ctx, event.OrdersTopic, data); err != nil {
		s.logger.Error("cannot publish order event", "error", err, "event_type", evt.EventType, "order_id", evt.OrderID)
	}
}
