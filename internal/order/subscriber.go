package order

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/events"

	"github.com/scantoserve/scantoserve/pkg/event"
)

// EventSubscriber consumes order lifecycle events and records them on the
// activity feed.
type EventSubscriber struct {
	subscriber events.Subscriber
	feed       *ActivityFeed
	logger     apt.Logger
}

func NewEventSubscriber(subscriber events.Subscriber, feed *ActivityFeed, logger apt.Logger) *EventSubscriber {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &EventSubscriber{
		subscriber: subscriber,
		feed:       feed,
		logger:     logger,
	}
}

func (s *EventSubscriber) Start(ctx context.Context) error {
	s.logger.Info("Starting order event subscriber", "topic", event.OrdersTopic)

	if err := s.subscriber.Subscribe(ctx, event.OrdersTopic, s.handleEvent); err != nil {
		return fmt.Errorf("cannot subscribe to %s: %w", event.OrdersTopic, err)
	}

	return nil
}

func (s *EventSubscriber) handleEvent(ctx context.Context, msg []byte) error {
	var evt event.OrderEvent
	if err := json.Unmarshal(msg, &evt); err != nil {
		s.logger.Errorf("Cannot unmarshal order event: %v", err)
		return nil
	}

	s.feed.Record(ActivityEntry{
		EventType:      evt.EventType,
		OrderID:        evt.OrderID,
		Status:         evt.Status,
		PreviousStatus: evt.PreviousStatus,
		Total:          evt.Total,
		PaymentMethod:  evt.PaymentMethod,
		OccurredAt:     evt.OccurredAt,
	})

	s.logger.Debug("order event recorded", "type", evt.EventType, "order_id", evt.OrderID)
	return nil
}
