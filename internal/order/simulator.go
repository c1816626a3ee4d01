package order

import (
	"context"
	"errors"
	"time"

	"github.com/appetiteclub/apt"
)

const DefaultSimulatorInterval = 5 * time.Second

// Simulator advances non-terminal orders through the fulfillment
// progression based on their age. Each pass recomputes status from the
// creation timestamp, so a missed or delayed pass converges on the next
// one.
type Simulator struct {
	store    *Store
	interval time.Duration
	logger   apt.Logger
	now      func() time.Time
	cancel   context.CancelFunc
	done     chan struct{}
}

func NewSimulator(store *Store, interval time.Duration, logger apt.Logger) *Simulator {
	if interval <= 0 {
		interval = DefaultSimulatorInterval
	}
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Simulator{
		store:    store,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Start launches the background loop. It returns immediately.
func (s *Simulator) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("status simulator started", "interval", s.interval.String())
	return nil
}

// Stop cancels the loop and waits for the current pass to finish.
func (s *Simulator) Stop(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()

	select {
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.logger.Info("status simulator stopped")
	return nil
}

func (s *Simulator) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Pass(ctx)
		}
	}
}

// Pass evaluates every order once. A failure on one order is logged and
// does not block the rest of the pass.
func (s *Simulator) Pass(ctx context.Context) {
	orders, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("simulator cannot list orders", "error", err)
		return
	}

	now := s.now()
	for _, o := range orders {
		if o.Status.IsTerminal() {
			continue
		}

		computed := StatusForAge(o.Age(now))
		if computed == o.Status {
			continue
		}

		// Conditional on the status we read, so a cancel landing between
		// read and write wins.
		if err := s.store.UpdateStatus(ctx, o.ID, computed, o.Status); err != nil {
			if errors.Is(err, ErrStaleStatus) {
				s.logger.Debug("order changed concurrently, skipping", "order_id", o.ID.String())
				continue
			}
			s.logger.Error("simulator cannot update order", "error", err, "order_id", o.ID.String(), "status", string(computed))
			continue
		}
		s.logger.Debug("order status advanced", "order_id", o.ID.String(), "from", string(o.Status), "to", string(computed))
	}
}
