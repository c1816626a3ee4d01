package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/appetiteclub/apt"
	"github.com/google/uuid"
)

func simulatorFixture(t *testing.T) (*MockRepo, *Store, *Simulator) {
	t.Helper()
	repo := NewMockRepo()
	store := NewStore(repo, nil, nil, apt.NewNoopLogger())
	sim := NewSimulator(store, time.Second, apt.NewNoopLogger())
	return repo, store, sim
}

func TestSimulatorPassProgression(t *testing.T) {
	_, store, sim := simulatorFixture(t)

	now := time.Now()
	sim.now = func() time.Time { return now }

	ages := []struct {
		age  time.Duration
		want Status
	}{
		{age: 10 * time.Second, want: StatusPlaced},
		{age: 20 * time.Second, want: StatusPreparing},
		{age: 35 * time.Second, want: StatusOutForDelivery},
		{age: 50 * time.Second, want: StatusDelivered},
	}

	ids := make([]uuid.UUID, len(ages))
	for i, a := range ages {
		o := placedOrder(now.Add(-a.age))
		if err := store.Create(context.Background(), o); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
		ids[i] = o.ID
	}

	sim.Pass(context.Background())

	for i, a := range ages {
		got, err := store.Get(context.Background(), ids[i])
		if err != nil {
			t.Fatalf("Get() unexpected error: %v", err)
		}
		if got.Status != a.want {
			t.Errorf("order aged %s: status = %q, want %q", a.age, got.Status, a.want)
		}
	}
}

func TestSimulatorNeverTouchesCancelledOrders(t *testing.T) {
	_, store, sim := simulatorFixture(t)

	now := time.Now()
	sim.now = func() time.Time { return now }

	o := placedOrder(now.Add(-50 * time.Second))
	o.Status = StatusCancelled
	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	sim.Pass(context.Background())

	got, err := store.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("cancelled order advanced to %q", got.Status)
	}
}

func TestSimulatorIsolatesPerOrderFailures(t *testing.T) {
	repo, store, sim := simulatorFixture(t)

	now := time.Now()
	sim.now = func() time.Time { return now }

	failing := placedOrder(now.Add(-20 * time.Second))
	healthy := placedOrder(now.Add(-35 * time.Second))
	for _, o := range []*Order{failing, healthy} {
		if err := store.Create(context.Background(), o); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}

	repo.SetFunc = func(ctx context.Context, id uuid.UUID, status Status, allowed ...Status) error {
		if id == failing.ID {
			return errors.New("write timeout")
		}
		f := repo.SetFunc
		repo.SetFunc = nil
		defer func() { repo.SetFunc = f }()
		return repo.SetStatus(ctx, id, status, allowed...)
	}

	sim.Pass(context.Background())

	got, err := store.Get(context.Background(), healthy.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Status != StatusOutForDelivery {
		t.Errorf("healthy order status = %q, want %q; a failing sibling must not block the pass", got.Status, StatusOutForDelivery)
	}
}

func TestSimulatorConditionalWriteRespectsCancellation(t *testing.T) {
	repo, store, sim := simulatorFixture(t)

	now := time.Now()
	sim.now = func() time.Time { return now }

	o := placedOrder(now.Add(-20 * time.Second))
	if err := store.Create(context.Background(), o); err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}

	// A cancellation lands between the simulator's read and write.
	repo.ListFunc = func(ctx context.Context) ([]*Order, error) {
		repo.ListFunc = nil
		orders, err := repo.List(ctx)
		if err != nil {
			return nil, err
		}
		if _, err := store.Cancel(ctx, o.ID); err != nil {
			return nil, err
		}
		return orders, nil
	}

	sim.Pass(context.Background())

	got, err := store.Get(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Errorf("status = %q, want %q; the simulator must not overwrite a cancellation", got.Status, StatusCancelled)
	}
}

func TestSimulatorStartStop(t *testing.T) {
	_, _, sim := simulatorFixture(t)

	if err := sim.Start(context.Background()); err != nil {
		t.Fatalf("Start() unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := sim.Stop(ctx); err != nil {
		t.Fatalf("Stop() unexpected error: %v", err)
	}

	// Stop on a never-started simulator is a no-op.
	idle := NewSimulator(NewStore(NewMockRepo(), nil, nil, apt.NewNoopLogger()), time.Second, apt.NewNoopLogger())
	if err := idle.Stop(context.Background()); err != nil {
		t.Fatalf("Stop() on idle simulator unexpected error: %v", err)
	}
}
