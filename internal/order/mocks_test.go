package order

import (
	"context"
	"sort"
	"sync"

	"github.com/appetiteclub/apt/events"
	"github.com/google/uuid"
)

// MockRepo is a map-backed test double for Repo.
type MockRepo struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]*Order
	CreateFunc func(ctx context.Context, o *Order) error
	ListFunc   func(ctx context.Context) ([]*Order, error)
	SetFunc    func(ctx context.Context, id uuid.UUID, status Status, allowed ...Status) error
	DeleteFunc func(ctx context.Context, id uuid.UUID) error
}

func NewMockRepo() *MockRepo {
	return &MockRepo{orders: make(map[uuid.UUID]*Order)}
}

func (m *MockRepo) Create(ctx context.Context, o *Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *o
	m.orders[o.ID] = &clone
	return nil
}

func (m *MockRepo) Get(ctx context.Context, id uuid.UUID) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *o
	return &clone, nil
}

func (m *MockRepo) List(ctx context.Context) ([]*Order, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Order, 0, len(m.orders))
	for _, o := range m.orders {
		clone := *o
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (m *MockRepo) SetStatus(ctx context.Context, id uuid.UUID, status Status, allowed ...Status) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, id, status, allowed...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	if len(allowed) > 0 {
		permitted := false
		for _, a := range allowed {
			if o.Status == a {
				permitted = true
				break
			}
		}
		if !permitted {
			return ErrStaleStatus
		}
	}
	o.Status = status
	return nil
}

func (m *MockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return ErrOrderNotFound
	}
	delete(m.orders, id)
	return nil
}

// MockFallback records backup writes.
type MockFallback struct {
	mu      sync.Mutex
	entries map[string][]byte
	PutFunc func(ctx context.Context, key string, value []byte) error
}

func NewMockFallback() *MockFallback {
	return &MockFallback{entries: make(map[string][]byte)}
}

func (m *MockFallback) Put(ctx context.Context, key string, value []byte) error {
	if m.PutFunc != nil {
		return m.PutFunc(ctx, key, value)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *MockFallback) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// MockPublisher records published messages.
type MockPublisher struct {
	mu          sync.Mutex
	messages    [][]byte
	PublishFunc func(ctx context.Context, topic string, msg []byte) error
}

func NewMockPublisher() *MockPublisher {
	return &MockPublisher{}
}

func (m *MockPublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, topic, msg)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, msg)
	return nil
}

func (m *MockPublisher) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.messages)
}

// MockSubscriber captures the registered handler so tests can feed it
// messages directly.
type MockSubscriber struct {
	Topic         string
	Handler       events.HandlerFunc
	SubscribeFunc func(ctx context.Context, topic string, handler events.HandlerFunc) error
}

func (m *MockSubscriber) Subscribe(ctx context.Context, topic string, handler events.HandlerFunc) error {
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, topic, handler)
	}
	m.Topic = topic
	m.Handler = handler
	return nil
}
