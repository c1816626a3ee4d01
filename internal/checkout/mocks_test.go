package checkout

import (
	"context"
	"sync"

	"github.com/scantoserve/scantoserve/internal/order"
)

// MockOrderCreator records created orders.
type MockOrderCreator struct {
	mu         sync.Mutex
	orders     []*order.Order
	CreateFunc func(ctx context.Context, o *order.Order) error
}

func NewMockOrderCreator() *MockOrderCreator {
	return &MockOrderCreator{}
}

func (m *MockOrderCreator) Create(ctx context.Context, o *order.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	clone := *o
	m.orders = append(m.orders, &clone)
	return nil
}

func (m *MockOrderCreator) Created() []*order.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*order.Order, len(m.orders))
	copy(out, m.orders)
	return out
}
