package checkout

import (
	"sync"

	"github.com/appetiteclub/apt"

	"github.com/scantoserve/scantoserve/internal/cart"
)

// Registry holds one checkout machine per session, bound to the
// session's cart.
type Registry struct {
	mu       sync.RWMutex
	machines map[string]*Machine
	carts    *cart.Registry
	store    OrderCreator
	logger   apt.Logger
}

func NewRegistry(carts *cart.Registry, store OrderCreator, logger apt.Logger) *Registry {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Registry{
		machines: make(map[string]*Machine),
		carts:    carts,
		store:    store,
		logger:   logger,
	}
}

// Get returns the session's checkout machine, creating one on first use.
func (r *Registry) Get(sessionID string) *Machine {
	r.mu.RLock()
	m, ok := r.machines[sessionID]
	r.mu.RUnlock()
	if ok {
		return m
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.machines[sessionID]; ok {
		return m
	}
	m = NewMachine(r.carts.Get(sessionID), r.store, r.logger)
	r.machines[sessionID] = m
	return m
}
