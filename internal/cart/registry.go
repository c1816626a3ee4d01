package cart

import (
	"sync"

	"github.com/appetiteclub/apt"
)

// Registry holds the live carts, one per session.
type Registry struct {
	mu     sync.RWMutex
	carts  map[string]*Cart
	logger apt.Logger
}

func NewRegistry(logger apt.Logger) *Registry {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Registry{
		carts:  make(map[string]*Cart),
		logger: logger,
	}
}

// Get returns the session's cart, creating an empty one on first use.
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.RLock()
	c, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c = New()
	r.carts[sessionID] = c
	r.logger.Debug("cart created", "session_id", sessionID)
	return c
}

// Drop removes a session's cart.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}

// Len returns the number of live carts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
