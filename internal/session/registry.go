package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/appetiteclub/apt"
)

// Registry tracks live sessions by app code.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	logger   apt.Logger
}

func NewRegistry(logger apt.Logger) *Registry {
	if logger == nil {
		logger = apt.NewNoopLogger()
	}
	return &Registry{
		sessions: make(map[string]*Session),
		logger:   logger,
	}
}

// Create mints a new session with a fresh app code.
func (r *Registry) Create() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	code := NewAppCode()
	for r.sessions[code] != nil {
		code = NewAppCode()
	}

	s := &Session{
		AppCode:   code,
		CreatedAt: time.Now(),
	}
	r.sessions[code] = s
	r.logger.Debug("session created", "app_code", code)
	return s
}

// Get returns the session for an app code.
func (r *Registry) Get(code string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[code]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", code)
	}
	return s, nil
}

// Connect marks the session identified by a scanned payload as paired.
func (r *Registry) Connect(payload string) (*Session, error) {
	code, err := ParseQRPayload(payload)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[code]
	if !ok {
		return nil, fmt.Errorf("session not found: %s", code)
	}
	if s.ConnectedAt == nil {
		now := time.Now()
		s.ConnectedAt = &now
	}
	return s, nil
}
