package order

import (
	"sync"
	"time"
)

const defaultActivityCapacity = 50

// ActivityEntry is one recorded order lifecycle event.
type ActivityEntry struct {
	EventType      string    `json:"event_type"`
	OrderID        string    `json:"order_id"`
	Status         string    `json:"status,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	Total          float64   `json:"total,omitempty"`
	PaymentMethod  string    `json:"payment_method,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// ActivityFeed keeps a bounded, in-memory trail of recent order events.
// Oldest entries are discarded once capacity is reached.
type ActivityFeed struct {
	mu       sync.RWMutex
	entries  []ActivityEntry
	capacity int
}

func NewActivityFeed(capacity int) *ActivityFeed {
	if capacity <= 0 {
		capacity = defaultActivityCapacity
	}
	return &ActivityFeed{
		entries:  make([]ActivityEntry, 0, capacity),
		capacity: capacity,
	}
}

func (f *ActivityFeed) Record(entry ActivityEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, entry)
	if len(f.entries) > f.capacity {
		f.entries = f.entries[len(f.entries)-f.capacity:]
	}
}

// Recent returns recorded entries newest-first.
func (f *ActivityFeed) Recent() []ActivityEntry {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]ActivityEntry, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	return out
}

func (f *ActivityFeed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries)
}
