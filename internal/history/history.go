// Package history keeps a bounded in-memory record of generated passwords
// for the current process. Nothing is ever persisted.
package history

import (
	"sync"

	"github.com/passgen/passgen-go/internal/model"
)

// DefaultCap matches the dashboard's 30-entry session history.
const DefaultCap = 30

// Ring is a bounded ring buffer of generated passwords. When full, the
// oldest entry is evicted first. Safe for concurrent use.
type Ring struct {
	mu      sync.Mutex
	cap     int
	entries []model.GeneratedPassword
}

// NewRing creates a ring holding at most capacity entries.
// A capacity below 1 falls back to DefaultCap.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultCap
	}
	return &Ring{cap: capacity}
}

// Add appends an entry, evicting the oldest when the ring is full.
func (r *Ring) Add(entry model.GeneratedPassword) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entries) == r.cap {
		copy(r.entries, r.entries[1:])
		r.entries = r.entries[:r.cap-1]
	}
	r.entries = append(r.entries, entry)
}

// List returns the entries newest-first.
func (r *Ring) List() []model.GeneratedPassword {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.GeneratedPassword, len(r.entries))
	for i, e := range r.entries {
		out[len(r.entries)-1-i] = e
	}
	return out
}

// Get returns the entry with the given ID.
func (r *Ring) Get(id string) (model.GeneratedPassword, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.GeneratedPassword{}, false
}

// Clear removes all entries.
func (r *Ring) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
