// Package registry tracks the single live game session of a process.
// Hosts ask the registry for the slot before building a session; a second
// request while one is live is refused with ErrAlreadyActive and leaves the
// first session untouched.
package registry

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrAlreadyActive is returned by Acquire while another session holds the slot.
var ErrAlreadyActive = errors.New("registry: a session is already active")

// Entry describes the session holding the slot.
type Entry struct {
	ID      uuid.UUID
	Owner   string // Host-supplied label (user name, "tui", "window")
	Started time.Time
}

// Registry holds at most one active Entry.
// It is safe for concurrent use; SSH connections race for the same slot.
type Registry struct {
	mu     sync.Mutex
	active *Entry
}

var defaultRegistry = New()

// New creates an empty registry.
func New() *Registry {
	return &Registry{}
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Acquire claims the slot for owner.
// Returns ErrAlreadyActive if another session holds it.
func (r *Registry) Acquire(owner string) (*Lease, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active != nil {
		return nil, ErrAlreadyActive
	}

	entry := Entry{
		ID:      uuid.New(),
		Owner:   owner,
		Started: time.Now(),
	}
	r.active = &entry

	return &Lease{reg: r, entry: entry}, nil
}

// Active returns the entry holding the slot, if any.
func (r *Registry) Active() (Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil {
		return Entry{}, false
	}
	return *r.active, true
}

// release frees the slot if id still holds it.
func (r *Registry) release(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active == nil || r.active.ID != id {
		return false
	}
	r.active = nil
	return true
}

// Lease is proof of holding the registry slot.
type Lease struct {
	reg   *Registry
	entry Entry
	once  sync.Once
}

// ID returns the session id assigned on Acquire.
func (l *Lease) ID() uuid.UUID {
	return l.entry.ID
}

// Entry returns the registry entry for this lease.
func (l *Lease) Entry() Entry {
	return l.entry
}

// Release frees the slot. Only the first call has an effect; it reports
// whether this call released it.
func (l *Lease) Release() bool {
	released := false
	l.once.Do(func() {
		released = l.reg.release(l.entry.ID)
	})
	return released
}
