package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry limits.
const (
	DefaultIdleTimeout = 12 * time.Hour
	DefaultMaxSessions = 1000
)

// Registry holds one in-memory Session per browser for the web surface.
// Each call runs its function to completion under the lock, so a session
// is never mutated by two requests at once.
//
// Sessions idle for longer than the idle timeout are dropped, and when the
// registry is full the least recently used session makes room.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewRegistry returns an empty Registry. Zero or negative limits take the
// defaults.
func NewRegistry(idleTimeout time.Duration, maxSessions int) *Registry {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	if maxSessions <= 0 {
		maxSessions = DefaultMaxSessions
	}
	return &Registry{
		sessions:    make(map[string]*entry),
		idleTimeout: idleTimeout,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Open returns id unchanged when it names a live session, otherwise it
// creates a fresh session under a new id.
func (r *Registry) Open(id string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if e, ok := r.lookup(id, now); ok {
		e.lastSeen = now
		return id
	}

	r.prune(now)
	for len(r.sessions) >= r.maxSessions {
		r.evictOldest()
	}

	id = uuid.NewString()
	r.sessions[id] = &entry{session: New(), lastSeen: now}
	return id
}

// With runs fn on the session named id. It reports false when id is unknown.
func (r *Registry) With(id string, fn func(*Session)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	e, ok := r.lookup(id, now)
	if !ok {
		return false
	}
	e.lastSeen = now
	fn(e.session)
	return true
}

// Snapshot returns a copy of the session named id.
func (r *Registry) Snapshot(id string) (Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.lookup(id, r.now())
	if !ok {
		return Session{}, false
	}
	return *e.session, true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(r.now())
	return len(r.sessions)
}

// lookup finds a session that has not expired, dropping it if it has.
func (r *Registry) lookup(id string, now time.Time) (*entry, bool) {
	if id == "" {
		return nil, false
	}
	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(e.lastSeen) > r.idleTimeout {
		delete(r.sessions, id)
		return nil, false
	}
	return e, true
}

func (r *Registry) prune(now time.Time) {
	for id, e := range r.sessions {
		if now.Sub(e.lastSeen) > r.idleTimeout {
			delete(r.sessions, id)
		}
	}
}

func (r *Registry) evictOldest() {
	var oldestID string
	var oldest time.Time
	for id, e := range r.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(r.sessions, oldestID)
}
