package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds every live conversation, keyed by session id. Updates to a
// single session are serialized by a per-session lock, so concurrent
// messages for the same session apply one at a time while distinct
// sessions proceed independently.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
}

type entry struct {
	mu    sync.Mutex
	state *State
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: map[string]*entry{}}
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// GetOrCreate returns the session's state, creating it on first use.
// created reports whether this call created it. The returned snapshot is
// safe to read; mutations must go through Update.
func (s *Store) GetOrCreate(id string) (state *State, created bool) {
	e, created := s.lookup(id, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, created
}

// Get returns the session's state if it exists.
func (s *Store) Get(id string) (*State, bool) {
	e, _ := s.lookup(id, false)
	if e == nil {
		return nil, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state, true
}

// Update runs fn against the session's state under its lock, creating
// the session first if needed. fn sees and mutates the live state; the
// read-modify-write is atomic with respect to other Update calls for the
// same id.
func (s *Store) Update(id string, fn func(*State)) *State {
	e, _ := s.lookup(id, true)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(e.state)
	return e.state
}

// Evict destroys a session. Evicting an unknown id is a no-op.
func (s *Store) Evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func (s *Store) lookup(id string, create bool) (e *entry, created bool) {
	s.mu.RLock()
	e = s.sessions[id]
	s.mu.RUnlock()
	if e != nil || !create {
		return e, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e = s.sessions[id]; e != nil {
		return e, false
	}
	e = &entry{state: newState(id)}
	s.sessions[id] = e
	return e, true
}
