// Package store keeps per-session selection state in memory. Sessions
// expire after a TTL so abandoned browser tabs do not pile up.
package store

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"planboard/internal/selection"
)

const (
	maxSessions = 4096
	defaultTTL  = 24 * time.Hour
)

// Store holds selection state per session with read-modify-write access.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, selection.State]
}

// New creates a session store. ttl <= 0 falls back to the default.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, selection.State](maxSessions, nil, ttl),
	}
}

// Get returns the state for a session, or the zero state when absent.
func (s *Store) Get(sessionID string) selection.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions.Get(sessionID)
	if !ok {
		return selection.State{SessionID: sessionID}
	}
	return cloneState(state)
}

// Put stores the state for its session.
func (s *Store) Put(state selection.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Add(state.SessionID, state)
}

// Update applies fn to the current state under the store lock and persists
// the result.
func (s *Store) Update(sessionID string, fn func(selection.State) selection.State) selection.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.sessions.Get(sessionID)
	if !ok {
		state = selection.State{SessionID: sessionID}
	}
	state = fn(cloneState(state))
	state.SessionID = sessionID
	s.sessions.Add(sessionID, state)
	return state
}

// cloneState copies the slice fields so states handed out of the store
// never alias the stored backing array. Without the copy, an in-place
// append or filter in one request would mutate snapshots already held
// by concurrent readers.
func cloneState(state selection.State) selection.State {
	if state.ExpandedParents != nil {
		state.ExpandedParents = append([]string(nil), state.ExpandedParents...)
	}
	return state
}

// Delete removes a session.
func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(sessionID)
}
