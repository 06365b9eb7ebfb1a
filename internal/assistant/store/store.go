// Package store keeps assistant chat sessions in memory. Sessions expire
// after a TTL; the durable transcript lives upstream in the conversation
// store, so an expired session loses only its pending suggestion.
package store

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"planboard/internal/assistant"
)

const (
	maxSessions = 2048
	defaultTTL  = 2 * time.Hour
)

// Store holds chat sessions with read-modify-write access.
type Store struct {
	mu       sync.Mutex
	sessions *expirable.LRU[string, assistant.Session]
}

// New creates a session store. ttl <= 0 falls back to the default.
func New(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, assistant.Session](maxSessions, nil, ttl),
	}
}

// Get returns the session and whether it exists.
func (s *Store) Get(id string) (assistant.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions.Get(id)
}

// Put stores the session under its ID.
func (s *Store) Put(sess assistant.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess.UpdatedAt = time.Now()
	s.sessions.Add(sess.ID, sess)
}

// Update applies fn to the session under the store lock and persists the
// result. It reports false when the session does not exist.
func (s *Store) Update(id string, fn func(assistant.Session) assistant.Session) (assistant.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions.Get(id)
	if !ok {
		return assistant.Session{}, false
	}
	sess = fn(sess)
	sess.ID = id
	sess.UpdatedAt = time.Now()
	s.sessions.Add(id, sess)
	return sess, true
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions.Remove(id)
}
