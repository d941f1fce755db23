// Package session holds the identity of the currently signed-in owner.
// It is process-local state, not persisted anywhere.
package session

import "sync"

type Session struct {
	mu       sync.RWMutex
	ownerID  string
	username string
}

func New() *Session {
	return &Session{}
}

// SetOwner records who is signed in. It replaces any prior identity.
func (s *Session) SetOwner(ownerID, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID = ownerID
	s.username = username
}

// Clear drops the identity. Callers purge local data separately.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ownerID = ""
	s.username = ""
}

func (s *Session) OwnerID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerID != ""
}
