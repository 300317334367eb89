package checkout

import (
	"context"
	"sync"

	"wanderbook/models"
)

// memorySessionStore is a process-local SessionStore for tests and
// single-node development. Sessions are copied on read and write so callers
// never share the stored value.
type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.CheckoutSession
}

// NewMemorySessionStore returns an in-memory SessionStore.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]models.CheckoutSession)}
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*models.CheckoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := sess
	return &cp, nil
}

func (s *memorySessionStore) Save(_ context.Context, sess *models.CheckoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.SessionID] = *sess
	return nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
