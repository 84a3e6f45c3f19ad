package booking

import (
	"context"
	"sync"

	"railbook/internal/booking/domain"
	"railbook/pkg/sentinel"
)

// InMemoryStore keeps drafts in a process-local map. The default backend for
// development and unit tests.
type InMemoryStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{drafts: make(map[string]domain.Draft)}
}

func (s *InMemoryStore) Load(_ context.Context, sessionID string) (domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[sessionID]
	if !ok {
		return domain.Draft{}, sentinel.ErrNotFound
	}
	return draft, nil
}

func (s *InMemoryStore) Save(_ context.Context, sessionID string, draft domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = draft
	return nil
}
