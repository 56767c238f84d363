package entitlement

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store implementation for development and
// tests.
type MemoryStore struct {
	mu      sync.RWMutex
	counts  map[string]int
	premium map[string]bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counts:  make(map[string]int),
		premium: make(map[string]bool),
	}
}

func (s *MemoryStore) Count(_ context.Context, clientID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.counts[clientID], nil
}

func (s *MemoryStore) SetCount(_ context.Context, clientID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[clientID] = n
	return nil
}

func (s *MemoryStore) Premium(_ context.Context, clientID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.premium[clientID], nil
}

func (s *MemoryStore) SetPremium(_ context.Context, clientID string, premium bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if premium {
		s.premium[clientID] = true
	} else {
		delete(s.premium, clientID)
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, clientID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counts, clientID)
	delete(s.premium, clientID)
	return nil
}
