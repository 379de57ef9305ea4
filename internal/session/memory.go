package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	token    string
	deadline time.Time
}

// MemoryStore is the default TokenStore: a process-local map. Sessions do not
// survive a restart, which is acceptable for single-instance deployments
// where the user just logs in again.
type MemoryStore struct {
	mu  sync.Mutex
	m   map[string]memoryEntry
	ttl time.Duration
}

// NewMemoryStore creates an in-process store whose entries expire after ttl.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{m: make(map[string]memoryEntry), ttl: ttl}
}

// Get returns the stored token, or "" when absent or past its deadline.
// Expired entries are reaped on access rather than by a sweeper.
func (s *MemoryStore) Get(_ context.Context, sid string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.m[sid]
	if !ok {
		return "", nil
	}
	if time.Now().After(e.deadline) {
		delete(s.m, sid)
		return "", nil
	}
	return e.token, nil
}

// Set stores the token, overwriting any prior value for sid.
func (s *MemoryStore) Set(_ context.Context, sid, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.m[sid] = memoryEntry{token: token, deadline: time.Now().Add(s.ttl)}
	return nil
}

// Delete removes the entry; absent sids are a no-op.
func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.m, sid)
	return nil
}
