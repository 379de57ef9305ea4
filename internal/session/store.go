package session

import (
	"context"
	"fmt"
	"time"
)

// TokenStore persists the one token string per browser session id. Backends:
// in-process map (default) and Redis (multi-instance deployments).
type TokenStore interface {
	// Get returns the stored token for sid, or ("", nil) when absent.
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, token string) error
	// Delete is idempotent: deleting an absent sid is not an error.
	Delete(ctx context.Context, sid string) error
}

// Manager implements the session contract over a TokenStore: Load on every
// gated request, Start at login, End at logout.
type Manager struct {
	store TokenStore
	ttl   time.Duration
}

// NewManager creates a Manager persisting tokens for ttl.
func NewManager(store TokenStore, ttl time.Duration) *Manager {
	return &Manager{store: store, ttl: ttl}
}

// Load reads the persisted token for sid and decodes it fresh. Absent token
// means no session. A token that no longer decodes (malformed, expired) is
// cleared before reporting no session, so repeated calls stay idempotent.
// The returned error is only for store failures, never for token state.
func (m *Manager) Load(ctx context.Context, sid string) (*Session, error) {
	if sid == "" {
		return nil, nil
	}

	token, err := m.store.Get(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if token == "" {
		return nil, nil
	}

	sess, err := Decode(token)
	if err != nil {
		// Fail closed: a token we can no longer decode is dead weight.
		if delErr := m.store.Delete(ctx, sid); delErr != nil {
			return nil, fmt.Errorf("clear dead session: %w", delErr)
		}
		return nil, nil
	}

	return sess, nil
}

// Start persists a freshly issued token under sid and returns the derived
// Session. A previous token under the same sid is overwritten, never merged.
func (m *Manager) Start(ctx context.Context, sid, token string) (*Session, error) {
	sess, err := Decode(token)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	if err := m.store.Set(ctx, sid, token); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return sess, nil
}

// End clears the persisted token. Calling it twice is a no-op the second
// time.
func (m *Manager) End(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := m.store.Delete(ctx, sid); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

// TTL exposes the configured session lifetime (cookie Max-Age and Redis
// expiry share it).
func (m *Manager) TTL() time.Duration {
	return m.ttl
}
