package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *Manager {
	return NewManager(NewMemoryStore(time.Hour), time.Hour)
}

func TestLoadAbsent(t *testing.T) {
	mgr := newTestManager()

	sess, err := mgr.Load(context.Background(), "no-such-sid")
	require.NoError(t, err)
	assert.Nil(t, sess)

	sess, err = mgr.Load(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStartThenLoad(t *testing.T) {
	mgr := newTestManager()
	tok := makeToken(t, "eve@example.com", "creator", time.Now().Add(time.Hour))

	started, err := mgr.Start(context.Background(), "sid-1", tok)
	require.NoError(t, err)
	assert.Equal(t, RoleCreator, started.Role)

	loaded, err := mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "eve@example.com", loaded.Subject)
	assert.Equal(t, RoleCreator, loaded.Role)
}

func TestStartRejectsMalformed(t *testing.T) {
	mgr := newTestManager()

	_, err := mgr.Start(context.Background(), "sid-1", "garbage")
	assert.Error(t, err)
}

func TestLoadClearsDeadToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	mgr := NewManager(store, time.Hour)

	// Seed a token that no longer decodes.
	require.NoError(t, store.Set(context.Background(), "sid-1", "not-a-jwt"))

	sess, err := mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, sess)

	// The persisted token is gone: repeated loads stay clean.
	tok, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)

	sess, err = mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoadClearsExpiredToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	mgr := NewManager(store, time.Hour)

	expired := makeToken(t, "frank@example.com", "admin", time.Now().Add(-time.Minute))
	require.NoError(t, store.Set(context.Background(), "sid-1", expired))

	sess, err := mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, sess)

	tok, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestEndIdempotent(t *testing.T) {
	mgr := newTestManager()
	tok := makeToken(t, "gina@example.com", "student", time.Now().Add(time.Hour))

	_, err := mgr.Start(context.Background(), "sid-1", tok)
	require.NoError(t, err)

	require.NoError(t, mgr.End(context.Background(), "sid-1"))
	require.NoError(t, mgr.End(context.Background(), "sid-1"))

	sess, err := mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStartOverwritesPreviousToken(t *testing.T) {
	mgr := newTestManager()

	first := makeToken(t, "tom@example.com", "student", time.Now().Add(time.Hour))
	second := makeToken(t, "tom@example.com", "creator", time.Now().Add(time.Hour))

	_, err := mgr.Start(context.Background(), "sid-1", first)
	require.NoError(t, err)
	_, err = mgr.Start(context.Background(), "sid-1", second)
	require.NoError(t, err)

	loaded, err := mgr.Load(context.Background(), "sid-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, RoleCreator, loaded.Role)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)

	require.NoError(t, store.Set(context.Background(), "sid-1", "tok"))
	time.Sleep(20 * time.Millisecond)

	tok, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)
}
