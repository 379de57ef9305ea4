package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), "redis://"+mr.Addr(), ttl, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	tok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, store.Set(ctx, "sid-1", "tok-abc"))

	tok, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)

	require.NoError(t, store.Delete(ctx, "sid-1"))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	tok, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestRedisStoreEntriesCarrySessionTTL(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "sid-1", "tok"))
	assert.Equal(t, time.Minute, mr.TTL(redisKeyPrefix+"sid-1"))

	mr.FastForward(2 * time.Minute)

	tok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestRedisStoreKeysArePrefixed(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)

	require.NoError(t, store.Set(context.Background(), "sid-1", "tok"))
	assert.True(t, mr.Exists(redisKeyPrefix+"sid-1"))
	assert.False(t, mr.Exists("sid-1"))
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "not-a-url", time.Hour, zerolog.Nop())
	assert.Error(t, err)
}
