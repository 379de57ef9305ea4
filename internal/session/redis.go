package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const redisKeyPrefix = "microcourses:session:"

// RedisStore is a TokenStore backed by Redis, for running more than one
// frontend instance behind a load balancer. Entries carry the session TTL as
// their Redis expiry.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore connects to Redis at the given URL and validates the
// connection before returning the store.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration, log zerolog.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Msg("Redis session store connected")

	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

// Get returns the stored token, or "" when the key is absent or expired.
func (s *RedisStore) Get(ctx context.Context, sid string) (string, error) {
	token, err := s.rdb.Get(ctx, redisKeyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get: %w", err)
	}
	return token, nil
}

// Set stores the token with the session TTL as expiry.
func (s *RedisStore) Set(ctx context.Context, sid, token string) error {
	if err := s.rdb.Set(ctx, redisKeyPrefix+sid, token, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

// Delete removes the key; Redis DEL on an absent key is already a no-op.
func (s *RedisStore) Delete(ctx context.Context, sid string) error {
	if err := s.rdb.Del(ctx, redisKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
