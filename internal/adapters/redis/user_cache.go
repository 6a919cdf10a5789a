package redis

// Package redis provides Redis-based adapters for the jobtrackr system.

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
)

const defaultUserCacheTTL = 5 * time.Minute

// UserCache caches the user resolved from a verified bearer token so hot
// clients don't re-verify and re-upsert on every request. Keys are token
// hashes; raw tokens are never stored.
type UserCache struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewUserCache creates a Redis-backed user cache with the default TTL.
func NewUserCache(client redis.UniversalClient) *UserCache {
	return &UserCache{
		client: client,
		prefix: "identity:",
		ttl:    defaultUserCacheTTL,
	}
}

// NewUserCacheWithTTL creates a Redis-backed user cache with a custom TTL.
// The TTL bounds how long a revoked token keeps resolving.
func NewUserCacheWithTTL(client redis.UniversalClient, ttl time.Duration) *UserCache {
	c := NewUserCache(client)
	if ttl > 0 {
		c.ttl = ttl
	}
	return c
}

// Get returns the cached user for a token, or (nil, nil) on a miss.
func (c *UserCache) Get(ctx context.Context, rawToken string) (*model.User, error) {
	if rawToken == "" {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.key(rawToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var user model.User
	if unmarshalErr := json.Unmarshal([]byte(data), &user); unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal user: %w", unmarshalErr)
	}
	return &user, nil
}

// Set stores the user for a token for the configured TTL.
func (c *UserCache) Set(ctx context.Context, rawToken string, user *model.User) error {
	if rawToken == "" || user == nil {
		return nil
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}
	return c.client.Set(ctx, c.key(rawToken), data, c.ttl).Err()
}

func (c *UserCache) key(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return c.prefix + hex.EncodeToString(sum[:])
}
