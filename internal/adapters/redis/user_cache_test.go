package redis

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	"github.com/jobtrackr/jobtrackr-api/internal/testutil"
)

// setupTestRedis creates a Redis client for testing.
// Tests will be skipped if Redis is not available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	return testutil.SetupTestRedis(t)
}

func TestUserCache_SetAndGet(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	cache := NewUserCache(client)
	ctx := context.Background()

	user := &model.User{
		ID:          "user-1",
		ExternalUID: "sub-1",
		Email:       "dev@example.com",
	}
	require.NoError(t, cache.Set(ctx, "raw-token", user))

	got, err := cache.Get(ctx, "raw-token")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.ExternalUID, got.ExternalUID)
	assert.Equal(t, user.Email, got.Email)
}

func TestUserCache_MissReturnsNil(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	cache := NewUserCache(client)

	got, err := cache.Get(context.Background(), "never-seen")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserCache_TTLExpiry(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	cache := NewUserCacheWithTTL(client, 50*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "short-lived", &model.User{ID: "user-1"}))
	time.Sleep(100 * time.Millisecond)

	got, err := cache.Get(ctx, "short-lived")
	require.NoError(t, err)
	assert.Nil(t, got, "entry should expire with its TTL")
}

func TestUserCache_DistinctTokensDistinctKeys(t *testing.T) {
	client := setupTestRedis(t)
	defer client.Close()

	cache := NewUserCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "token-a", &model.User{ID: "user-a"}))
	require.NoError(t, cache.Set(ctx, "token-b", &model.User{ID: "user-b"}))

	gotA, err := cache.Get(ctx, "token-a")
	require.NoError(t, err)
	gotB, err := cache.Get(ctx, "token-b")
	require.NoError(t, err)
	assert.Equal(t, "user-a", gotA.ID)
	assert.Equal(t, "user-b", gotB.ID)
}
