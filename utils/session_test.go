package utils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionStore(t *testing.T) *RedisSessionStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &RedisSessionStore{Client: client}
}

func TestSessionRoundTrip(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotContains(t, token, "-")

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestSessionUnknownToken(t *testing.T) {
	store := newTestSessionStore(t)

	userID, err := store.Get(context.Background(), "no-such-token")
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestSessionDelete(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	token, err := store.Create(ctx, "user-1")
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, token))

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Empty(t, userID)
}

func TestSessionTokensAreUnique(t *testing.T) {
	store := newTestSessionStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := store.Create(ctx, "user-1")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
