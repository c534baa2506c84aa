package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client), server
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	store, server := newRedisStore(t)

	_, err := store.Get(ctx, "analytics:TEN001:missing")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "analytics:TEN001:revenue", []byte(`{"realized":"10"}`), time.Minute))

	value, err := store.Get(ctx, "analytics:TEN001:revenue")
	require.NoError(t, err)
	assert.Equal(t, `{"realized":"10"}`, string(value))
	assert.Equal(t, time.Minute, server.TTL("analytics:TEN001:revenue"))

	server.FastForward(2 * time.Minute)
	_, err = store.Get(ctx, "analytics:TEN001:revenue")
	assert.ErrorIs(t, err, ErrMiss)

	require.NoError(t, store.Set(ctx, "analytics:TEN001:generation", []byte("abc123"), 0))
	assert.Equal(t, time.Duration(0), server.TTL("analytics:TEN001:generation"))

	require.NoError(t, store.Delete(ctx, "analytics:TEN001:generation"))
	assert.False(t, server.Exists("analytics:TEN001:generation"))
	require.NoError(t, store.Delete(ctx))

	require.NoError(t, store.Ping(ctx))
	server.Close()
	assert.Error(t, store.Ping(ctx))
}

func TestConnect(t *testing.T) {
	server := miniredis.RunT(t)

	for _, url := range []string{server.Addr(), "redis://" + server.Addr() + "/0"} {
		t.Run(url, func(t *testing.T) {
			client, err := Connect(context.Background(), url)
			require.NoError(t, err)
			assert.NoError(t, client.Close())
		})
	}
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "redis://localhost:6379/not-a-db")
	assert.Error(t, err)
}
