// Package testutils provides shared test helpers: Redis, containers and stacks
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/logistics-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, _, cleanup := CreateTestRedisServer(t)
	return client, cleanup
}

// CreateTestRedisServer also returns the miniredis instance so tests can
// seed or inspect raw keys
func CreateTestRedisServer(t *testing.T) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}

// FlushTestRedis removes every key from the test database
func FlushTestRedis(ctx context.Context, client redis.Client) error {
	return client.FlushAll(ctx).Err()
}
