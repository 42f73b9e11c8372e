package flights_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"flightly/internal/flights"
	"flightly/internal/models"
)

// TestSearchCacheIntegration exercises the versioned cache against a
// real Redis container.
func TestSearchCacheIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Redis integration test in short mode")
	}

	ctx := context.Background()
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:latest",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start Redis container: %v", err)
	}
	defer redisContainer.Terminate(ctx)

	host, err := redisContainer.Host(ctx)
	require.NoError(t, err)
	port, err := redisContainer.MappedPort(ctx, "6379")
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: host + ":" + port.Port(),
	})
	defer client.Close()

	cache := flights.NewRedisSearchCache(client, time.Minute)

	// Cold cache misses.
	_, ok := cache.Get("dushanbe", "istanbul", "2027-03-10")
	assert.False(t, ok, "Expected a miss on a cold cache")

	// Fill and read back.
	stored := []models.Flight{{ID: "f1", Origin: "Dushanbe", Destination: "Istanbul"}}
	cache.Set("dushanbe", "istanbul", "2027-03-10", stored)

	got, ok := cache.Get("dushanbe", "istanbul", "2027-03-10")
	require.True(t, ok, "Expected a hit after Set")
	require.Len(t, got, 1)
	assert.Equal(t, "f1", got[0].ID)

	// Keys are case-insensitive on the route legs.
	got, ok = cache.Get("DUSHANBE", "Istanbul", "2027-03-10")
	require.True(t, ok, "Expected a hit regardless of case")
	assert.Equal(t, "f1", got[0].ID)

	// A different day is a different key.
	_, ok = cache.Get("dushanbe", "istanbul", "2027-03-11")
	assert.False(t, ok, "Expected a miss for another day")

	// Invalidation bumps the version, orphaning every old entry.
	cache.Invalidate()
	_, ok = cache.Get("dushanbe", "istanbul", "2027-03-10")
	assert.False(t, ok, "Expected a miss after invalidation")

	// New generation works normally.
	cache.Set("dushanbe", "istanbul", "2027-03-10", stored)
	_, ok = cache.Get("dushanbe", "istanbul", "2027-03-10")
	assert.True(t, ok, "Expected a hit in the new generation")
}

func TestSearchCacheNilClient(t *testing.T) {
	cache := flights.NewRedisSearchCache(nil, time.Minute)

	// Every operation is a no-op without a client.
	cache.Set("a", "b", "2027-03-10", []models.Flight{{ID: "f1"}})
	_, ok := cache.Get("a", "b", "2027-03-10")
	assert.False(t, ok)
	cache.Invalidate()
}
