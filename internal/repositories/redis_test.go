package repositories

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-webshop-client/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedisContainer(t *testing.T) *redis.Client {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redisC.Terminate(ctx) })

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	t.Cleanup(func() { _ = rdb.Close() })

	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestRedisRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	rdb := setupRedisContainer(t)

	t.Run("token set get delete", func(t *testing.T) {
		repo := NewTokenRedisRepository(rdb, time.Minute)

		token, err := repo.Get(ctx, "sid-1")
		assert.NoError(t, err)
		assert.Empty(t, token)

		require.NoError(t, repo.Set(ctx, "sid-1", "TOKEN"))
		token, err = repo.Get(ctx, "sid-1")
		assert.NoError(t, err)
		assert.Equal(t, "TOKEN", token)

		require.NoError(t, repo.Delete(ctx, "sid-1"))
		token, err = repo.Get(ctx, "sid-1")
		assert.NoError(t, err)
		assert.Empty(t, token)
	})

	t.Run("token survives a new repository instance", func(t *testing.T) {
		require.NoError(t, NewTokenRedisRepository(rdb, 0).Set(ctx, "sid-2", "TOKEN"))

		token, err := NewTokenRedisRepository(rdb, 0).Get(ctx, "sid-2")
		assert.NoError(t, err)
		assert.Equal(t, "TOKEN", token)
	})

	t.Run("product set and get", func(t *testing.T) {
		repo := NewProductCacheRepository(rdb, 2*time.Second)
		product := &models.Product{ID: "42", Name: "Espresso", Price: 4990, Rating: 4, Categories: []string{"coffee"}}

		require.NoError(t, repo.SetProduct(ctx, product))

		got, err := repo.GetProduct(ctx, "42")
		assert.NoError(t, err)
		assert.Equal(t, product, got)
	})

	t.Run("product miss", func(t *testing.T) {
		repo := NewProductCacheRepository(rdb, 2*time.Second)

		_, err := repo.GetProduct(ctx, "missing")
		assert.True(t, errors.Is(err, ErrCacheMiss))
	})

	t.Run("cached product expires", func(t *testing.T) {
		repo := NewProductCacheRepository(rdb, time.Second)
		require.NoError(t, repo.SetProduct(ctx, &models.Product{ID: "7", Name: "Tea"}))

		time.Sleep(2 * time.Second)

		_, err := repo.GetProduct(ctx, "7")
		assert.ErrorIs(t, err, ErrCacheMiss)
	})
}
