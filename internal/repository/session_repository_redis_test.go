package repository_test

import (
	"context"
	"testing"
	"time"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return server, client
}

func TestRedisSessionRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("saves and finds state", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		repo := repository.NewRedisSessionRepository(client, time.Hour)
		id := uuid.New()
		state := entity.FilterState{
			ConsultType: "clinic",
			Specialties: []string{"ENT", "Cardiology"},
			SortBy:      "fees",
			Search:      "John",
		}

		require.NoError(t, repo.Save(ctx, id, state))

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, state, *found)
	})

	t.Run("stores under prefixed key with ttl", func(t *testing.T) {
		t.Parallel()

		server, client := newTestRedis(t)
		repo := repository.NewRedisSessionRepository(client, time.Hour)
		id := uuid.New()

		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Search: "ali"}))

		key := repository.RedisSessionKeyPrefix + id.String()
		assert.True(t, server.Exists(key))
		assert.Equal(t, time.Hour, server.TTL(key))
	})

	t.Run("returns nil for unknown session", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		found, err := repository.NewRedisSessionRepository(client, time.Hour).FindByID(ctx, uuid.New())

		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("expired session is gone", func(t *testing.T) {
		t.Parallel()

		server, client := newTestRedis(t)
		repo := repository.NewRedisSessionRepository(client, time.Minute)
		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Search: "ali"}))

		server.FastForward(2 * time.Minute)

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("deletes state", func(t *testing.T) {
		t.Parallel()

		_, client := newTestRedis(t)
		repo := repository.NewRedisSessionRepository(client, time.Hour)
		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Search: "ali"}))
		require.NoError(t, repo.Delete(ctx, id))

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("wraps connection errors", func(t *testing.T) {
		t.Parallel()

		server, err := miniredis.Run()
		require.NoError(t, err)
		client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: -1})
		defer client.Close()
		server.Close()

		_, err = repository.NewRedisSessionRepository(client, time.Hour).FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load session")
	})
}
