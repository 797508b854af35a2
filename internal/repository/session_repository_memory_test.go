package repository

import (
	"context"
	"testing"
	"time"

	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionRepository(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("saves and finds state", func(t *testing.T) {
		t.Parallel()

		repo := NewMemorySessionRepository(0)
		id := uuid.New()
		state := entity.FilterState{ConsultType: "video", Specialties: []string{"ENT"}}

		require.NoError(t, repo.Save(ctx, id, state))

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, state, *found)
	})

	t.Run("returns nil for unknown session", func(t *testing.T) {
		t.Parallel()

		found, err := NewMemorySessionRepository(0).FindByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("returned state does not alias stored state", func(t *testing.T) {
		t.Parallel()

		repo := NewMemorySessionRepository(0)
		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Specialties: []string{"ENT"}}))

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		found.Specialties[0] = "Dentist"

		again, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []string{"ENT"}, again.Specialties)
	})

	t.Run("deletes state", func(t *testing.T) {
		t.Parallel()

		repo := NewMemorySessionRepository(0)
		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Search: "ali"}))
		require.NoError(t, repo.Delete(ctx, id))

		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("expires sessions after ttl", func(t *testing.T) {
		t.Parallel()

		now := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
		repo := NewMemorySessionRepository(time.Minute).(*memorySessionRepository)
		repo.now = func() time.Time { return now }

		id := uuid.New()
		require.NoError(t, repo.Save(ctx, id, entity.FilterState{Search: "ali"}))

		now = now.Add(30 * time.Second)
		found, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.NotNil(t, found)

		now = now.Add(time.Minute)
		found, err = repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}
