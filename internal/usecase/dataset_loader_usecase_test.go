package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/usecase"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a DoctorSource returning fixed results and counting calls
type fakeSource struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (s *fakeSource) FetchDoctors(ctx context.Context) ([]entity.Doctor, error) {
	s.calls++
	return s.doctors, s.err
}

func TestDatasetLoaderUsecase_Load(t *testing.T) {
	t.Parallel()

	t.Run("stores fetched dataset with positions", func(t *testing.T) {
		t.Parallel()

		log, hook := logtest.NewNullLogger()
		source := &fakeSource{doctors: []entity.Doctor{{Name: "Alice"}, {Name: "Bob"}}}
		repo := repository.NewDoctorRepository()

		err := usecase.NewDatasetLoaderUsecase(log, source, repo).Load(context.Background())
		require.NoError(t, err)

		doctors := repo.FindAll()
		require.Len(t, doctors, 2)
		assert.Equal(t, 0, doctors[0].Index)
		assert.Equal(t, 1, doctors[1].Index)
		assert.Equal(t, entity.DoctorID("1"), doctors[1].WithFallbackID())

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
		assert.Equal(t, 2, hook.LastEntry().Data["doctors"])
	})

	t.Run("failure is logged and leaves dataset empty", func(t *testing.T) {
		t.Parallel()

		log, hook := logtest.NewNullLogger()
		source := &fakeSource{err: errors.New("connection refused")}
		repo := repository.NewDoctorRepository()

		err := usecase.NewDatasetLoaderUsecase(log, source, repo).Load(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")

		assert.False(t, repo.IsLoaded())
		assert.Empty(t, repo.FindAll())

		require.NotNil(t, hook.LastEntry())
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Contains(t, hook.LastEntry().Message, "connection refused")
	})

	t.Run("fetches only once", func(t *testing.T) {
		t.Parallel()

		log, _ := logtest.NewNullLogger()
		source := &fakeSource{err: errors.New("timeout")}
		loader := usecase.NewDatasetLoaderUsecase(log, source, repository.NewDoctorRepository())

		require.Error(t, loader.Load(context.Background()))

		err := loader.Load(context.Background())
		assert.ErrorIs(t, err, usecase.ErrDatasetLoadAttempted)
		assert.Equal(t, 1, source.calls)
	})
}
