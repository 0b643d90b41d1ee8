package court_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/esteveseverson/fastapi-playtime/internal/court"
	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
)

// fakeCache is an in-memory cache.Client for tests.
type fakeCache struct {
	values map[string]string
	sets   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) GetInt(_ context.Context, key string) (int, error) {
	return 0, cache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.values[key] = value.(string)
	f.sets++
	return nil
}

func (f *fakeCache) Incr(_ context.Context, key string) error { return nil }

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func TestCachingRepositoryGetByID(t *testing.T) {
	repo := new(MockRepository)
	fc := newFakeCache()
	cached := court.NewCachingRepository(repo, fc, time.Minute)

	id := uuid.New().String()
	stored := &court.Court{ID: id, Name: "Court 1", Available: true}

	// The database is hit once; the second read is served from the cache.
	repo.On("GetByID", mock.Anything, id).Return(stored, nil).Once()

	first, err := cached.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, stored.Name, first.Name)
	assert.Equal(t, 1, fc.sets)

	second, err := cached.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, stored.Name, second.Name)
	assert.True(t, second.Available)
	repo.AssertExpectations(t)
}

func TestCachingRepositoryMissOnError(t *testing.T) {
	repo := new(MockRepository)
	fc := newFakeCache()
	cached := court.NewCachingRepository(repo, fc, time.Minute)

	id := uuid.New().String()
	repo.On("GetByID", mock.Anything, id).Return(nil, court.ErrNotFound)

	_, err := cached.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, court.ErrNotFound)
	assert.Zero(t, fc.sets)
}

func TestCachingRepositoryInvalidation(t *testing.T) {
	id := uuid.New().String()
	stored := &court.Court{ID: id, Name: "Court 1", Available: true}

	t.Run("update evicts", func(t *testing.T) {
		repo := new(MockRepository)
		fc := newFakeCache()
		cached := court.NewCachingRepository(repo, fc, time.Minute)

		repo.On("GetByID", mock.Anything, id).Return(stored, nil)
		repo.On("Update", mock.Anything, stored).Return(nil)

		_, err := cached.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Contains(t, fc.values, "court:"+id)

		require.NoError(t, cached.Update(context.Background(), stored))
		assert.NotContains(t, fc.values, "court:"+id)
	})

	t.Run("delete evicts", func(t *testing.T) {
		repo := new(MockRepository)
		fc := newFakeCache()
		cached := court.NewCachingRepository(repo, fc, time.Minute)

		repo.On("GetByID", mock.Anything, id).Return(stored, nil)
		repo.On("Delete", mock.Anything, id).Return(nil)

		_, err := cached.GetByID(context.Background(), id)
		require.NoError(t, err)

		require.NoError(t, cached.Delete(context.Background(), id))
		assert.NotContains(t, fc.values, "court:"+id)
	})
}
