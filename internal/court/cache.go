package court

import (
	"context"
	"encoding/json"
	"time"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
)

// cachingRepository is a read-through cache in front of a Repository.
// Only GetByID is cached: the availability flag is read on every booking
// attempt, so it is by far the hottest query.
type cachingRepository struct {
	inner Repository
	cache cache.Client
	ttl   time.Duration
}

// NewCachingRepository wraps repo with a cache on GetByID. Writes
// invalidate the cached entry.
func NewCachingRepository(repo Repository, client cache.Client, ttl time.Duration) Repository {
	return &cachingRepository{
		inner: repo,
		cache: client,
		ttl:   ttl,
	}
}

func cacheKey(id string) string {
	return "court:" + id
}

func (r *cachingRepository) GetByID(ctx context.Context, id string) (*Court, error) {
	if raw, err := r.cache.Get(ctx, cacheKey(id)); err == nil {
		var crt Court
		if err := json.Unmarshal([]byte(raw), &crt); err == nil {
			return &crt, nil
		}
		// Corrupt entry: fall through to the database.
	}

	crt, err := r.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(crt); err == nil {
		// Best effort; a failed cache write must not fail the read.
		_ = r.cache.Set(ctx, cacheKey(id), string(raw), r.ttl)
	}

	return crt, nil
}

func (r *cachingRepository) Create(ctx context.Context, crt *Court) error {
	return r.inner.Create(ctx, crt)
}

func (r *cachingRepository) List(ctx context.Context) ([]*Court, error) {
	return r.inner.List(ctx)
}

func (r *cachingRepository) Update(ctx context.Context, crt *Court) error {
	if err := r.inner.Update(ctx, crt); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, cacheKey(crt.ID))
	return nil
}

func (r *cachingRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, cacheKey(id))
	return nil
}
