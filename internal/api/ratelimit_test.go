package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/esteveseverson/fastapi-playtime/internal/pkg/cache"
)

type fakeCounter struct {
	counts map[string]int
	broken bool
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int{}}
}

func (f *fakeCounter) Get(_ context.Context, key string) (string, error) {
	return "", cache.ErrCacheMiss
}

func (f *fakeCounter) GetInt(_ context.Context, key string) (int, error) {
	if f.broken {
		return 0, errors.New("connection refused")
	}
	v, ok := f.counts[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCounter) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.counts[key] = value.(int)
	return nil
}

func (f *fakeCounter) Incr(_ context.Context, key string) error {
	f.counts[key]++
	return nil
}

func (f *fakeCounter) Delete(_ context.Context, key string) error {
	delete(f.counts, key)
	return nil
}

func newLimitedRouter(client cache.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimiter(client, limit, time.Minute))
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRateLimiter(t *testing.T) {
	counter := newFakeCounter()
	router := newLimitedRouter(counter, 3)

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		w := do()
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimiterRemainingHeader(t *testing.T) {
	counter := newFakeCounter()
	router := newLimitedRouter(counter, 5)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimiterFailsOpen(t *testing.T) {
	counter := newFakeCounter()
	counter.broken = true
	router := newLimitedRouter(counter, 1)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
