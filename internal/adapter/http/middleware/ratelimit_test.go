package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "aid-distribution-ledger/internal/adapter/storage/redis"
	"aid-distribution-ledger/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(t *testing.T, rule RateLimitRule) (*gin.Engine, uuid.UUID) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisStore.NewRateLimitStore(client)

	var buf bytes.Buffer
	log := logger.NewWithWriter("error", &buf)

	caller := uuid.New()
	r := gin.New()
	r.POST("/op",
		func(c *gin.Context) { c.Set(CtxAccountID, caller) },
		RateLimiter(store, "test_group", rule, log),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r, caller
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	r, _ := setupRateLimitRouter(t, RateLimitRule{Limit: 3, Window: time.Minute})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/op", nil))
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, fmt.Sprintf("%d", 2-i), w.Header().Get("X-RateLimit-Remaining"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r, _ := setupRateLimitRouter(t, RateLimitRule{Limit: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/op", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/op", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_001")
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_SkipsUnauthenticated(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisStore.NewRateLimitStore(client)
	var buf bytes.Buffer
	log := logger.NewWithWriter("error", &buf)

	r := gin.New()
	// No CtxAccountID set: the limiter has no identity to key on.
	r.POST("/op",
		RateLimiter(store, "test_group", RateLimitRule{Limit: 1, Window: time.Minute}, log),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/op", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiter_DegradedModeOnRedisFailure(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := redisStore.NewRateLimitStore(client)
	var buf bytes.Buffer
	log := logger.NewWithWriter("warn", &buf)

	caller := uuid.New()
	r := gin.New()
	r.POST("/op",
		func(c *gin.Context) { c.Set(CtxAccountID, caller) },
		RateLimiter(store, "test_group", RateLimitRule{Limit: 1, Window: time.Minute}, log),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	mr.Close() // every redis call now fails

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/op", nil))
		assert.Equal(t, http.StatusOK, w.Code, "redis outage must not block traffic")
	}
	assert.Contains(t, buf.String(), "degraded mode")
}
