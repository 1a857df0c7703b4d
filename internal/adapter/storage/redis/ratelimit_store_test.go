package redis_test

import (
	"context"
	"testing"
	"time"

	"aid-distribution-ledger/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitStore_Allow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redis.NewRateLimitStore(client)
	ctx := context.Background()
	storeAcct := uuid.New()

	t.Run("allows requests within limit", func(t *testing.T) {
		for i := int64(1); i <= 3; i++ {
			result, err := store.Allow(ctx, storeAcct, "redeem", 3, time.Minute)
			require.NoError(t, err)
			assert.True(t, result.Allowed, "request %d should be allowed", i)
			assert.Equal(t, int64(3), result.Limit)
			assert.Equal(t, 3-i, result.Remaining)
		}
	})

	t.Run("blocks requests over limit", func(t *testing.T) {
		// 4th request should be blocked (limit is 3 from above)
		result, err := store.Allow(ctx, storeAcct, "redeem", 3, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)
		assert.Equal(t, int64(0), result.Remaining)
	})

	t.Run("different operations are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, storeAcct, "withdraw", 5, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(4), result.Remaining)
	})

	t.Run("different accounts are independent", func(t *testing.T) {
		result, err := store.Allow(ctx, uuid.New(), "redeem", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
		assert.Equal(t, int64(2), result.Remaining)
	})

	t.Run("reset after window expires", func(t *testing.T) {
		acct := uuid.New()
		_, err := store.Allow(ctx, acct, "deposit", 1, time.Minute)
		require.NoError(t, err)

		// Second request in same window is blocked
		result, err := store.Allow(ctx, acct, "deposit", 1, time.Minute)
		require.NoError(t, err)
		assert.False(t, result.Allowed)

		// A fresh window admits requests again
		mr.FastForward(2 * time.Minute)
		result, err = store.Allow(ctx, acct, "deposit", 1, time.Minute)
		require.NoError(t, err)
		assert.True(t, result.Allowed)
	})
}
