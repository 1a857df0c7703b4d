package middleware

import (
	"strconv"
	"time"

	redisStore "aid-distribution-ledger/internal/adapter/storage/redis"
	"aid-distribution-ledger/pkg/apperror"
	"aid-distribution-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-group limits. Reads are not
// limited; redemption bursts against one store are the main target.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"admin":       {Limit: 30, Window: time.Minute},
		"ledger":      {Limit: 60, Window: time.Minute},
		"catalog":     {Limit: 30, Window: time.Minute},
		"redemptions": {Limit: 120, Window: time.Minute},
		"settlements": {Limit: 30, Window: time.Minute},
		"governance":  {Limit: 30, Window: time.Minute},
	}
}

// RateLimiter throttles the authenticated caller for one endpoint group.
// It must run after JWTAuth; unauthenticated requests pass through. A
// failing Redis never blocks traffic.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CallerID(c)
		if !ok {
			c.Next()
			return
		}

		result, err := store.Allow(c.Request.Context(), caller, group, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}
