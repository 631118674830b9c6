package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/zeynepecekiris/music-studio-AI-backend/pkg/response"
)

// RateLimiter enforces fixed-window per-user request quotas backed by
// Redis counters. Lyrics and music generation get separate windows since
// composition is far more expensive than a chat completion.
type RateLimiter struct {
	redis *redis.Client
}

func NewRateLimiter(redisClient *redis.Client) *RateLimiter {
	return &RateLimiter{redis: redisClient}
}

// Limit returns a middleware enforcing maxRequests per window, keyed by
// the authenticated user. Fails open when Redis is unavailable so an
// infra outage doesn't take the API down with it.
func (rl *RateLimiter) Limit(scope string, maxRequests int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Next()
		}

		key := "ratelimit:" + scope + ":" + userID
		ctx := c.Context()

		pipe := rl.redis.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			return c.Next()
		}

		count := incr.Val()
		if count > int64(maxRequests) {
			ttl, _ := rl.redis.TTL(ctx, key).Result()
			c.Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
			return response.RateLimited(c)
		}

		remaining := int64(maxRequests) - count
		c.Set("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		return c.Next()
	}
}

// LyricsLimit caps lyrics endpoints per minute
func (rl *RateLimiter) LyricsLimit(maxPerMin int) fiber.Handler {
	return rl.Limit("lyrics", maxPerMin, time.Minute)
}

// MusicLimit caps music generation per hour
func (rl *RateLimiter) MusicLimit(maxPerHour int) fiber.Handler {
	return rl.Limit("music", maxPerHour, time.Hour)
}
