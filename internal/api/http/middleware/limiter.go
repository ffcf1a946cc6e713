package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberredis "github.com/gofiber/storage/redis/v3"
	"github.com/redis/go-redis/v9"
)

const (
	limiterMax        = 60
	limiterExpiration = time.Minute
)

// NewLimiter rate limits per client IP with a sliding window. Counters live
// in Redis when rdb is set so every instance shares them, otherwise in
// process memory.
func NewLimiter(rdb *redis.Client) fiber.Handler {
	cfg := limiter.Config{
		Max:               limiterMax,
		Expiration:        limiterExpiration,
		LimiterMiddleware: limiter.SlidingWindow{},
	}
	if rdb != nil {
		cfg.Storage = fiberredis.NewFromConnection(rdb)
	}
	return limiter.New(cfg)
}
