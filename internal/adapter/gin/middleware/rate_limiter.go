package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"user-post-service/pkg/logger"
)

// RateLimiterConfig holds configuration for the rate limiter.
type RateLimiterConfig struct {
	RequestsPerSecond float64
	BurstCapacity     int
	Enabled           bool
}

// RateLimiter limits requests per client and route with a token bucket kept
// in Redis.
type RateLimiter struct {
	client *redis.Client
	config RateLimiterConfig
	log    *zap.Logger
}

// NewRateLimiter creates a new rate limiter. A nil client disables it.
func NewRateLimiter(client *redis.Client, config RateLimiterConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
		log:    log,
	}
}

// tokenBucket refills at ARGV[1] tokens per second up to ARGV[2] and takes
// one token per call. Bucket state is {last_refill, tokens}.
var tokenBucket = redis.NewScript(`
	local key = KEYS[1]
	local rate = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])

	local bucket = redis.call('HMGET', key, 'last_refill', 'tokens')
	local last_refill = tonumber(bucket[1]) or now
	local tokens = tonumber(bucket[2]) or capacity

	local elapsed = math.max(0, now - last_refill)
	tokens = math.min(capacity, tokens + elapsed * rate)

	local allowed = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HSET', key, 'last_refill', tostring(now), 'tokens', tostring(tokens))
	redis.call('EXPIRE', key, 60)
	return allowed
`)

// Handler returns the gin middleware. Redis failures let the request through.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || !rl.config.Enabled || rl.client == nil {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := fmt.Sprintf("ratelimit:tb:%s:%s:%s", c.Request.Method, route, c.ClientIP())

		now, err := rl.client.Time(ctx).Result()
		if err == nil {
			var allowed int64
			allowed, err = tokenBucket.Run(ctx, rl.client, []string{key},
				rl.config.RequestsPerSecond,
				rl.config.BurstCapacity,
				float64(now.UnixMicro())/1e6,
			).Int64()
			if err == nil && allowed == 0 {
				logger.WithContext(ctx, rl.log).Warn("rate limit exceeded",
					zap.String("client_ip", c.ClientIP()),
					zap.String("route", route),
				)
				c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
					"statusCode": http.StatusTooManyRequests,
					"error":      http.StatusText(http.StatusTooManyRequests),
					"message": fmt.Sprintf("Rate limit exceeded: %.2f requests/second (burst capacity: %d)",
						rl.config.RequestsPerSecond, rl.config.BurstCapacity),
				})
				return
			}
		}
		if err != nil {
			logger.WithContext(ctx, rl.log).Warn("rate limiter redis error, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
		}

		c.Next()
	}
}
