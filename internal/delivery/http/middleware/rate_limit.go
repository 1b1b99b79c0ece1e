package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/redis"
	"go-jobboard-backend/pkg/security"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Default: client IP
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Reject requests when Redis fails mid-request instead of falling back
	// to memory.
	FailClosed bool
	// Returns the Redis client, or nil to use memory. Default: redis.Client.
	Client func() *goredis.Client
}

type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// memoryStore is the per-process fallback used when Redis is unavailable.
// Expired entries are swept by a background ticker started on first use.
type memoryStore struct {
	entries     sync.Map
	cleanupOnce sync.Once
}

const memoryCleanupInterval = 5 * time.Minute

// Atomic increment with TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds. Returns {count, ttl}.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

var rateLimitScript = goredis.NewScript(rateLimitLuaScript)

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// AuthRateLimitConfig is the strict limit for signup, login and password reset.
func AuthRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:auth:",
		FailClosed: true,
	}
}

// RateLimitMiddleware creates a fixed-window limiter. Redis is used when
// available so limits hold across instances; otherwise counts are kept in
// memory.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if config.KeyPrefix == "" {
		config.KeyPrefix = "rl:ip:"
	}
	if config.Client == nil {
		config.Client = redis.Client
	}
	if config.Window <= 0 {
		config.Window = time.Minute
	}
	store := &memoryStore{}

	return func(c *gin.Context) {
		if config.Limit <= 0 {
			c.Next()
			return
		}
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var count int
		var resetAt time.Time

		if client := config.Client(); client != nil {
			var err error
			count, resetAt, err = checkRateLimitRedis(c.Request.Context(), client, fullKey, config)
			if err != nil {
				logger.Log.Warn().Err(err).Str("key", config.KeyPrefix).Msg("rate limit redis check failed")
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.")
					c.Abort()
					return
				}
				count, resetAt = store.hit(fullKey, config.Window, now)
			}
		} else {
			count, resetAt = store.hit(fullKey, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn().
				Str("event", "rate_limit_triggered").
				Str("client_ip", c.ClientIP()).
				Str("path", c.FullPath()).
				Str("request_id", response.RequestID(c)).
				Msg("rate limit exceeded")
			security.Default().Log(c.Request.Context(), security.Event{
				Type:      security.EventRateLimitTriggered,
				IP:        c.ClientIP(),
				RequestID: response.RequestID(c),
				Details:   map[string]interface{}{"path": c.FullPath(), "limit": config.Limit},
			})

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func checkRateLimitRedis(ctx context.Context, client *goredis.Client, key string, config RateLimitConfig) (int, time.Time, error) {
	ttlSeconds := int(config.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rateLimitScript.Run(ctx, client, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

func (s *memoryStore) hit(key string, window time.Duration, now time.Time) (int, time.Time) {
	s.cleanupOnce.Do(s.startCleanup)

	entryI, _ := s.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(window)})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, entry.resetAt
}

func (s *memoryStore) startCleanup() {
	go func() {
		ticker := time.NewTicker(memoryCleanupInterval)
		defer ticker.Stop()
		for now := range ticker.C {
			s.sweep(now)
		}
	}()
}

// sweep deletes every entry whose window ended before now.
func (s *memoryStore) sweep(now time.Time) {
	s.entries.Range(func(key, value interface{}) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			s.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

func (s *memoryStore) size() int {
	n := 0
	s.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}
