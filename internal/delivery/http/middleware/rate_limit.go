package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ats-resume-scorer/internal/delivery/http/response"
	"ats-resume-scorer/pkg/logger"
	"ats-resume-scorer/pkg/security"

	"github.com/gin-gonic/gin"
)

// WindowCounter counts hits per key in fixed windows.
type WindowCounter interface {
	Increment(ctx context.Context, key string, window time.Duration) (count int, resetAt time.Time, err error)
}

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix, e.g. "rl:ip:"
	KeyPrefix string
	// Reject instead of falling back to memory when the shared counter fails
	FailClosed bool
}

// GlobalRateLimitConfig applies to every route.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
	}
}

// UploadRateLimitConfig guards the resume upload endpoint, where each request
// parses a document and may call the virus scanner.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:upload:",
	}
}

type memoryEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

// MemoryCounter is the process-local WindowCounter used when Redis is absent.
type MemoryCounter struct {
	entries   sync.Map
	cleanOnce sync.Once
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{}
}

func (m *MemoryCounter) Increment(ctx context.Context, key string, window time.Duration) (int, time.Time, error) {
	m.cleanOnce.Do(func() { go m.cleanup(5 * time.Minute) })

	now := time.Now()
	v, _ := m.entries.LoadOrStore(key, &memoryEntry{resetAt: now.Add(window)})
	entry := v.(*memoryEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	if !now.Before(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count, entry.resetAt, nil
}

func (m *MemoryCounter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		m.entries.Range(func(key, value any) bool {
			entry := value.(*memoryEntry)
			entry.mu.Lock()
			if now.After(entry.resetAt) {
				m.entries.Delete(key)
			}
			entry.mu.Unlock()
			return true
		})
	}
}

// RateLimitMiddleware limits requests per key. shared may be nil, in which case
// the in-memory fallback counts alone.
func RateLimitMiddleware(config RateLimitConfig, shared WindowCounter, fallback WindowCounter) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	if fallback == nil {
		fallback = NewMemoryCounter()
	}

	return func(c *gin.Context) {
		if config.Limit <= 0 {
			c.Next()
			return
		}

		key := config.KeyPrefix + config.KeyFunc(c)
		ctx := c.Request.Context()

		var (
			count   int
			resetAt time.Time
			err     error
		)
		if shared != nil {
			count, resetAt, err = shared.Increment(ctx, key, config.Window)
			if err != nil {
				logger.Log.Warn("rate limit counter unavailable",
					"request_id", c.GetString("RequestID"),
					"key_prefix", config.KeyPrefix,
					"error", err,
				)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", "Service temporarily unavailable")
					c.Abort()
					return
				}
			}
		}
		if shared == nil || err != nil {
			count, resetAt, _ = fallback.Increment(ctx, key, config.Window)
		}

		remaining := max(config.Limit-count, 0)
		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := max(int(time.Until(resetAt).Seconds()), 1)
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			security.DefaultLogger().LogRateLimitTriggered(ctx, c.ClientIP(), c.GetString("RequestID"), c.FullPath(), config.KeyPrefix)

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", "Rate limit exceeded")
			c.Abort()
			return
		}

		c.Next()
	}
}
