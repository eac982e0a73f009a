// Package ratelimiter limits how often a client may hit the data API.
package ratelimiter

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter enforces a fixed-window request limit per key
// (typically the client IP).
type RateLimiter struct {
	limit    int           // requests allowed per window
	interval time.Duration // window length

	mu      sync.Mutex
	windows map[string]*window
}

type window struct {
	count   int
	resetAt time.Time
}

// NewRateLimiter creates a RateLimiter allowing limit requests per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
	}
}

// Allow reports whether another request from key fits in the current
// window, counting it if so.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.interval)}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Middleware rejects over-limit requests with 429, keyed by client IP.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "Too many requests from this IP, please try again later.",
			})
			return
		}
		c.Next()
	}
}
