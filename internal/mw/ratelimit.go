package mw

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// IPRateLimiter hands out one token bucket per client IP. Buckets for clients that
// have been quiet for the idle period are evicted.
type IPRateLimiter struct {
	limiters *cache.Cache
	r        rate.Limit
	b        int
	idle     time.Duration
}

// NewIPRateLimiter creates a new IPRateLimiter.
func NewIPRateLimiter(r rate.Limit, b int, idle time.Duration) *IPRateLimiter {
	return &IPRateLimiter{
		limiters: cache.New(idle, idle),
		r:        r,
		b:        b,
		idle:     idle,
	}
}

// GetLimiter returns the rate limiter for an IP address, creating it on first use.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if l, found := i.limiters.Get(ip); found {
		// Touch the entry so active clients keep their bucket.
		i.limiters.Set(ip, l, i.idle)
		return l.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(i.r, i.b)
	if err := i.limiters.Add(ip, limiter, i.idle); err != nil {
		// Another request created it first.
		if l, found := i.limiters.Get(ip); found {
			return l.(*rate.Limiter)
		}
	}
	return limiter
}

// RateLimiter is a middleware for IP-based rate limiting.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	limiter := NewIPRateLimiter(r, b, 10*time.Minute)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
