package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/achyut02/Ai-Placement-Tracker/internal/dto"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter applies a per-client-IP token bucket across all routes.
// Idle entries are evicted so the map cannot grow without bound.
type RateLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientLimiter
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type clientLimiter struct {
	limiter *rate.Limiter
	seen    time.Time
}

func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 100
	}
	if burst <= 0 {
		burst = 20
	}
	rl := &RateLimiter{
		clients:  make(map[string]*clientLimiter),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    burst,
		lastSeen: 10 * time.Minute,
	}
	go rl.evictLoop()
	return rl
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !rl.allow(ctx.ClientIP()) {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests,
				dto.Fail("Too many requests from this IP, please try again later."))
			return
		}
		ctx.Next()
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[ip]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[ip] = cl
	}
	cl.seen = time.Now()
	return cl.limiter.Allow()
}

func (rl *RateLimiter) evictLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		rl.mu.Lock()
		for ip, cl := range rl.clients {
			if time.Since(cl.seen) > rl.lastSeen {
				delete(rl.clients, ip)
			}
		}
		rl.mu.Unlock()
	}
}
