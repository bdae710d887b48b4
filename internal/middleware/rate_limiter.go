package middleware

import (
	"net/http"
	"sync"
	"time"

	"amanah-finance/internal/errors"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// clients idle longer than this are dropped from the visitors map
const visitorTTL = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket.
// Schedule generation is regenerated on every request, so an unthrottled
// client could fan out arbitrarily expensive report work; the sustained
// rate and burst come from the server configuration.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rate     rate.Limit
	burst    int
}

// NewRateLimiter creates a limiter allowing requestsPerSecond sustained and
// burst momentary requests per client IP, and starts background eviction of
// idle clients.
func NewRateLimiter(requestsPerSecond, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
	go rl.evictLoop()
	return rl
}

// Middleware returns the echo middleware enforcing the limit. Throttled
// requests receive a SYSTEM_005 response with the caller's trace ID.
func (rl *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !rl.allow(clientIP(c)) {
				response := errors.NewErrorResponse(errors.SystemRateLimitExceeded, GetTraceID(c))
				return c.JSON(http.StatusTooManyRequests, response)
			}
			return next(c)
		}
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	v, ok := rl.visitors[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	rl.mu.Unlock()

	return v.limiter.Allow()
}

// clientIP prefers proxy-forwarded headers over the socket address so
// limits apply to the originating caller, not the load balancer.
func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}
	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	return c.RealIP()
}

func (rl *RateLimiter) evictLoop() {
	for {
		time.Sleep(time.Minute)
		rl.evictIdleSince(time.Now().Add(-visitorTTL))
	}
}

// evictIdleSince drops clients whose last request predates cutoff
func (rl *RateLimiter) evictIdleSince(cutoff time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, v := range rl.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(rl.visitors, ip)
		}
	}
}
