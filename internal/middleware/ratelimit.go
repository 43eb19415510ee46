package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/quotepulse/internal/domain/dto"
)

// DefaultRateLimit is the number of requests a client IP may make per window.
const DefaultRateLimit = 60

// DefaultRateWindow is the fixed window of the inbound limiter.
const DefaultRateWindow = time.Minute

type bucket struct {
	start time.Time
	count int
}

// ipLimiter is a fixed-window counter keyed by client IP. It protects the
// upstream API quota from a single noisy caller.
type ipLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string]*bucket
}

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	if limit <= 0 {
		limit = DefaultRateLimit
	}
	if window <= 0 {
		window = DefaultRateWindow
	}
	return &ipLimiter{limit: limit, window: window, now: time.Now, buckets: make(map[string]*bucket)}
}

// allow counts one request for ip and reports whether it fits the window,
// plus the time left until the window resets.
func (l *ipLimiter) allow(ip string) (bool, time.Duration) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[ip]
	if !ok || now.Sub(b.start) >= l.window {
		l.sweep(now)
		b = &bucket{start: now}
		l.buckets[ip] = b
	}
	b.count++
	return b.count <= l.limit, l.window - now.Sub(b.start)
}

// sweep drops expired buckets so idle IPs do not accumulate.
func (l *ipLimiter) sweep(now time.Time) {
	for ip, b := range l.buckets {
		if now.Sub(b.start) >= l.window {
			delete(l.buckets, ip)
		}
	}
}

// RateLimiter limits each client IP to limit requests per window. Values
// <= 0 fall back to DefaultRateLimit and DefaultRateWindow.
//
// Response when the limit is exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	Retry-After: 42
//	{"message":"rate limit exceeded","timestamp":"..."}
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newIPLimiter(limit, window)
	return func(c *gin.Context) {
		ok, reset := l.allow(c.ClientIP())
		if !ok {
			secs := int(reset.Seconds())
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
