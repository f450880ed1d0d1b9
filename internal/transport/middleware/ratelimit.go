package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// maxTrackedClients bounds the number of client buckets held at once.
const maxTrackedClients = 10_000

// RateLimiter keeps a token bucket per client IP. Buckets untouched for the
// idle period are dropped, which refills them.
type RateLimiter struct {
	mu      sync.Mutex
	clients *expirable.LRU[string, *bucket]
	now     func() time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	perSec   float64
	seen     time.Time
}

// NewRateLimiter returns a limiter that forgets clients idle for longer than idle.
func NewRateLimiter(idle time.Duration) *RateLimiter {
	if idle <= 0 {
		idle = 5 * time.Minute
	}
	return &RateLimiter{
		clients: expirable.NewLRU[string, *bucket](maxTrackedClients, nil, idle),
		now:     time.Now,
	}
}

// Limit allows perMinute requests per client IP with bursts up to perMinute.
// A non-positive limit disables limiting.
func (rl *RateLimiter) Limit(perMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		if perMinute <= 0 {
			return next
		}
		wait := strconv.Itoa(60/perMinute + 1)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.take(clientIP(r), perMinute) {
				w.Header().Set("Retry-After", wait)
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Tracked reports how many clients currently hold a bucket.
func (rl *RateLimiter) Tracked() int {
	return rl.clients.Len()
}

func (rl *RateLimiter) take(key string, perMinute int) bool {
	now := rl.now()

	rl.mu.Lock()
	b, ok := rl.clients.Get(key)
	if !ok {
		b = &bucket{
			tokens:   float64(perMinute),
			capacity: float64(perMinute),
			perSec:   float64(perMinute) / 60,
			seen:     now,
		}
	}
	// Re-adding restarts the idle timer.
	rl.clients.Add(key, b)
	rl.mu.Unlock()

	return b.take(now)
}

func (b *bucket) take(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = min(b.capacity, b.tokens+elapsed*b.perSec)
	}
	b.seen = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// clientIP returns the host part of RemoteAddr. Put chi's RealIP in front
// when running behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
