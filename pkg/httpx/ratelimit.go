package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig is a token bucket refilled with RequestsPerWindow tokens
// every Window, holding at most Burst tokens.
type RateLimitConfig struct {
	RequestsPerWindow int
	Window            time.Duration
	Burst             int
}

// Profiles per route class.
var (
	// LoginLimit guards credential checks against brute force.
	LoginLimit = RateLimitConfig{RequestsPerWindow: 5, Window: time.Minute, Burst: 5}

	// WriteLimit covers create, update, delete and token reissue.
	WriteLimit = RateLimitConfig{RequestsPerWindow: 20, Window: time.Minute, Burst: 20}

	// HealthLimit covers the liveness and readiness endpoints.
	HealthLimit = RateLimitConfig{RequestsPerWindow: 100, Window: time.Minute, Burst: 100}

	// ReadLimit covers list, get and search.
	ReadLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

// FromEnv returns c with any RATELIMIT_<class>_REQUESTS, RATELIMIT_<class>_WINDOW
// and RATELIMIT_<class>_BURST overrides applied. WINDOW takes a Go duration
// or whole seconds. Malformed or non-positive values are ignored.
func (c RateLimitConfig) FromEnv(class string) RateLimitConfig {
	prefix := "RATELIMIT_" + strings.ToUpper(class) + "_"

	if n, ok := positiveEnvInt(prefix + "REQUESTS"); ok {
		c.RequestsPerWindow = n
	}
	if v := os.Getenv(prefix + "WINDOW"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Window = d
		} else if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Window = time.Duration(n) * time.Second
		}
	}
	if n, ok := positiveEnvInt(prefix + "BURST"); ok {
		c.Burst = n
	}
	return c
}

func positiveEnvInt(key string) (int, bool) {
	n, err := strconv.Atoi(os.Getenv(key))
	return n, err == nil && n > 0
}

func (c RateLimitConfig) limit() rate.Limit {
	if c.Window <= 0 {
		return rate.Inf
	}
	return rate.Limit(float64(c.RequestsPerWindow) / c.Window.Seconds())
}

// KeyExtractor names the bucket a request draws from. An empty key
// bypasses the limiter.
type KeyExtractor func(*http.Request) string

// ClientIP returns the first X-Forwarded-For hop, then X-Real-IP, then the
// host part of RemoteAddr.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// UserOrIP keys authenticated requests by user id and anonymous ones by
// client IP.
func UserOrIP(r *http.Request) string {
	if userID, ok := UserIDFromContext(r.Context()); ok {
		return "user:" + userID
	}
	return "ip:" + ClientIP(r)
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per key. Buckets idle for longer than
// idleAfter are dropped on the next sweep.
type Limiter struct {
	cfg       RateLimitConfig
	idleAfter time.Duration
	now       func() time.Time

	mu        sync.Mutex
	buckets   map[string]*bucket
	lastSweep time.Time
}

// NewLimiter builds a Limiter for cfg.
func NewLimiter(cfg RateLimitConfig) *Limiter {
	return &Limiter{
		cfg:       cfg,
		idleAfter: max(5*time.Minute, 2*cfg.Window),
		now:       time.Now,
		buckets:   make(map[string]*bucket),
		lastSweep: time.Now(),
	}
}

// Allow takes a token from key's bucket. When none is left it reports how
// long the caller should wait before retrying.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.cfg.limit(), l.cfg.Burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	if b.limiter.AllowN(now, 1) {
		return true, 0
	}

	res := b.limiter.ReserveN(now, 1)
	wait := res.DelayFrom(now)
	res.CancelAt(now)
	return false, wait
}

// Len reports the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleAfter {
		return
	}
	l.lastSweep = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idleAfter {
			delete(l.buckets, key)
		}
	}
}

// RateLimit rejects requests with 429 once their key's bucket is empty.
func RateLimit(l *Limiter, key KeyExtractor) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			ok, wait := l.Allow(k)
			if ok {
				next.ServeHTTP(w, r)
				return
			}

			retryAfter := max(int((wait+time.Second-1)/time.Second), 1)
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(l.cfg.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", l.cfg.Window.String())

			slogx.FromContext(r.Context()).Warn("rate limit exceeded",
				"key", k,
				"path", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteError(w, http.StatusTooManyRequests, r.URL.Path,
				"Muitas requisições. Tente novamente mais tarde.", "rate_limit")
		})
	}
}

// RateLimitByIP limits by client IP.
func RateLimitByIP(cfg RateLimitConfig) Middleware {
	return RateLimit(NewLimiter(cfg), ClientIP)
}

// RateLimitByUser limits by authenticated user, falling back to client IP.
func RateLimitByUser(cfg RateLimitConfig) Middleware {
	return RateLimit(NewLimiter(cfg), UserOrIP)
}
