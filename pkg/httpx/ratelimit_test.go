package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/myvehicles/pkg/httpx"
	"github.com/stretchr/testify/require"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		headers map[string]string
		want    string
	}{
		{name: "remote addr", remote: "192.168.1.1:12345", want: "192.168.1.1"},
		{name: "remote addr without port", remote: "192.168.1.1", want: "192.168.1.1"},
		{
			name:    "first forwarded hop",
			remote:  "10.0.0.1:1",
			headers: map[string]string{"X-Forwarded-For": "203.0.113.1, 10.0.0.1"},
			want:    "203.0.113.1",
		},
		{
			name:    "real ip",
			remote:  "10.0.0.1:1",
			headers: map[string]string{"X-Real-IP": " 203.0.113.2 "},
			want:    "203.0.113.2",
		},
		{
			name:    "blank forwarded hop falls through",
			remote:  "10.0.0.1:1",
			headers: map[string]string{"X-Forwarded-For": " , 10.0.0.1", "X-Real-IP": "203.0.113.3"},
			want:    "203.0.113.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			require.Equal(t, tt.want, httpx.ClientIP(req))
		})
	}
}

func TestUserOrIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	require.Equal(t, "ip:10.0.0.7", httpx.UserOrIP(req))

	ctx := context.WithValue(req.Context(), httpx.CtxKeyUserID, "6650f1c2a1b2c3d4e5f60718")
	require.Equal(t, "user:6650f1c2a1b2c3d4e5f60718", httpx.UserOrIP(req.WithContext(ctx)))
}

func TestLimiter_Allow(t *testing.T) {
	l := httpx.NewLimiter(httpx.RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2})

	for range 2 {
		ok, _ := l.Allow("a")
		require.True(t, ok)
	}

	ok, wait := l.Allow("a")
	require.False(t, ok)
	require.Greater(t, wait, time.Duration(0))
	require.LessOrEqual(t, wait, 30*time.Second)

	ok, _ = l.Allow("b")
	require.True(t, ok, "keys draw from separate buckets")
	require.Equal(t, 2, l.Len())
}

func TestLimiter_RejectionDoesNotConsume(t *testing.T) {
	l := httpx.NewLimiter(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})

	ok, _ := l.Allow("a")
	require.True(t, ok)

	_, first := l.Allow("a")
	_, second := l.Allow("a")
	require.InDelta(t, first.Seconds(), second.Seconds(), 1)
}

func TestLimiter_Concurrent(t *testing.T) {
	l := httpx.NewLimiter(httpx.RateLimitConfig{RequestsPerWindow: 50, Window: time.Hour, Burst: 50})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 200 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := l.Allow("shared"); ok {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 50, allowed)
}

func TestRateLimit_Middleware(t *testing.T) {
	cfg := httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1}
	h := httpx.RateLimitByIP(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	send := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/usuarios/login", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send("192.168.1.1:1").Code)

	rec := send("192.168.1.1:2")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	retry, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	require.NoError(t, err)
	require.GreaterOrEqual(t, retry, 1)
	require.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	require.Equal(t, "1m0s", rec.Header().Get("X-RateLimit-Window"))
	require.JSONEq(t,
		`{"errors":[{"value":"/api/usuarios/login","msg":"Muitas requisições. Tente novamente mais tarde.","param":"rate_limit"}]}`,
		rec.Body.String())

	require.Equal(t, http.StatusOK, send("192.168.1.2:1").Code, "other clients are unaffected")
}

func TestRateLimit_EmptyKeyBypasses(t *testing.T) {
	l := httpx.NewLimiter(httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Minute, Burst: 1})
	h := httpx.RateLimit(l, func(*http.Request) string { return "" })(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	for range 3 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
	require.Zero(t, l.Len())
}

func TestRateLimitConfig_FromEnv(t *testing.T) {
	base := httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 5}

	t.Run("no overrides", func(t *testing.T) {
		require.Equal(t, base, base.FromEnv("unset"))
	})

	t.Run("all fields", func(t *testing.T) {
		t.Setenv("RATELIMIT_LOGIN_REQUESTS", "3")
		t.Setenv("RATELIMIT_LOGIN_WINDOW", "30s")
		t.Setenv("RATELIMIT_LOGIN_BURST", "2")

		got := base.FromEnv("login")
		require.Equal(t, httpx.RateLimitConfig{RequestsPerWindow: 3, Window: 30 * time.Second, Burst: 2}, got)
	})

	t.Run("window in seconds", func(t *testing.T) {
		t.Setenv("RATELIMIT_READ_WINDOW", "90")
		require.Equal(t, 90*time.Second, base.FromEnv("read").Window)
	})

	t.Run("invalid values ignored", func(t *testing.T) {
		t.Setenv("RATELIMIT_WRITE_REQUESTS", "-1")
		t.Setenv("RATELIMIT_WRITE_WINDOW", "soon")
		t.Setenv("RATELIMIT_WRITE_BURST", "0")
		require.Equal(t, base, base.FromEnv("write"))
	})
}

func BenchmarkRateLimit_ManyClients(b *testing.B) {
	h := httpx.RateLimitByIP(httpx.ReadLimit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for i := 0; b.Loop(); i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/veiculos", nil)
		req.RemoteAddr = "10.0." + strconv.Itoa(i%255) + "." + strconv.Itoa((i/255)%255) + ":1"
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
}
