package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/middleware"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestRateLimiter_BurstThenRefill(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	l := middleware.NewRateLimiter(1, 2, middleware.WithLimiterClock(clock.Now))

	for i := range 2 {
		if ok, _ := l.Allow("10.0.0.1"); !ok {
			t.Fatalf("Allow() #%d = false within burst", i+1)
		}
	}

	ok, wait := l.Allow("10.0.0.1")
	if ok {
		t.Fatal("Allow() = true after burst exhausted")
	}
	if wait <= 0 || wait > time.Second {
		t.Errorf("wait = %v, want (0, 1s]", wait)
	}

	// A denied attempt does not consume a token.
	clock.Advance(time.Second)
	if ok, _ := l.Allow("10.0.0.1"); !ok {
		t.Error("Allow() = false after refill")
	}

	// Other clients have their own bucket.
	if ok, _ := l.Allow("10.0.0.2"); !ok {
		t.Error("Allow() = false for a fresh client")
	}
}

func TestRateLimiter_DropsIdleClients(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{now: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	l := middleware.NewRateLimiter(1, 1,
		middleware.WithLimiterClock(clock.Now),
		middleware.WithLimiterIdle(time.Minute),
	)

	l.Allow("10.0.0.1")
	l.Allow("10.0.0.2")
	if got := l.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	clock.Advance(2 * time.Minute)
	l.Allow("10.0.0.3")

	if got := l.Len(); got != 1 {
		t.Errorf("Len() = %d after idle sweep, want 1", got)
	}
}

func TestRateLimit_Returns429WithRetryAfter(t *testing.T) {
	t.Parallel()

	l := middleware.NewRateLimiter(0.01, 1)
	calls := 0
	handler := middleware.RateLimit(l)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	}))

	send := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", http.NoBody)
		req.RemoteAddr = "192.0.2.10:51234"
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", rec.Code)
	}

	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d, want 429", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
	secs, err := strconv.Atoi(rec.Header().Get("Retry-After"))
	if err != nil || secs < 1 {
		t.Errorf("Retry-After = %q, want positive seconds", rec.Header().Get("Retry-After"))
	}
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1", calls)
	}
}
