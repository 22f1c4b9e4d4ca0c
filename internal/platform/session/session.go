// Package session keeps authenticated client sessions in process memory.
//
// Tokens are random UUIDs handed to the client in a cookie. Each successful
// lookup slides the expiry forward by the configured TTL. Expired sessions
// are rejected on lookup and removed by Sweep, which Run calls periodically.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.SessionStore  = (*Registry)(nil)
	_ ports.HealthChecker = (*Registry)(nil)
)

type entry struct {
	userID    string
	expiresAt time.Time
}

// Registry is a thread-safe in-memory session store.
type Registry struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]entry
	now      func() time.Time
	newToken func() string
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithTokenGenerator overrides the token generator.
func WithTokenGenerator(fn func() string) Option {
	return func(r *Registry) { r.newToken = fn }
}

// New creates a registry whose sessions expire after ttl of inactivity.
func New(ttl time.Duration, opts ...Option) *Registry {
	r := &Registry{
		ttl:      ttl,
		sessions: make(map[string]entry),
		now:      time.Now,
		newToken: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TTL returns the inactivity timeout.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Create issues a new session for userID.
func (r *Registry) Create(_ context.Context, userID string) (ports.Session, error) {
	token := r.newToken()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = entry{userID: userID, expiresAt: r.now().Add(r.ttl)}

	return ports.Session{Token: token, UserID: userID}, nil
}

// Get resolves a token and extends its expiry. Unknown and expired tokens
// report ok=false; an expired token is removed on the spot.
func (r *Registry) Get(_ context.Context, token string) (ports.Session, bool) {
	if token == "" {
		return ports.Session{}, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[token]
	if !ok {
		return ports.Session{}, false
	}
	now := r.now()
	if !now.Before(e.expiresAt) {
		delete(r.sessions, token)
		return ports.Session{}, false
	}
	e.expiresAt = now.Add(r.ttl)
	r.sessions[token] = e

	return ports.Session{Token: token, UserID: e.userID}, true
}

// Delete destroys a session. Unknown tokens are ignored.
func (r *Registry) Delete(_ context.Context, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// Len returns the number of live and not yet swept sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for token, e := range r.sessions {
		if !now.Before(e.expiresAt) {
			delete(r.sessions, token)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is canceled.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger := logging.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				logger.DebugContext(ctx, "swept expired sessions", slog.Int("count", n))
			}
		}
	}
}

// Name implements ports.HealthChecker.
func (r *Registry) Name() string {
	return "sessions"
}

// HealthCheck implements ports.HealthChecker.
func (r *Registry) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
