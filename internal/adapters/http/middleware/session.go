package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/household-tasks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/platform/logging"
	"github.com/jsamuelsen11/household-tasks/internal/ports"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "sid"

var errNoSession = fmt.Errorf("%w: no active session", domain.ErrNotAuthenticated)

type sessionKey struct{}

// WithSession returns a new context carrying the resolved session.
func WithSession(ctx context.Context, s ports.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session resolved for the request, if any.
func SessionFromContext(ctx context.Context) (ports.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(ports.Session)
	return s, ok
}

// UserIDFromContext returns the authenticated user id, or "" for anonymous
// requests.
func UserIDFromContext(ctx context.Context) string {
	s, _ := SessionFromContext(ctx)
	return s.UserID
}

// Session returns middleware that resolves the session cookie against the
// store. Requests without a cookie, or with an unknown or expired token,
// continue anonymously; use RequireSession to reject them.
//
// When Logging ran earlier in the chain, the request logger is enriched
// with the user id.
func Session(store ports.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, ok := store.Get(r.Context(), cookie.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx := WithSession(r.Context(), s)
			ctx = logging.With(ctx, slog.String("user_id", s.UserID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests that Session did not authenticate with a
// 401 problem response.
func RequireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := SessionFromContext(r.Context()); !ok {
				dto.WriteErrorResponse(w, r, errNoSession)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
