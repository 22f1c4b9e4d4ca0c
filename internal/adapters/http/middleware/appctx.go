package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/household-tasks/internal/app/context"
)

// AppContext returns middleware that attaches a fresh request-scoped cache
// to every request. Application services memoize lookups in it, such as
// the acting user, via appctx.GetOrFetch.
//
// Register it before Session so the session lookup and the handler share
// one cache.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := appctx.WithRequestCache(r.Context(), appctx.New())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
