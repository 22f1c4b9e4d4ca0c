// Package appctx provides a request-scoped memoization cache for the
// application layer.
//
// The HTTP layer attaches one RequestCache per request. Services look up
// values through GetOrFetch, so a value fetched once (for example the
// acting user) is reused for the rest of the request:
//
//	actor, err := appctx.GetOrFetch(ctx, "user:"+id, func(ctx context.Context) (user.User, error) {
//	    return loadUser(ctx, id)
//	})
//
// Without a cache in the context, GetOrFetch simply calls the fetch function.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

type contextKey struct{}

// RequestCache memoizes fetch results for the lifetime of one request.
// Both values and errors are cached.
type RequestCache struct {
	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestCache.
func New() *RequestCache {
	return &RequestCache{cache: make(map[string]cacheEntry)}
}

// Len returns the number of cached keys.
func (rc *RequestCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.cache)
}

// Invalidate drops a cached key so the next lookup fetches again.
func (rc *RequestCache) Invalidate(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}

// WithRequestCache returns a context carrying rc.
func WithRequestCache(ctx context.Context, rc *RequestCache) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestCache stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestCache {
	rc, _ := ctx.Value(contextKey{}).(*RequestCache)
	return rc
}

// GetOrFetch returns the cached value for key, or calls fetchFn and caches
// its result. The same key must always be used with the same type T.
//
// The fetch runs under the cache lock, so concurrent lookups of any key in
// the same request are serialized.
func GetOrFetch[T any](ctx context.Context, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc := FromContext(ctx)
	if rc == nil {
		return fetchFn(ctx)
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()

	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(ctx)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}
