package datefmt

import (
	"context"
)

type cacheCtxKey struct{}

// WithCache returns context with formatter cache attached.
//
// Context must not be shared with other goroutines while they use the cache.
func WithCache(ctx context.Context, c *Cache) context.Context {
	return context.WithValue(ctx, cacheCtxKey{}, c)
}

// CacheFrom returns cache attached to context or nil.
func CacheFrom(ctx context.Context) *Cache {
	c, _ := ctx.Value(cacheCtxKey{}).(*Cache)

	return c
}

// Lookup returns formatter from cache attached to context.
//
// Without attached cache a new formatter is built with system defaults and it is not retained.
func Lookup(ctx context.Context, pattern string, options ...Option) (*Formatter, error) {
	if c := CacheFrom(ctx); c != nil {
		return c.Formatter(ctx, pattern, options...)
	}

	return (&Cache{}).Formatter(ctx, pattern, options...)
}
