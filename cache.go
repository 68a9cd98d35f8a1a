package pressfront

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/eringen/pressfront/wpapi"
)

// TermResolver resolves a taxonomy slug to its term.
type TermResolver interface {
	ResolveTerm(ctx context.Context, kind wpapi.TaxonomyKind, slug string) (wpapi.Term, error)
}

// TermCache is an in-memory cache of resolved categories and tags with TTL.
// Only successful resolutions are cached, so a term created upstream shows
// up on the next request. A non-positive TTL disables caching.
type TermCache struct {
	cache *cache.Cache
	src   TermResolver
}

// NewTermCache creates a TermCache in front of src.
func NewTermCache(src TermResolver, ttl time.Duration) *TermCache {
	c := &TermCache{src: src}
	if ttl > 0 {
		c.cache = cache.New(ttl, 2*ttl)
	}
	return c
}

func termCacheKey(kind wpapi.TaxonomyKind, slug string) string {
	return kind.String() + "/" + slug
}

// Invalidate clears the cache so the next read goes upstream.
func (c *TermCache) Invalidate() {
	if c.cache != nil {
		c.cache.Flush()
	}
}

// ResolveTerm returns the cached term for slug, resolving it upstream when
// missing or expired. The slug is used verbatim as both key and query.
func (c *TermCache) ResolveTerm(ctx context.Context, kind wpapi.TaxonomyKind, slug string) (wpapi.Term, error) {
	if c.cache == nil {
		return c.src.ResolveTerm(ctx, kind, slug)
	}
	key := termCacheKey(kind, slug)
	if x, found := c.cache.Get(key); found {
		return x.(wpapi.Term), nil
	}

	term, err := c.src.ResolveTerm(ctx, kind, slug)
	if err != nil {
		return wpapi.Term{}, err
	}
	c.cache.Set(key, term, cache.DefaultExpiration)
	return term, nil
}

// Len reports the number of cached terms, expired ones not yet evicted included.
func (c *TermCache) Len() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.ItemCount()
}
