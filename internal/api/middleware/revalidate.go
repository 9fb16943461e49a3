package middleware

import (
	"strings"

	"github.com/rs/zerolog/log"

	"inkwell/internal/core/posts"
)

var _ posts.Invalidator = (*RouteRevalidator)(nil)

// RouteRevalidator receives the post store's invalidation signal, which
// names page routes ("/", "/admin", "/posts/{slug}"), and translates
// them into the API response paths held by the page cache.
type RouteRevalidator struct {
	cache *PageCache
}

// NewRouteRevalidator wires the invalidation signal to a page cache.
func NewRouteRevalidator(cache *PageCache) *RouteRevalidator {
	return &RouteRevalidator{cache: cache}
}

// Invalidate maps each page route to the cached API responses that could
// have rendered the changed data and drops them.
func (rv *RouteRevalidator) Invalidate(paths ...string) {
	cacheKeys := make([]string, 0, len(paths)+1)
	for _, path := range paths {
		switch {
		case strings.HasPrefix(path, "/posts/"):
			slug := strings.TrimPrefix(path, "/posts/")
			cacheKeys = append(cacheKeys, "/api/posts/"+slug)
		default:
			// Listing pages ("/", "/admin", "/admin/posts") all
			// render from the post list and the tag union.
			cacheKeys = append(cacheKeys, "/api/posts", "/api/tags")
		}
	}

	log.Debug().Strs("paths", paths).Msg("invalidating cached routes")
	rv.cache.Invalidate(cacheKeys...)
}
