package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

// PageCache is an in-memory cache of rendered GET responses keyed by
// request path. Entries live until explicitly invalidated; the post
// store's invalidation signal (via RouteRevalidator) is the only
// eviction path.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]*cachedPage
}

type cachedPage struct {
	contentType string
	body        []byte
}

// NewPageCache creates an empty response cache.
func NewPageCache() *PageCache {
	return &PageCache{
		pages: make(map[string]*cachedPage),
	}
}

// Middleware serves cached responses for GET requests and records
// successful responses on miss. Only 200 responses are cached; requests
// with a query string bypass the cache entirely (search results must not
// be pinned).
func (c *PageCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.RawQuery != "" {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.Path

		c.mu.RLock()
		page, ok := c.pages[key]
		c.mu.RUnlock()

		if ok {
			if page.contentType != "" {
				w.Header().Set("Content-Type", page.contentType)
			}
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(http.StatusOK)
			w.Write(page.body)
			return
		}

		recorder := httptest.NewRecorder()
		next.ServeHTTP(recorder, r)

		if recorder.Code == http.StatusOK {
			c.mu.Lock()
			c.pages[key] = &cachedPage{
				contentType: recorder.Header().Get("Content-Type"),
				body:        recorder.Body.Bytes(),
			}
			c.mu.Unlock()
		}

		for name, values := range recorder.Header() {
			for _, value := range values {
				w.Header().Add(name, value)
			}
		}
		w.WriteHeader(recorder.Code)
		w.Write(recorder.Body.Bytes())
	})
}

// Invalidate drops the cached responses for the given paths.
func (c *PageCache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, path := range paths {
		delete(c.pages, path)
	}
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}
