package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func countingHandler() (http.Handler, *int) {
	hits := 0
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"hits":%d}`, hits)
	}), &hits
}

func TestPageCache_ServesCachedResponse(t *testing.T) {
	cache := NewPageCache()
	handler, hits := countingHandler()
	wrapped := cache.Middleware(handler)

	first := httptest.NewRecorder()
	wrapped.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	second := httptest.NewRecorder()
	wrapped.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if *hits != 1 {
		t.Errorf("handler ran %d times, want 1 (second should be cached)", *hits)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached body %q differs from original %q", second.Body.String(), first.Body.String())
	}
	if got := second.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("X-Cache = %q, want HIT", got)
	}
	if got := second.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("cached Content-Type = %q", got)
	}
}

func TestPageCache_InvalidateForcesRecompute(t *testing.T) {
	cache := NewPageCache()
	handler, hits := countingHandler()
	wrapped := cache.Middleware(handler)

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	cache.Invalidate("/api/posts")
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts", nil))

	if *hits != 2 {
		t.Errorf("handler ran %d times, want 2 after invalidation", *hits)
	}
}

func TestPageCache_SkipsNonGetAndQueries(t *testing.T) {
	cache := NewPageCache()
	handler, hits := countingHandler()
	wrapped := cache.Middleware(handler)

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/posts", nil))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil))

	if *hits != 3 {
		t.Errorf("handler ran %d times, want 3 (nothing cacheable)", *hits)
	}
	if cache.Len() != 0 {
		t.Errorf("cache holds %d pages, want 0", cache.Len())
	}
}

func TestPageCache_OnlyCachesOK(t *testing.T) {
	cache := NewPageCache()
	hits := 0
	wrapped := cache.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		http.Error(w, "not found", http.StatusNotFound)
	}))

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/posts/nope", nil))

	if hits != 2 {
		t.Errorf("handler ran %d times, want 2 (404s are not cached)", hits)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRouteRevalidator_MapsPageRoutesToCacheKeys(t *testing.T) {
	cache := NewPageCache()
	handler, _ := countingHandler()
	wrapped := cache.Middleware(handler)

	// Warm the cache for the listing, tags, and one detail route
	for _, path := range []string{"/api/posts", "/api/tags", "/api/posts/my-post", "/api/posts/other"} {
		wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	if cache.Len() != 4 {
		t.Fatalf("warmup cached %d pages, want 4", cache.Len())
	}

	revalidator := NewRouteRevalidator(cache)

	// A detail-route signal drops only that detail response
	revalidator.Invalidate("/posts/my-post")
	if cache.Len() != 3 {
		t.Errorf("after detail invalidation cache holds %d pages, want 3", cache.Len())
	}

	// Listing-page signals drop the list and tag responses
	revalidator.Invalidate("/", "/admin")
	if cache.Len() != 1 {
		t.Errorf("after listing invalidation cache holds %d pages, want 1", cache.Len())
	}
}
