package routes

import (
	"github.com/go-chi/chi/v5"

	"inkwell/internal/api/handlers/post"
	"inkwell/internal/api/middleware"
	"inkwell/internal/core/posts"
)

// RegisterPostRoutes registers the public read endpoints and the
// session-gated admin write endpoints for posts.
// pageCache can be nil to disable response caching.
func RegisterPostRoutes(r chi.Router, service posts.Service, sessions *middleware.SessionAuth, pageCache *middleware.PageCache) {
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	// Public reads, served from the page cache until a mutation
	// invalidates them
	r.Group(func(r chi.Router) {
		if pageCache != nil {
			r.Use(pageCache.Middleware)
		}
		r.Get("/api/posts", listHandler.HandleList)
		r.Get("/api/posts/{slug}", getHandler.HandleGet)
		r.Get("/api/tags", listHandler.HandleTags)
	})

	// Admin writes
	r.Group(func(r chi.Router) {
		r.Use(sessions.RequireAdmin)
		r.Post("/api/posts", createHandler.HandleCreate)
		r.Put("/api/posts/{id}", updateHandler.HandleUpdate)
		r.Delete("/api/posts/{id}", deleteHandler.HandleDelete)
	})
}
