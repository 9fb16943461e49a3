package routes

import (
	"github.com/go-chi/chi/v5"

	searchHandler "inkwell/internal/api/handlers/search"
	"inkwell/internal/core/search"
)

// RegisterSearchRoutes registers the relevance-search endpoint.
// service can be nil when no AI delegate is configured.
func RegisterSearchRoutes(r chi.Router, service search.Service) {
	handler := searchHandler.NewHandler(service)

	r.Get("/api/search", handler.HandleSearch)
}
