package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/core/posts"
)

// GetHandler handles post detail requests
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

// HandleGet handles GET /api/posts/{slug}
// Lookup is by exact slug match; an absent slug is a 404, not an error.
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "slug is required")
		return
	}

	found, err := h.service.GetBySlug(r.Context(), slug)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, found)
}
