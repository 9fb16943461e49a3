package post

import (
	"net/http"

	"inkwell/internal/core/posts"
)

// ListHandler handles public post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

// HandleList handles GET /api/posts
// Returns every post ordered by createdAt descending. Pagination is a
// client concern; the full list is always returned.
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	collection, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, collection)
}

// HandleTags handles GET /api/tags
// Returns the union of all tags across all posts in first-seen order.
func (h *ListHandler) HandleTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.service.ListTags(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, tags)
}
