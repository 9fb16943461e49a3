package post

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/core/posts"
)

// UpdateHandler handles partial post updates
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /api/posts/{id}
// Only the provided fields are merged; id and createdAt can never be
// changed through this endpoint, and the slug follows the title.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "id is required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 8*1024*1024)

	var req posts.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := validateUpdateRequest(req); err != nil {
		handleServiceError(w, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, updated)
}

func validateUpdateRequest(req posts.UpdatePostRequest) error {
	if req.Title != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Title)) < 2 {
		return posts.NewValidationError("title", "must be at least 2 characters")
	}
	if req.Author != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Author)) < 2 {
		return posts.NewValidationError("author", "must be at least 2 characters")
	}
	if req.Content != nil && utf8.RuneCountInString(strings.TrimSpace(*req.Content)) < 10 {
		return posts.NewValidationError("content", "must be at least 10 characters")
	}
	return nil
}
