package post

import (
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"inkwell/internal/core/posts"
)

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

// HandleCreate handles POST /api/posts
// Field minimums are enforced here at the form boundary; the store
// itself does not validate.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size; generated cover images arrive as data
	// URIs, so the ceiling is generous.
	r.Body = http.MaxBytesReader(w, r.Body, 8*1024*1024)

	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeError(w, http.StatusRequestEntityTooLarge, "RequestTooLarge",
				"Request body too large (max 8MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := validateCreateRequest(req); err != nil {
		handleServiceError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

func validateCreateRequest(req posts.CreatePostRequest) error {
	if utf8.RuneCountInString(strings.TrimSpace(req.Title)) < 2 {
		return posts.NewValidationError("title", "must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Author)) < 2 {
		return posts.NewValidationError("author", "must be at least 2 characters")
	}
	if utf8.RuneCountInString(strings.TrimSpace(req.Content)) < 10 {
		return posts.NewValidationError("content", "must be at least 10 characters")
	}
	return nil
}
