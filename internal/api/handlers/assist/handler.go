package assist

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"inkwell/internal/core/assist"
)

// Handler serves the AI-assisted form pre-fill endpoints.
type Handler struct {
	generator assist.Generator
}

// NewHandler creates a new assist handler. generator can be nil when no
// AI delegate is configured; the endpoints then respond 503.
func NewHandler(generator assist.Generator) *Handler {
	return &Handler{generator: generator}
}

// HandleGenerateContent handles POST /api/assist/content
// Generates markdown post content for a title. Failures are reported to
// the caller, never retried here.
func (h *Handler) HandleGenerateContent(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "DelegateUnavailable",
			"Content generation is not configured")
		return
	}

	var req assist.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "title is required")
		return
	}

	result, err := h.generator.GeneratePostContent(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("content generation failed")
		writeError(w, http.StatusBadGateway, "GenerationFailed",
			"Content generation failed. Please try again.")
		return
	}

	writeJSON(w, result)
}

// HandleGenerateCoverImage handles POST /api/assist/cover-image
// Generates a cover image for a title; the result is usually a data URI.
func (h *Handler) HandleGenerateCoverImage(w http.ResponseWriter, r *http.Request) {
	if h.generator == nil {
		writeError(w, http.StatusServiceUnavailable, "DelegateUnavailable",
			"Image generation is not configured")
		return
	}

	var req assist.GenerateCoverImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "title is required")
		return
	}

	result, err := h.generator.GenerateCoverImage(r.Context(), req)
	if err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("image generation failed")
		writeError(w, http.StatusBadGateway, "GenerationFailed",
			"Image generation failed. Please try again.")
		return
	}

	writeJSON(w, result)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode assist response")
	}
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   errorType,
		"message": message,
	})
}
