package search

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"inkwell/internal/core/posts"
	"inkwell/internal/core/search"
)

// Handler serves relevance-based post search
type Handler struct {
	service search.Service
}

// NewHandler creates a new search handler. service can be nil when no
// AI delegate is configured; search then responds 503.
func NewHandler(service search.Service) *Handler {
	return &Handler{service: service}
}

type searchResponse struct {
	Results []posts.Post `json:"results"`
	Count   int          `json:"count"`
}

// HandleSearch handles GET /api/search?q=term
// Fans out one relevance check per post via the delegate. A delegate
// failure surfaces as a single 502 so the client can keep its previous
// results on screen; an all-irrelevant judgment is an empty result set.
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	if h.service == nil {
		writeError(w, http.StatusServiceUnavailable, "DelegateUnavailable",
			"Intelligent search is not configured")
		return
	}

	term := r.URL.Query().Get("q")
	if term == "" {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "q is required")
		return
	}

	results, err := h.service.Search(r.Context(), term)
	if err != nil {
		log.Error().Err(err).Str("term", term).Msg("search failed")
		writeError(w, http.StatusBadGateway, "SearchFailed",
			"Search failed. Please try again.")
		return
	}

	if results == nil {
		results = make([]posts.Post, 0)
	}
	body := searchResponse{Results: results, Count: len(results)}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode search response")
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
