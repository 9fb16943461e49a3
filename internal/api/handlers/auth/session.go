package auth

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"inkwell/internal/api/middleware"
)

// SessionHandler reports and clears the current session.
type SessionHandler struct {
	sessions *middleware.SessionAuth
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *middleware.SessionAuth) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

type sessionUser struct {
	Name string `json:"name"`
}

type sessionResponse struct {
	User     *sessionUser `json:"user,omitempty"`
	LoggedIn bool         `json:"loggedIn"`
}

// HandleSession handles GET /api/session
// An absent or undecodable cookie is reported as logged out, never as
// an error.
func (h *SessionHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	username, loggedIn := h.sessions.Current(r)

	resp := sessionResponse{LoggedIn: loggedIn}
	if loggedIn {
		resp.User = &sessionUser{Name: username}
	}

	writeJSON(w, resp)
}

// HandleLogout handles POST /api/logout
func (h *SessionHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.LogOut(w, r); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}

	writeJSON(w, map[string]bool{"success": true})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode auth response")
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
