package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"inkwell/internal/api/middleware"
)

// LoginHandler validates admin credentials and establishes the cookie
// session. Credentials come from configuration; the defaults are a
// documented prototype weakness, not a feature.
type LoginHandler struct {
	sessions *middleware.SessionAuth
	username string
	password string
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(sessions *middleware.SessionAuth, username, password string) *LoginHandler {
	return &LoginHandler{
		sessions: sessions,
		username: username,
		password: password,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin handles POST /api/login
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "InvalidRequest", "Invalid credentials format")
		return
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(h.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.password)) == 1
	if !userOK || !passOK {
		log.Warn().Str("username", req.Username).Msg("failed login attempt")
		writeError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid username or password")
		return
	}

	if err := h.sessions.LogIn(w, r, req.Username); err != nil {
		log.Error().Err(err).Msg("failed to save session")
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
		return
	}

	writeJSON(w, map[string]bool{"success": true})
}
